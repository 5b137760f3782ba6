package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishCatalogRefreshed 发布 dv.catalog.refreshed 事件。
// 目录快照重建成功后通知下游（访问统计、缓存失效等）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishCatalogRefreshed(pub message.Publisher, payload CatalogRefreshedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicCatalogRefreshed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicCatalogRefreshed, msg)
}

// ParseCatalogRefreshed 将 Watermill 消息解析为强类型 Envelope（CatalogRefreshedPayload）。
func ParseCatalogRefreshed(msg *message.Message) (Message[CatalogRefreshedPayload], error) {
	return ParseWatermillMessage[CatalogRefreshedPayload](msg)
}

// PublishDocumentUploaded 发布 dv.document.uploaded 事件。
// 文件写入 incoming-scan 后通知 OCR 流水线有新文件等待处理。
func PublishDocumentUploaded(pub message.Publisher, payload DocumentUploadedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicDocumentUploaded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicDocumentUploaded, msg)
}

// ParseDocumentUploaded 将 Watermill 消息解析为强类型 Envelope（DocumentUploadedPayload）。
func ParseDocumentUploaded(msg *message.Message) (Message[DocumentUploadedPayload], error) {
	return ParseWatermillMessage[DocumentUploadedPayload](msg)
}

// PublishDocumentAccessed 发布 dv.document.accessed 事件。
// 文档元数据被读取后通知访问统计订阅方。
func PublishDocumentAccessed(pub message.Publisher, payload DocumentAccessedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicDocumentAccessed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicDocumentAccessed, msg)
}

// PublishDocumentDownloaded 发布 dv.document.downloaded 事件。
func PublishDocumentDownloaded(pub message.Publisher, payload DocumentDownloadedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicDocumentDownloaded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicDocumentDownloaded, msg)
}

// PublishUserSignedUp 发布 dv.user.signedup 事件。
func PublishUserSignedUp(pub message.Publisher, payload UserSignedUpPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicUserSignedUp, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicUserSignedUp, msg)
}

// PublishOCRMetadata 发布 dv.ocr.metadata.received 事件。
// OCR 回调端点收到元数据后转发给订阅方（如审计、统计）。
func PublishOCRMetadata(pub message.Publisher, payload OCRMetadataPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicOCRMetadataReceived, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicOCRMetadataReceived, msg)
}

// ParseOCRMetadata 将 Watermill 消息解析为强类型 Envelope（OCRMetadataPayload）。
func ParseOCRMetadata(msg *message.Message) (Message[OCRMetadataPayload], error) {
	return ParseWatermillMessage[OCRMetadataPayload](msg)
}
