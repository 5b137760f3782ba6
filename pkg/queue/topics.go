// Package queue 定义消息主题常量与通配模式，供发布/订阅使用.
package queue

// 主题命名规范：dv.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：catalog(文档目录)、document(单个文档)、ocr(外部 OCR 流水线)、auth(账户)
// 动作：刷新相关(refresh)、存储相关(uploaded/accessed)、回传相关(metadata/notify)
// 状态：请求(requested)、完成(ed)、失败(failed)

const (
	// 文档目录领域.
	TopicCatalogRefreshRequested = "dv.catalog.refresh.requested" // 请求重建目录快照（管理端或定时任务触发）
	TopicCatalogRefreshed        = "dv.catalog.refreshed"         // 目录快照重建完成（包含代次与文档数）
	TopicCatalogRefreshFailed    = "dv.catalog.refresh.failed"    // 目录快照重建失败（旧快照保持可用）

	// 单个文档领域.
	TopicDocumentUploaded   = "dv.document.uploaded"   // 文件已写入 incoming-scan，等待 OCR 流水线处理
	TopicDocumentAccessed   = "dv.document.accessed"   // 文档元数据被读取（用于热点统计）
	TopicDocumentDownloaded = "dv.document.downloaded" // 文档内容被下载

	// 外部 OCR 流水线领域.
	TopicOCRMetadataReceived = "dv.ocr.metadata.received" // OCR 流水线回传文档元数据
	TopicOCRNotifyFailed     = "dv.ocr.notify.failed"     // OCR 回调处理失败

	// 账户领域.
	TopicUserSignedUp = "dv.user.signedup" // 新用户注册完成
)

// 主题分组，用于批量操作或权限控制.
var (
	// 目录相关主题集合.
	CatalogTopics = []string{
		TopicCatalogRefreshRequested, TopicCatalogRefreshed,
		TopicCatalogRefreshFailed,
	}

	// 文档相关主题集合.
	DocumentTopics = []string{
		TopicDocumentUploaded, TopicDocumentAccessed, TopicDocumentDownloaded,
	}

	// OCR 相关主题集合.
	OCRTopics = []string{
		TopicOCRMetadataReceived, TopicOCRNotifyFailed,
	}
)
