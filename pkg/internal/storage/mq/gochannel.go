package mq

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/yeisme/docvault/pkg/configs"
)

// init 注册 GoChannel 工厂.
func init() {
	RegisterFactory(configs.MQTypeGoChannel, gochannelFactory)
}

// gochannelFactory 创建进程内 Publisher & Subscriber.
// 适用于单实例部署与本地开发，重启后消息不保留.
func gochannelFactory(
	ctx context.Context,
	cfg *configs.MQConfig,
	logger watermill.LoggerAdapter) (
	message.Publisher, message.Subscriber, error) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: int64(cfg.Common.BufferSize),
		Persistent:          false,
	}, logger)

	// GoChannel 同一实例既是 Publisher 也是 Subscriber
	return pubSub, pubSub, nil
}
