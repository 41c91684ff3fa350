package service

import (
	"context"
	"log/slog"
	"time"

	"Community_Board/internal/pkg"
)

// publishTimeout 单次事件发布的上限，broker 不可用时不拖住写请求
var publishTimeout = 3 * time.Second

// publish 事件发布失败只记日志，不影响请求结果
func publish(ctx context.Context, events pkg.Publisher, log *slog.Logger, typ, postID, entityID string, payload interface{}) {
	ev, err := pkg.NewEvent(typ, postID, entityID, payload)
	if err == nil {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		err = events.Publish(pubCtx, ev)
		cancel()
	}
	if err != nil {
		log.WarnContext(ctx, "publish event failed",
			"type", typ,
			"post_id", postID,
			"error", err.Error(),
		)
	}
}
