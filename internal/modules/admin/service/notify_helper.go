package service

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/ctxkey"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/log"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/notify"
)

// publishChange 发布数据变更事件；发布失败只记日志，不影响主流程
func publishChange(ctx context.Context, subject, resource, action, id string) {
	event := notify.ChangeEvent{
		Resource: resource,
		Action:   action,
		ID:       id,
		TraceID:  ctxkey.GetString(ctx, ctxkey.TraceID),
	}
	if err := notify.PublishChange(ctx, subject, event); err != nil {
		log.WarnContext(ctx, "发布变更事件失败",
			log.String("subject", subject),
			log.String("resource", resource),
			log.Any("error", err))
	}
}
