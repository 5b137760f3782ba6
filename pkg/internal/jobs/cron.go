// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"

	"github.com/yeisme/docvault/pkg/configs"
	ctxPkg "github.com/yeisme/docvault/pkg/context"
	"github.com/yeisme/docvault/pkg/internal/index"
	"github.com/yeisme/docvault/pkg/internal/service"
	"github.com/yeisme/docvault/pkg/internal/storage"
	"github.com/yeisme/docvault/pkg/log"
	"github.com/yeisme/docvault/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 按 index.refresh_cron 定期重扫目录并发布新快照
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager, idx *index.Index, resolver *index.Resolver, local *index.LocalSource) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if idx == nil {
		return fmt.Errorf("catalog index is nil")
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	cronExpr := configs.GetConfig().Index.RefreshCron
	if cronExpr == "" {
		cronExpr = configs.DefaultRefreshCron
	}

	if err := sched.AddCron(JobCatalogRefresh, cronExpr, func(ctx context.Context) {
		runCatalogRefresh(ctx, idx, resolver, local)
	}, baseCtx); err != nil {
		return fmt.Errorf("failed to register catalog refresh job: %w", err)
	}

	return nil
}

// runCatalogRefresh 重建目录快照；失败时旧快照保持可用.
func runCatalogRefresh(ctx context.Context, idx *index.Index, resolver *index.Resolver, local *index.LocalSource) {
	l := log.Logger().With().Str("job", JobCatalogRefresh).Logger()

	svc := service.NewDocumentService(ctx, idx, resolver, local)

	resp, err := svc.Refresh(ctx, "cron")
	if err != nil {
		l.Error().Err(err).Msg("scheduled catalog refresh failed")
		return
	}

	l.Info().
		Str("generation", resp.Status.Generation).
		Int("documents", resp.Status.Documents).
		Msg("scheduled catalog refresh done")
}
