package jobs

import (
	"context"
	"log/slog"
	"time"

	"menucore/internal/core/application/usecases/queries"
	"menucore/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// KitchenBacklogJob periodically samples the active-order backlog and logs
// it, flagging orders that have been waiting longer than the alert
// threshold. The log stream is what staff dashboards and alerting hang off.
type KitchenBacklogJob struct {
	handler       queries.GetActiveOrdersQueryHandler
	cron          *cron.Cron
	logger        *slog.Logger
	staleDuration time.Duration
}

// NewKitchenBacklogJob creates a job that samples the backlog every 15
// seconds. Orders pending longer than staleDuration are logged as stale.
func NewKitchenBacklogJob(
	handler queries.GetActiveOrdersQueryHandler,
	staleDuration time.Duration,
	logger *slog.Logger,
) *KitchenBacklogJob {
	return &KitchenBacklogJob{
		handler:       handler,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "kitchen_backlog_job"),
		staleDuration: staleDuration,
	}
}

// Start begins the backlog sampling job, running every 15 seconds.
func (j *KitchenBacklogJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetActiveOrdersQuery()

		active, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen backlog job failed", "error", err)
			return
		}

		pending := 0
		preparing := 0
		stale := 0
		now := time.Now()
		for _, o := range active {
			switch o.Status {
			case order.StatusPending:
				pending++
			case order.StatusPreparing:
				preparing++
			}
			if now.Sub(o.CreatedAt) > j.staleDuration {
				stale++
				j.logger.WarnContext(ctx, "Order is waiting too long",
					"orderNumber", o.Number,
					"tableId", o.TableID,
					"status", o.Status.String(),
					"waiting", now.Sub(o.CreatedAt).Round(time.Second).String(),
				)
			}
		}

		j.logger.InfoContext(ctx, "Kitchen backlog sampled",
			"active", len(active),
			"pending", pending,
			"preparing", preparing,
			"stale", stale,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen backlog job started (running every 15 seconds)")
	return nil
}

// Stop stops the backlog sampling job.
func (j *KitchenBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen backlog job stopped")
}
