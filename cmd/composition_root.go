package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"menucore/internal/adapters/out/postgres"
	"menucore/internal/core/application/store"
	"menucore/internal/core/application/usecases/commands"
	"menucore/internal/core/application/usecases/queries"
	"menucore/internal/jobs"

	"gorm.io/gorm"
)

const defaultStaleOrderThreshold = 10 * time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	orderStore *store.OrderStore
	config     Config
}

// NewCompositionRoot wires the application together: it seeds the order
// store's number counter from the persisted order count, restores the
// persisted order history into the store, and prepares the unit-of-work
// factory the command handlers persist through.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	repo := uowFactory.Create().OrderRepository()
	count, err := repo.Count(ctx)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to count persisted orders: %w", err)
	}

	orderStore := store.NewOrderStore(count)

	restored, err := repo.GetAll(ctx)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to load persisted orders: %w", err)
	}
	if err = orderStore.Restore(restored); err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to restore orders: %w", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *uowFactory,
		orderStore: orderStore,
		config:     config,
	}, nil
}

func (c *CompositionRoot) OrderStore() *store.OrderStore {
	return c.orderStore
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderStore, c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderStore, c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeItemStatusCommandHandler() commands.ChangeItemStatusCommandHandler {
	return commands.NewChangeItemStatusCommandHandler(c.orderStore, c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetActiveOrdersQueryHandler(),
		c.staleOrderThreshold(),
		logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) staleOrderThreshold() time.Duration {
	if c.config.StaleOrderThreshold == "" {
		return defaultStaleOrderThreshold
	}

	threshold, err := time.ParseDuration(c.config.StaleOrderThreshold)
	if err != nil || threshold <= 0 {
		return defaultStaleOrderThreshold
	}
	return threshold
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
