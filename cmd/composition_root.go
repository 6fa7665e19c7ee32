package cmd

import (
	"log/slog"

	httpin "mainbridge/internal/adapters/in/http"
	"mainbridge/internal/adapters/out/postgres"
	"mainbridge/internal/core/application/usecases/commands"
	"mainbridge/internal/core/application/usecases/queries"
	"mainbridge/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateClaimDeliveryCommandHandler() commands.ClaimDeliveryCommandHandler {
	return commands.NewClaimDeliveryCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTransitStatusCommandHandler() commands.UpdateTransitStatusCommandHandler {
	return commands.NewUpdateTransitStatusCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateReconcileOffersCommandHandler() commands.ReconcileOffersCommandHandler {
	return commands.NewReconcileOffersCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateRefreshStatisticsCommandHandler() commands.RefreshStatisticsCommandHandler {
	return commands.NewRefreshStatisticsCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateGetAvailableOffersQueryHandler() queries.GetAvailableOffersQueryHandler {
	return queries.NewGetAvailableOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSupplierOrdersQueryHandler() queries.GetSupplierOrdersQueryHandler {
	return queries.NewGetSupplierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierEarningsQueryHandler() queries.GetCourierEarningsQueryHandler {
	return queries.NewGetCourierEarningsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierStatisticsQueryHandler() queries.GetCourierStatisticsQueryHandler {
	return queries.NewGetCourierStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSupplierStatisticsQueryHandler() queries.GetSupplierStatisticsQueryHandler {
	return queries.NewGetSupplierStatisticsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP adapter with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateClaimDeliveryCommandHandler(),
		c.CreateConfirmDeliveryCommandHandler(),
		c.CreateUpdateTransitStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetAvailableOffersQueryHandler(),
		c.CreateGetSupplierOrdersQueryHandler(),
		c.CreateGetCourierEarningsQueryHandler(),
		c.CreateGetOrderTrackingQueryHandler(),
		c.CreateGetCourierStatisticsQueryHandler(),
		c.CreateGetSupplierStatisticsQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileOffersCommandHandler(),
		c.CreateRefreshStatisticsCommandHandler(),
		logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
