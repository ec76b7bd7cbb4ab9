package cmd

import (
	"log/slog"

	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/productrepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/application/services/auth"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracking on read-only
// paths that run outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ int64, _ any) {}

// CompositionRoot wires repositories, handlers, services, and jobs from one
// database connection and logger.
type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, logger),
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDelivererEarningsQueryHandler() queries.GetDelivererEarningsQueryHandler {
	return queries.NewGetDelivererEarningsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductStatsQueryHandler() queries.GetProductStatsQueryHandler {
	return queries.NewGetProductStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPopularProductsQueryHandler() queries.GetPopularProductsQueryHandler {
	return queries.NewGetPopularProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesReportQueryHandler() queries.GetSalesReportQueryHandler {
	return queries.NewGetSalesReportQueryHandler(c.CreateOrderRepository())
}

func (c *CompositionRoot) CreateAuthService() auth.Service {
	return auth.NewService(c.CreateUserRepository())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetSalesReportQueryHandler(), c.logger)
}

// CreateUserRepository builds a user repository outside any transaction, for
// read paths such as authentication.
func (c *CompositionRoot) CreateUserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(c.gormDB, noopTracker{})
}

// CreateRestaurantRepository builds a restaurant repository outside any
// transaction, for catalog listings.
func (c *CompositionRoot) CreateRestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(c.gormDB, noopTracker{})
}

// CreateProductRepository builds a product repository outside any
// transaction, for menu listings.
func (c *CompositionRoot) CreateProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(c.gormDB, noopTracker{})
}

// CreateOrderRepository builds an order repository outside any transaction,
// for hydrated order listings and reports.
func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	tracker := noopTracker{}
	return orderrepo.NewGormOrderRepository(
		c.gormDB,
		tracker,
		userrepo.NewGormUserRepository(c.gormDB, tracker),
		restaurantrepo.NewGormRestaurantRepository(c.gormDB, tracker),
		productrepo.NewGormProductRepository(c.gormDB, tracker),
		c.logger,
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}
