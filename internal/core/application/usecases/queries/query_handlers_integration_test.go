package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/productrepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ int64, _ any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	userRepo       *userrepo.GormUserRepository
	restaurantRepo *restaurantrepo.GormRestaurantRepository
	productRepo    *productrepo.GormProductRepository
	orderRepo      *orderrepo.GormOrderRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&restaurantrepo.RestaurantDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	tracker := &mockAggregateTracker{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.userRepo = userrepo.NewGormUserRepository(db, tracker)
	suite.restaurantRepo = restaurantrepo.NewGormRestaurantRepository(db, tracker)
	suite.productRepo = productrepo.NewGormProductRepository(db, tracker)
	suite.orderRepo = orderrepo.NewGormOrderRepository(
		db, tracker, suite.userRepo, suite.restaurantRepo, suite.productRepo, logger)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users, restaurants, products, orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) createUser(username string, role user.Role) *user.User {
	u, err := user.New(username, "$2a$10$testhash", role)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.userRepo.Add(context.Background(), u))
	return u
}

func (suite *QueryHandlersTestSuite) createRestaurant(name string) *restaurant.Restaurant {
	rest, err := restaurant.New(name, "1 Oven Ln", "555-0101")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.Add(context.Background(), rest))
	return rest
}

func (suite *QueryHandlersTestSuite) createProduct(name, price string, rest *restaurant.Restaurant) *product.Product {
	p, err := product.New(name, "", decimal.RequireFromString(price), rest)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(context.Background(), p))
	return p
}

func (suite *QueryHandlersTestSuite) placeOrder(
	placer *user.User,
	rest *restaurant.Restaurant,
	placedAt time.Time,
	lines map[*product.Product]int,
) *order.Order {
	items := make([]*order.Item, 0, len(lines))
	for p, qty := range lines {
		item, err := order.NewItem(p, qty)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	o, err := order.New(placer, rest, items, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) deliverOrder(o *order.Order, deliverer *user.User) {
	ctx := context.Background()
	suite.Require().NoError(suite.orderRepo.Accept(ctx, o.ID(), deliverer.ID()))
	suite.Require().NoError(suite.orderRepo.Complete(ctx, o.ID(), deliverer.ID()))
}

func (suite *QueryHandlersTestSuite) TestGetDelivererEarnings_OnlyDeliveredOrdersCount() {
	ctx := context.Background()
	client := suite.createUser("client-earn", user.RoleClient)
	deliverer := suite.createUser("deliverer-earn", user.RoleDeliverer)
	rest := suite.createRestaurant("Pizza Place")
	pizza := suite.createProduct("Margherita", "50.00", rest)

	delivered := suite.placeOrder(client, rest, time.Now(), map[*product.Product]int{pizza: 2})
	suite.deliverOrder(delivered, deliverer)

	// An accepted but not completed order contributes nothing.
	inProgress := suite.placeOrder(client, rest, time.Now(), map[*product.Product]int{pizza: 4})
	suite.Require().NoError(suite.orderRepo.Accept(ctx, inProgress.ID(), deliverer.ID()))

	handler := queries.NewGetDelivererEarningsQueryHandler(suite.db)
	query, err := queries.NewGetDelivererEarningsQuery(deliverer.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(deliverer.ID(), result.DelivererID)
	suite.True(result.Earnings.Equal(decimal.RequireFromString("10.00")),
		"expected 10.00, got %s", result.Earnings)
}

func (suite *QueryHandlersTestSuite) TestGetDelivererEarnings_NoDeliveries_ReturnsZero() {
	deliverer := suite.createUser("deliverer-idle", user.RoleDeliverer)

	handler := queries.NewGetDelivererEarningsQueryHandler(suite.db)
	query, err := queries.NewGetDelivererEarningsQuery(deliverer.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(result.Earnings.IsZero())
}

func (suite *QueryHandlersTestSuite) TestGetProductStats_RevenueCountsOnlyDelivered() {
	client := suite.createUser("client-stats", user.RoleClient)
	deliverer := suite.createUser("deliverer-stats", user.RoleDeliverer)
	rest := suite.createRestaurant("Pizza Place")
	pizza := suite.createProduct("Margherita", "12.50", rest)
	salad := suite.createProduct("Caesar", "8.00", rest)

	delivered := suite.placeOrder(client, rest, time.Now(), map[*product.Product]int{pizza: 2})
	suite.deliverOrder(delivered, deliverer)
	suite.placeOrder(client, rest, time.Now(), map[*product.Product]int{pizza: 1})

	handler := queries.NewGetProductStatsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetProductStatsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := make(map[int64]queries.GetProductStatsQueryResponse, len(result))
	for _, stat := range result {
		byID[stat.ProductID] = stat
	}

	pizzaStats := byID[pizza.ID()]
	suite.Equal("Margherita", pizzaStats.Name)
	suite.Equal(int64(2), pizzaStats.TimesOrdered)
	suite.True(pizzaStats.Revenue.Equal(decimal.RequireFromString("25.00")),
		"expected 25.00, got %s", pizzaStats.Revenue)

	// Never ordered, still reported.
	saladStats := byID[salad.ID()]
	suite.Equal(int64(0), saladStats.TimesOrdered)
	suite.True(saladStats.Revenue.IsZero())
}

func (suite *QueryHandlersTestSuite) TestGetPopularProducts_RanksByReferenceCount() {
	client := suite.createUser("client-popular", user.RoleClient)
	rest := suite.createRestaurant("Pizza Place")
	pizza := suite.createProduct("Margherita", "12.50", rest)
	salad := suite.createProduct("Caesar", "8.00", rest)
	// Never ordered, must not appear in the ranking.
	suite.createProduct("Minestrone", "6.00", rest)

	suite.placeOrder(client, rest, time.Now(), map[*product.Product]int{pizza: 1, salad: 1})
	suite.placeOrder(client, rest, time.Now(), map[*product.Product]int{pizza: 3})
	suite.placeOrder(client, rest, time.Now(), map[*product.Product]int{salad: 1})

	handler := queries.NewGetPopularProductsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetPopularProductsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(pizza.ID(), result[0].ProductID)
	suite.Equal(int64(2), result[0].OrderCount)
	suite.Equal(salad.ID(), result[1].ProductID)
	suite.Equal(int64(2), result[1].OrderCount)
}

func (suite *QueryHandlersTestSuite) TestGetSalesReport_DailyWindow() {
	client := suite.createUser("client-daily", user.RoleClient)
	rest := suite.createRestaurant("Pizza Place")
	pizza := suite.createProduct("Margherita", "12.50", rest)

	reportDay := time.Date(2025, time.March, 14, 12, 30, 0, 0, time.UTC)
	suite.placeOrder(client, rest, reportDay, map[*product.Product]int{pizza: 2})
	suite.placeOrder(client, rest, reportDay.AddDate(0, 0, 1), map[*product.Product]int{pizza: 1})

	handler := queries.NewGetSalesReportQueryHandler(suite.orderRepo)
	query, err := queries.NewDailySalesReportQuery(reportDay)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(1, result.OrderCount)
	suite.Require().Len(result.Orders, 1)
	suite.Equal("Pizza Place", result.Orders[0].RestaurantName)
	suite.Equal(1, result.Orders[0].ItemCount)
	suite.True(result.Revenue.Equal(decimal.RequireFromString("25.00")),
		"expected 25.00, got %s", result.Revenue)
}

func (suite *QueryHandlersTestSuite) TestGetSalesReport_MonthlyWindow() {
	client := suite.createUser("client-monthly", user.RoleClient)
	rest := suite.createRestaurant("Pizza Place")
	pizza := suite.createProduct("Margherita", "10.00", rest)

	inMarch := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	alsoMarch := time.Date(2025, time.March, 28, 19, 0, 0, 0, time.UTC)
	inApril := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)
	suite.placeOrder(client, rest, inMarch, map[*product.Product]int{pizza: 1})
	suite.placeOrder(client, rest, alsoMarch, map[*product.Product]int{pizza: 2})
	suite.placeOrder(client, rest, inApril, map[*product.Product]int{pizza: 5})

	handler := queries.NewGetSalesReportQueryHandler(suite.orderRepo)
	query, err := queries.NewMonthlySalesReportQuery(2025, time.March)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(2, result.OrderCount)
	suite.True(result.Revenue.Equal(decimal.RequireFromString("30.00")),
		"expected 30.00, got %s", result.Revenue)

	// Newest first within the month.
	suite.Require().Len(result.Orders, 2)
	suite.True(result.Orders[0].PlacedAt.After(result.Orders[1].PlacedAt))
}

func (suite *QueryHandlersTestSuite) TestGetSalesReport_EmptyWindow() {
	handler := queries.NewGetSalesReportQueryHandler(suite.orderRepo)
	query, err := queries.NewDailySalesReportQuery(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(0, result.OrderCount)
	suite.Empty(result.Orders)
	suite.True(result.Revenue.IsZero())
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
