package userrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ int64, _ any) {}

// UserRepositoryIntegrationTestSuite verifies account persistence against a
// real PostgreSQL instance, including the unique-username constraint.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
	suite.repository = userrepo.NewGormUserRepository(db, noopTracker{})
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users CASCADE").Error)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) newAccount(role user.Role) *user.User {
	u, err := user.New("user-"+uuid.NewString(), "$2a$10$testhash", role)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_AssignsID() {
	ctx := context.Background()
	account := suite.newAccount(user.RoleClient)

	suite.Require().NoError(suite.repository.Add(ctx, account))
	suite.Positive(account.ID())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateUsernameRejected() {
	ctx := context.Background()
	first, err := user.New("taken", "$2a$10$testhash", user.RoleClient)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := user.New("taken", "$2a$10$otherhash", user.RoleEmployee)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByUsername_RoundTrip() {
	ctx := context.Background()
	account := suite.newAccount(user.RoleDeliverer)
	suite.Require().NoError(suite.repository.Add(ctx, account))

	got, err := suite.repository.GetByUsername(ctx, account.Username())
	suite.Require().NoError(err)
	suite.Equal(account.ID(), got.ID())
	suite.Equal(user.RoleDeliverer, got.Role())
	suite.Equal(account.PasswordHash(), got.PasswordHash())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByUsername_NotFound() {
	_, err := suite.repository.GetByUsername(context.Background(), "ghost")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByIDs_OmitsMissing() {
	ctx := context.Background()
	a := suite.newAccount(user.RoleClient)
	b := suite.newAccount(user.RoleEmployee)
	suite.Require().NoError(suite.repository.Add(ctx, a))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	got, err := suite.repository.GetByIDs(ctx, []int64{a.ID(), b.ID(), 9999})
	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Contains(got, a.ID())
	suite.Contains(got, b.ID())
	suite.NotContains(got, int64(9999))
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete_RemovesAccount() {
	ctx := context.Background()
	account := suite.newAccount(user.RoleClient)
	suite.Require().NoError(suite.repository.Add(ctx, account))

	suite.Require().NoError(suite.repository.Delete(ctx, account.ID()))

	_, err := suite.repository.GetByID(ctx, account.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, account.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
