package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"workshoppro/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ServiceOrderRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    ServiceOrderRepository
	context context.Context
}

func (suite *ServiceOrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewServiceOrderRepo(mock)
	suite.context = context.Background()
}

func (suite *ServiceOrderRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestServiceOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceOrderRepoTestSuite))
}

func (suite *ServiceOrderRepoTestSuite) TestCreate_ReturnsOrderNumber() {
	order := &models.ServiceOrder{
		ClientID:    uuid.New(),
		VehicleID:   uuid.New(),
		Description: "Troca de óleo",
		Status:      models.OrderStatusQuote,
	}
	now := time.Now()

	suite.mock.ExpectQuery(regexp.QuoteMeta(`VALUES ($1, generate_order_number(), $2`)).
		WithArgs(pgxmock.AnyArg(), order.ClientID, order.VehicleID, order.Description, order.Diagnosis, order.Status, order.Priority,
			order.TotalLabor, order.TotalParts, order.TotalAmount, order.StartedAt, order.CompletedAt, order.EstimatedCompletion).
		WillReturnRows(pgxmock.NewRows([]string{"order_number", "created_at", "updated_at"}).AddRow("OS-000042", now, now))

	err := suite.repo.Create(suite.context, order)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "OS-000042", order.OrderNumber)
}

func (suite *ServiceOrderRepoTestSuite) TestCountByStatus() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM service_orders WHERE status = $1`)).
		WithArgs("em_andamento").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := suite.repo.CountByStatus(suite.context, models.OrderStatusInProgress)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, count)
}

func (suite *ServiceOrderRepoTestSuite) TestListCompletedAmounts_OpenEnded() {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`completed_at IS NOT NULL AND completed_at >= \$1$`).
		WithArgs(from).
		WillReturnRows(pgxmock.NewRows([]string{"total_amount"}).
			AddRow(floatPtr(150.5)).
			AddRow((*float64)(nil)))

	amounts, err := suite.repo.ListCompletedAmounts(suite.context, from, nil)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), amounts, 2)
	assert.Equal(suite.T(), 150.5, *amounts[0])
	assert.Nil(suite.T(), amounts[1])
}

func (suite *ServiceOrderRepoTestSuite) TestListCompletedAmounts_Bounded() {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`AND completed_at <= $2`)).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"total_amount"}).AddRow(floatPtr(80)))

	amounts, err := suite.repo.ListCompletedAmounts(suite.context, from, &to)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), amounts, 1)
}

func (suite *ServiceOrderRepoTestSuite) TestListClientIDs_AllTime() {
	id := uuid.New()
	suite.mock.ExpectQuery(`SELECT client_id FROM service_orders WHERE 1 = 1$`).
		WillReturnRows(pgxmock.NewRows([]string{"client_id"}).AddRow(&id).AddRow(&id))

	ids, err := suite.repo.ListClientIDs(suite.context, nil, nil)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), ids, 2)
}

func (suite *ServiceOrderRepoTestSuite) TestListClientIDs_Window() {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`AND created_at >= $1 AND created_at <= $2`)).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"client_id"}))

	ids, err := suite.repo.ListClientIDs(suite.context, &from, &to)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), ids)
}

func (suite *ServiceOrderRepoTestSuite) TestListRecent_KeepsMissingJoins() {
	id := uuid.New()
	created := time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY so.created_at DESC`)).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_number", "description", "status", "total_amount", "created_at", "name", "brand", "model"}).
			AddRow(id, "OS-000001", stringPtr("Alinhamento"), "em_andamento", floatPtr(200), created, (*string)(nil), (*string)(nil), (*string)(nil)))

	rows, err := suite.repo.ListRecent(suite.context, 5)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), rows, 1)
	assert.Nil(suite.T(), rows[0].ClientName)
	assert.Equal(suite.T(), "OS-000001", rows[0].OrderNumber)
}
