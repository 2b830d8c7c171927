package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepo_HasUnreadFor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNotificationRepo(mock)
	ctx := context.Background()
	itemID := uuid.New()
	query := regexp.QuoteMeta(`SELECT EXISTS (`)

	mock.ExpectQuery(query).WithArgs("inventory", itemID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(query).WithArgs("inventory", itemID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(query).WithArgs("inventory", itemID).
		WillReturnError(errors.New("connection reset"))

	found, err := repo.HasUnreadFor(ctx, "inventory", itemID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.HasUnreadFor(ctx, "inventory", itemID)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repo.HasUnreadFor(ctx, "inventory", itemID)
	assert.ErrorContains(t, err, "check unread notifications")

	assert.NoError(t, mock.ExpectationsWereMet())
}
