package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	list, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, int64(20250101000000), list[0].Version)
}

func TestMigrations_DefineSchema(t *testing.T) {
	data, err := fs.ReadFile(migrations, "migrations/20250101000000_init.sql")
	require.NoError(t, err)
	sql := string(data)

	for _, table := range []string{
		"clients", "vehicles", "suppliers", "parts", "inventory", "service_orders",
		"appointments", "quotations", "notifications", "workshop_settings", "transactions",
	} {
		assert.True(t, strings.Contains(sql, "CREATE TABLE "+table+" ("), "missing table %s", table)
	}
	assert.Contains(t, sql, "FUNCTION generate_order_number()")
	assert.Contains(t, sql, "FUNCTION generate_quotation_number()")
	assert.Contains(t, sql, "-- +goose Down")
}
