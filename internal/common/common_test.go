package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"primary_color" validate:"omitempty,hexcolor"`
	Year  int    `json:"year" validate:"omitempty,min=1900"`
}

func TestRequestValidator_ReportsJSONNames(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(&sampleRequest{Color: "blue", Year: 1800})
	require.Error(t, err)

	details, ok := ValidationDetails(err)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be a hex color", details["primary_color"])
	assert.Equal(t, "must be at least 1900", details["year"])

	assert.NoError(t, v.Validate(&sampleRequest{Name: "ok", Color: "#2563eb"}))
}

func TestValidationDetails_OtherErrors(t *testing.T) {
	_, ok := ValidationDetails(assert.AnError)
	assert.False(t, ok)
}

func TestValidatePaginationParams(t *testing.T) {
	limit, offset, err := ValidatePaginationParams(0, -5)
	require.NoError(t, err)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 0, offset)

	limit, _, err = ValidatePaginationParams(5000, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000, limit)

	_, _, err = ValidatePaginationParams(10, 2000000)
	assert.Error(t, err)
}

func TestPaginationAndParseID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=20&offset=40", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	id := uuid.New()
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	limit, offset, err := Pagination(c)
	require.NoError(t, err)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, offset)

	parsed, err := ParseID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	c.SetParamValues("not-a-uuid")
	_, err = ParseID(c, "id")
	assert.EqualError(t, err, "id must be a valid UUID")
}

func TestSendNotFoundError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, SendNotFoundError(c, "Client"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"Client not found"}}`, rec.Body.String())
}

func TestUserIDContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := GetUserIDFromContext(WithUserID(context.Background(), "user-1"))
	assert.True(t, ok)
	assert.Equal(t, "user-1", id)
}
