package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/ecom-api/internal/models"
	"github.com/Skotchmaster/ecom-api/internal/transport"
)

func TestCreateProductReturns201(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/products", map[string]any{
		"name":        "Laptop",
		"description": "High-performance laptop",
		"price":       999.99,
		"stock":       100,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	prod := decodeJSON[models.Product](t, rec)
	require.NotZero(t, prod.ID)
	require.Equal(t, "Laptop", *prod.Name)
	require.Equal(t, 999.99, *prod.Price)
}

func TestGetProductsEmptyListIs200(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestGetProductByID(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedProduct(t, "Laptop", 999.99, 100)

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/products/%d", seeded.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	prod := decodeJSON[models.Product](t, rec)
	require.Equal(t, seeded.ID, prod.ID)
	require.Equal(t, "Laptop", *prod.Name)
}

func TestGetProductNotFoundEnvelope(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products/9999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	errResp := decodeJSON[transport.ErrorResponse](t, rec)
	require.Equal(t, transport.CodeNotFound, errResp.Code)
	require.NotEmpty(t, errResp.Message)
}

func TestGetProductBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, transport.CodeBadRequest, decodeJSON[transport.ErrorResponse](t, rec).Code)
}

func TestReplaceProductNullsAbsentFields(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedProduct(t, "Laptop", 999.99, 100)

	rec := env.do(t, http.MethodPut, fmt.Sprintf("/api/products/%d", seeded.ID), map[string]any{
		"name": "Laptop v2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	prod := decodeJSON[models.Product](t, rec)
	require.Equal(t, "Laptop v2", *prod.Name)
	require.Nil(t, prod.Description)
	require.Nil(t, prod.Price)
	require.Nil(t, prod.Stock)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/products/%d", seeded.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	prod = decodeJSON[models.Product](t, rec)
	require.Nil(t, prod.Price)
	require.Nil(t, prod.Stock)
}

func TestReplaceProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/products/9999", map[string]any{"name": "x"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, transport.CodeNotFound, decodeJSON[transport.ErrorResponse](t, rec).Code)
}

func TestDeleteProductReturnsDeletedRow(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedProduct(t, "Laptop", 999.99, 100)

	rec := env.do(t, http.MethodDelete, fmt.Sprintf("/api/products/%d", seeded.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	prod := decodeJSON[models.Product](t, rec)
	require.Equal(t, seeded.ID, prod.ID)
	require.Equal(t, "Laptop", *prod.Name)

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/products/%d", seeded.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
