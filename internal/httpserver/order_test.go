package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/ecom-api/internal/models"
	"github.com/Skotchmaster/ecom-api/internal/transport"
)

func (env *testEnv) seedOrder(t *testing.T, userID uint, total float64) models.Order {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/orders", map[string]any{
		"userId": userID, "totalAmount": total,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeJSON[models.Order](t, rec)
}

func TestCreateOrderIgnoresStatusInBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/orders", map[string]any{
		"userId":      1,
		"totalAmount": 1999.98,
		"status":      "shipped",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	order := decodeJSON[models.Order](t, rec)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, uint(1), order.UserID)
	require.Equal(t, 1999.98, order.TotalAmount)
}

func TestCreateOrderMissingUserIs400(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/orders", map[string]any{"totalAmount": 10})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, transport.CodeBadRequest, decodeJSON[transport.ErrorResponse](t, rec).Code)
}

func TestListOrdersEmptyIs200EmptyList(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/orders/7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestListOrdersFiltersByUser(t *testing.T) {
	env := newTestEnv(t)
	env.seedOrder(t, 1, 10)
	env.seedOrder(t, 1, 20)
	env.seedOrder(t, 2, 30)

	rec := env.do(t, http.MethodGet, "/api/orders/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decodeJSON[[]models.Order](t, rec)
	require.Len(t, orders, 2)
}

func TestGetOrderByID(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, 1, 42)

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/orders/order/%d", seeded.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, seeded.ID, decodeJSON[models.Order](t, rec).ID)

	rec = env.do(t, http.MethodGet, "/api/orders/order/9999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, transport.CodeNotFound, decodeJSON[transport.ErrorResponse](t, rec).Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, 1, 42)

	rec := env.do(t, http.MethodPut, "/api/orders/update", map[string]any{
		"orderId": seeded.ID, "status": "shipped",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, models.OrderStatusShipped, decodeJSON[models.Order](t, rec).Status)
}

func TestUpdateOrderStatusMissingOrderIs404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/orders/update", map[string]any{
		"orderId": 9999, "status": "shipped",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOrderStatusEmptyStatusIs400(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, 1, 42)

	rec := env.do(t, http.MethodPut, "/api/orders/update", map[string]any{
		"orderId": seeded.ID, "status": "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteOrderReturnsDeletedRow(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, 1, 42)

	path := fmt.Sprintf("/api/orders/delete/%d", seeded.ID)
	rec := env.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, seeded.ID, decodeJSON[models.Order](t, rec).ID)

	rec = env.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
