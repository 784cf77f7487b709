package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecom-api/internal/logging"
	"github.com/Skotchmaster/ecom-api/internal/mykafka"
	"github.com/Skotchmaster/ecom-api/internal/service"
	"github.com/Skotchmaster/ecom-api/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

// CreateOrder starts every order in "pending"; a status in the request
// body is ignored. The cart is not consulted or cleared.
func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, req.UserID, req.TotalAmount)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_order_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, err.Error())
		}
		l.Error("create_order_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	h.publish(c, fmt.Sprint(order.ID), map[string]any{
		"type":     "order_created",
		"order_id": order.ID,
		"user_id":  order.UserID,
	})

	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	userID, err := parseUintParam(c, "userId")
	if err != nil {
		l.Warn("list_orders_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "userId must be a positive integer")
	}

	orders, err := h.Svc.ListOrders(ctx, userID)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	orderID, err := parseUintParam(c, "orderId")
	if err != nil {
		l.Warn("get_order_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "orderId must be a positive integer")
	}

	order, err := h.Svc.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_order_error", "status", 404, "order_id", orderID)
			return respondError(c, http.StatusNotFound, transport.CodeNotFound, "order not found")
		}
		l.Error("get_order_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) SetStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update")

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "invalid body")
	}

	order, err := h.Svc.SetStatus(ctx, req.OrderID, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("update_order_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, err.Error())
		}
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_order_error", "status", 404, "order_id", req.OrderID)
			return respondError(c, http.StatusNotFound, transport.CodeNotFound, "order not found")
		}
		l.Error("update_order_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	h.publish(c, fmt.Sprint(order.ID), map[string]any{
		"type":     "order_status_changed",
		"order_id": order.ID,
		"status":   order.Status,
	})

	l.Info("update_order_success", "order_id", order.ID, "order_status", order.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	orderID, err := parseUintParam(c, "orderId")
	if err != nil {
		l.Warn("delete_order_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "orderId must be a positive integer")
	}

	order, err := h.Svc.DeleteOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_order_error", "status", 404, "order_id", orderID)
			return respondError(c, http.StatusNotFound, transport.CodeNotFound, "order not found")
		}
		l.Error("delete_order_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	l.Info("delete_order_success", "order_id", orderID)
	return c.JSON(http.StatusOK, order)
}
