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

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

// AddToCart merges a repeated add for the same (userId, productId) into
// the existing row, summing quantities.
func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "invalid body")
	}

	item, err := h.Svc.AddOrIncrement(ctx, req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, err.Error())
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	h.publish(c, fmt.Sprint(item.UserID), map[string]any{
		"type":       "cart_item_added",
		"user_id":    item.UserID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	l.Info("add_to_cart_success", "user_id", item.UserID, "product_id", item.ProductID)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := parseUintParam(c, "userId")
	if err != nil {
		l.Warn("get_cart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "userId must be a positive integer")
	}

	lines, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	return c.JSON(http.StatusOK, lines)
}

// SetQuantity replaces the quantity of an existing pair and never
// creates one; that difference from AddToCart is the contract.
func (h *CartHTTP) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	var req transport.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "invalid body")
	}

	item, err := h.Svc.SetQuantity(ctx, req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("update_cart_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, err.Error())
		}
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_cart_error", "status", 404, "user_id", req.UserID, "product_id", req.ProductID)
			return respondError(c, http.StatusNotFound, transport.CodeNotFound, "item not found in cart")
		}
		l.Error("update_cart_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	l.Info("update_cart_success", "user_id", item.UserID, "product_id", item.ProductID)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	userID, err := parseUintParam(c, "userId")
	if err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "userId must be a positive integer")
	}
	productID, err := parseUintParam(c, "productId")
	if err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "productId must be a positive integer")
	}

	item, err := h.Svc.Remove(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_error", "status", 404, "user_id", userID, "product_id", productID)
			return respondError(c, http.StatusNotFound, transport.CodeNotFound, "item not found in cart")
		}
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	l.Info("remove_from_cart_success", "user_id", userID, "product_id", productID)
	return c.JSON(http.StatusOK, item)
}
