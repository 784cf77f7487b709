package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecom-api/internal/logging"
	"github.com/Skotchmaster/ecom-api/internal/models"
	"github.com/Skotchmaster/ecom-api/internal/mykafka"
	"github.com/Skotchmaster/ecom-api/internal/service"
	"github.com/Skotchmaster/ecom-api/internal/transport"
)

type ProductHTTP struct {
	Svc      *service.CatalogService
	Search   *service.SearchService
	Producer *mykafka.Producer
}

func (h *ProductHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

func (h *ProductHTTP) syncIndex(c echo.Context, prod *models.Product) {
	if err := h.Search.IndexProduct(c.Request().Context(), prod); err != nil {
		logging.FromContext(c.Request().Context()).Error("es_index_error", "error", err)
	}
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "invalid body")
	}

	prod, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		l.Error("create_product_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	h.publish(c, fmt.Sprint(prod.ID), map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
	})
	h.syncIndex(c, prod)

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	items, err := h.Svc.GetProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseUintParam(c, "id")
	if err != nil {
		l.Warn("get_product_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "id must be a positive integer")
	}

	prod, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_error", "status", 404, "product_id", id)
			return respondError(c, http.StatusNotFound, transport.CodeNotFound, "product not found")
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	return c.JSON(http.StatusOK, prod)
}

// ReplaceProduct is a full replace: all four columns are overwritten
// with the request values, absent fields become NULL.
func (h *ProductHTTP) ReplaceProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.replace")

	id, err := parseUintParam(c, "id")
	if err != nil {
		l.Warn("replace_product_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "id must be a positive integer")
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("replace_product_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "invalid body")
	}

	prod, err := h.Svc.ReplaceProduct(ctx, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("replace_product_error", "status", 404, "product_id", id)
			return respondError(c, http.StatusNotFound, transport.CodeNotFound, "product not found")
		}
		l.Error("replace_product_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	h.publish(c, fmt.Sprint(prod.ID), map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
	})
	h.syncIndex(c, prod)

	l.Info("replace_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseUintParam(c, "id")
	if err != nil {
		l.Warn("delete_product_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "id must be a positive integer")
	}

	prod, err := h.Svc.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_product_error", "status", 404, "product_id", id)
			return respondError(c, http.StatusNotFound, transport.CodeNotFound, "product not found")
		}
		l.Error("delete_product_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	h.publish(c, fmt.Sprint(id), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	if err := h.Search.RemoveProduct(ctx, id); err != nil {
		l.Error("es_remove_error", "error", err)
	}

	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, prod)
}
