package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecom-api/internal/logging"
	"github.com/Skotchmaster/ecom-api/internal/service"
	"github.com/Skotchmaster/ecom-api/internal/transport"
)

type SearchHTTP struct {
	Svc *service.SearchService
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_error", "status", 400)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "q is required")
	}

	if !h.Svc.Enabled() {
		l.Warn("search_error", "status", 503)
		return respondError(c, http.StatusServiceUnavailable, transport.CodeUnavailable, "search is not configured")
	}

	from := parseIntDefault(c.QueryParam("from"), 0)
	size := parseIntDefault(c.QueryParam("size"), 20)

	total, products, err := h.Svc.Search(ctx, q, from, size)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
