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

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *mykafka.Producer
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("register_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, err.Error())
		}
		if errors.Is(err, service.ErrConflict) {
			l.Warn("register_error", "status", 409, "username", req.Username)
			return respondError(c, http.StatusConflict, transport.CodeConflict, "username taken")
		}
		l.Error("register_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(pubCtx, fmt.Sprint(user.ID), map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
	}); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, transport.CodeBadRequest, "invalid body")
	}

	token, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_error", "status", 401, "username", req.Username)
			return respondError(c, http.StatusUnauthorized, transport.CodeUnauthorized, "invalid username or password")
		}
		l.Error("login_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	l.Info("login_success", "username", req.Username)
	return c.JSON(http.StatusOK, transport.LoginResponse{Token: token})
}

// Me reads the user id the require-auth middleware put into context.
func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.me")

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		l.Warn("me_error", "status", 401)
		return respondError(c, http.StatusUnauthorized, transport.CodeUnauthorized, "unauthorized")
	}

	user, err := h.Svc.CurrentUser(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("me_error", "status", 404, "user_id", userID)
			return respondError(c, http.StatusNotFound, transport.CodeNotFound, "user not found")
		}
		l.Error("me_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, transport.CodeInternal, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}
