// Package router registers the API routes.
package router

import (
	"authproxy/internal/delivery/api/middleware"
	"authproxy/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LegacyAuthHandler *handler.LegacyAuthHandler
	SessionHandler    *handler.SessionHandler
	UserHandler       *handler.UserHandler
	OAuthHandler      *handler.OAuthHandler
	PasswordHandler   *handler.PasswordHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	legacyAuthHandler *handler.LegacyAuthHandler
	sessionHandler    *handler.SessionHandler
	userHandler       *handler.UserHandler
	oauthHandler      *handler.OAuthHandler
	passwordHandler   *handler.PasswordHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		legacyAuthHandler: params.LegacyAuthHandler,
		sessionHandler:    params.SessionHandler,
		userHandler:       params.UserHandler,
		oauthHandler:      params.OAuthHandler,
		passwordHandler:   params.PasswordHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Provider pass-through
	e.POST("/auth", r.legacyAuthHandler.Handle)

	// GitHub OAuth bridge
	e.GET("/auth/github", r.oauthHandler.GitHubLogin)
	e.GET("/auth/github/callback", r.oauthHandler.GitHubCallback)

	e.POST("/login/access-token", r.sessionHandler.LoginAccessToken)

	// Trailing slashes are canonical; the bare paths are aliases.
	e.POST("/users/", r.userHandler.CreateUser)
	e.POST("/users", r.userHandler.CreateUser)
	e.GET("/users/me", r.userHandler.GetMe, r.authMiddleware.Authenticate)

	e.POST("/password-recovery/:email", r.passwordHandler.RecoverPassword)
	e.POST("/reset-password/", r.passwordHandler.ResetPassword)
	e.POST("/reset-password", r.passwordHandler.ResetPassword)
}
