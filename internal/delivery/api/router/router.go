// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authscreen/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler *handler.AuthHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/screen", r.authHandler.GetScreen)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/google/sign-in", r.authHandler.SignIn)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
	}

	alertGroup := e.Group("/alerts")
	{
		alertGroup.POST("/:id/ack", r.authHandler.AcknowledgeAlert)
	}
}
