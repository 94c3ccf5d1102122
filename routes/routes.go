// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"smsdash-server/commons"
	"smsdash-server/handlers"
	"smsdash-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering v1 routes")
	api_v1 := e.Group("/v1")
	api_v1.POST("/auth/signup", handlers.SignupHandler)
	api_v1.POST("/auth/login", handlers.LoginHandler)
	api_v1.POST("/auth/logout", handlers.LogoutHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/users/", handlers.GetUserHandler, middlewares.VerifySessionMiddleware)
	// The send route resolves the session itself so authorization failures
	// come back as the dashboard's 403 envelope instead of the middleware 401.
	api_v1.POST("/users/:user_id/messages", handlers.SendMessageHandler)
	// Deliberately unauthenticated and unpaginated, matching the dashboard's
	// observed behavior. Known scoping gap.
	api_v1.GET("/messages", handlers.GetAllMessagesHandler)
	commons.Logger.Info("v1 routes registered successfully")
}
