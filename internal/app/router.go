package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"modgoviya.io/modgoviya/internal/api/handlers"
	"modgoviya.io/modgoviya/internal/api/middleware"
	"modgoviya.io/modgoviya/internal/auth/token"
	"modgoviya.io/modgoviya/internal/config"
)

// newRouter wires the HTTP surface. Registration, login, OAuth exchange,
// reset/verification confirmation, and health stay public; everything else
// runs behind RequireAuth, and /admin additionally behind the admin role.
func newRouter(cfg *config.Config, server *handlers.Server, issuer *token.Issuer, users middleware.UserLoader) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", server.Register)
	auth.POST("/login", server.Login)
	auth.POST("/google", server.ProviderLogin("google"))
	auth.POST("/facebook", server.ProviderLogin("facebook"))
	auth.POST("/password-reset/request", server.RequestPasswordReset)
	auth.POST("/password-reset/confirm", server.ConfirmPasswordReset)
	auth.POST("/verify-email/confirm", server.ConfirmEmailVerification)

	authed := auth.Group("", middleware.RequireAuth(issuer, users))
	authed.GET("/me", server.Me)
	authed.POST("/change-password", server.ChangePassword)
	authed.POST("/verify-email/request", server.RequestEmailVerification)

	admin := v1.Group("/admin", middleware.RequireAuth(issuer, users), middleware.RequireRole("admin"))
	admin.GET("/users", server.AdminListUsers)
	admin.PATCH("/users/:id", server.AdminUpdateUser)

	health := v1.Group("/health")
	health.GET("/live", server.Liveness)
	health.GET("/ready", server.Readiness)

	return router
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)

	for _, o := range origins {
		if o == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = true
	return corsCfg
}
