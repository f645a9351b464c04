package routes

import (
	"github.com/OsamaAsender/quantamstore-api/auth"
	"github.com/OsamaAsender/quantamstore-api/config"
	authControllers "github.com/OsamaAsender/quantamstore-api/controllers/auth"
	"github.com/OsamaAsender/quantamstore-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the session lifecycle endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, jwt *auth.Service, cfg config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db, jwt, cfg.CookieDomain))
		authGroup.POST("/login", authControllers.Login(db, jwt, cfg.CookieDomain))
		authGroup.POST("/logout", authControllers.Logout(cfg.CookieDomain))
		authGroup.GET("/me", middleware.RequireAuth(db, jwt), authControllers.Me(db))
	}
}
