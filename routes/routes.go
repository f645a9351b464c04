package routes

import (
	"net/http"

	"github.com/OsamaAsender/quantamstore-api/auth"
	"github.com/OsamaAsender/quantamstore-api/config"
	"github.com/OsamaAsender/quantamstore-api/metrics"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, jwt *auth.Service, cfg config.Config) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	SetupAuthRoutes(r, db, jwt, cfg)
	SetupUserRoutes(r, db, jwt)
	SetupAdminRoutes(r, db, jwt)
}
