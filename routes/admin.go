package routes

import (
	"github.com/OsamaAsender/quantamstore-api/auth"
	categoryControllers "github.com/OsamaAsender/quantamstore-api/controllers/category"
	productControllers "github.com/OsamaAsender/quantamstore-api/controllers/product"
	userControllers "github.com/OsamaAsender/quantamstore-api/controllers/user"
	"github.com/OsamaAsender/quantamstore-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers catalog management and user management.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, jwt *auth.Service) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(db, jwt), middleware.AdminRequired())
	{
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.SoftDeleteProduct(db))
		admin.POST("/products/:id/restore", productControllers.RestoreProduct(db))

		admin.POST("/categories", categoryControllers.CreateCategory(db))
		admin.PUT("/categories/:id", categoryControllers.UpdateCategory(db))
		admin.DELETE("/categories/:id", categoryControllers.SoftDeleteCategory(db))
		admin.POST("/categories/:id/restore", categoryControllers.RestoreCategory(db))

		admin.GET("/users/:id", userControllers.GetUserByID(db))
		admin.PUT("/users/:id", userControllers.UpdateUser(db))
		admin.DELETE("/users/:id", userControllers.DeleteUser(db))
	}
}
