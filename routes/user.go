package routes

import (
	"github.com/OsamaAsender/quantamstore-api/auth"
	cartControllers "github.com/OsamaAsender/quantamstore-api/controllers/cart"
	categoryControllers "github.com/OsamaAsender/quantamstore-api/controllers/category"
	orderControllers "github.com/OsamaAsender/quantamstore-api/controllers/order"
	productControllers "github.com/OsamaAsender/quantamstore-api/controllers/product"
	"github.com/OsamaAsender/quantamstore-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the customer-facing endpoints. Catalog
// reads are public; cart and order endpoints require a session.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, jwt *auth.Service) {
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/categories/:id", categoryControllers.GetCategoryByID(db))

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(db, jwt))
	{
		cartGroup := authed.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCartHandler(db))
			cartGroup.POST("/add", cartControllers.AddItemHandler(db))
			cartGroup.PUT("/item/:itemId", cartControllers.UpdateItemHandler(db))
			cartGroup.DELETE("/item/:itemId", cartControllers.RemoveItemHandler(db))
			cartGroup.POST("/checkout", orderControllers.CheckoutHandler(db))
		}

		authed.GET("/orders", orderControllers.GetUserOrdersHandler(db))
		authed.GET("/orders/:orderId", orderControllers.GetOrderByIDHandler(db))
	}
}
