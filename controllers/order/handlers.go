package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/OsamaAsender/quantamstore-api/middleware"
	"github.com/OsamaAsender/quantamstore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /cart/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		result, err := Checkout(db, userID)
		if err != nil {
			var unavailable *ProductUnavailableError
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.As(err, &unavailable):
				c.JSON(http.StatusBadRequest, gin.H{"error": unavailable.Error()})
			default:
				// Transaction already rolled back; nothing partial exists.
				c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
			}
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderId
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		// Accept either the numeric id or the order reference.
		param := c.Param("orderId")
		query := db.Preload("Items").Where("user_id = ?", userID)
		if id, err := strconv.ParseUint(param, 10, 64); err == nil {
			query = query.Where("id = ?", uint(id))
		} else {
			query = query.Where("order_ref = ?", param)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
