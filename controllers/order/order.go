package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Henilshingala/JiyashCreation/catalog"
	"github.com/Henilshingala/JiyashCreation/middleware"
	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/Henilshingala/JiyashCreation/pricing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

var errInsufficientStock = errors.New("insufficient stock")

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusConfirmed:
		return models.OrderStatusConfirmed, nil
	case models.OrderStatusShipped:
		return models.OrderStatusShipped, nil
	case models.OrderStatusDelivered:
		return models.OrderStatusDelivered, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(strings.ToLower(status)) {
	case models.PaymentStatusPending:
		return models.PaymentStatusPending, nil
	case models.PaymentStatusPaid:
		return models.PaymentStatusPaid, nil
	case models.PaymentStatusFailed:
		return models.PaymentStatusFailed, nil
	case models.PaymentStatusRefunded:
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// deductStock locks the product row for the ref's material, checks stock
// and decrements it. Returns the product for snapshotting.
func deductStock(tx *gorm.DB, ref models.ProductRef, qty int) (models.CatalogProduct, error) {
	locked := tx.Clauses(clause.Locking{Strength: "UPDATE"})
	switch ref.Material {
	case models.MaterialGold:
		var p models.GoldProduct
		if err := locked.First(&p, ref.ProductID).Error; err != nil {
			return nil, err
		}
		if p.StockQuantity < qty {
			return nil, errInsufficientStock
		}
		if err := tx.Model(&p).UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty)).Error; err != nil {
			return nil, err
		}
		return &p, nil
	case models.MaterialSilver:
		var p models.SilverProduct
		if err := locked.First(&p, ref.ProductID).Error; err != nil {
			return nil, err
		}
		if p.StockQuantity < qty {
			return nil, errInsufficientStock
		}
		if err := tx.Model(&p).UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty)).Error; err != nil {
			return nil, err
		}
		return &p, nil
	case models.MaterialImitation:
		var p models.ImitationProduct
		if err := locked.First(&p, ref.ProductID).Error; err != nil {
			return nil, err
		}
		if p.StockQuantity < qty {
			return nil, errInsufficientStock
		}
		if err := tx.Model(&p).UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty)).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	return nil, catalog.ErrUnknownMaterial
}

// PlaceOrder turns the user's cart into an order: stock is deducted under
// row locks, prices and the imitation discount are frozen at the display
// values, the cart is cleared, and a pending payment row is opened. All in
// one transaction.
// URL: POST /user/orders
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		user := middleware.CurrentUser(c, db)

		var req PlaceOrderRequest
		_ = c.ShouldBindJSON(&req)
		if req.PaymentMethod == "" {
			req.PaymentMethod = "UPI"
		}

		var cartItems []models.CartItem
		if err := db.Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cartItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		multiplier := pricing.MultiplierFor(db, user)

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var (
				items []models.OrderItem
				lines []pricing.Line
			)
			for _, item := range cartItems {
				product, err := deductStock(tx, item.Product, item.Quantity)
				if err != nil {
					if err == gorm.ErrRecordNotFound {
						// Dangling cart ref: the product is gone, skip the line.
						continue
					}
					return err
				}
				_, selling := product.Prices()
				unitPrice := selling.Mul(multiplier)
				items = append(items, models.OrderItem{
					Product:   item.Product,
					Name:      product.ProductName(),
					UnitPrice: unitPrice,
					Quantity:  item.Quantity,
				})
				lines = append(lines, pricing.Line{
					Material:  item.Product.Material,
					UnitPrice: unitPrice,
					Quantity:  item.Quantity,
				})
			}
			if len(items) == 0 {
				return errors.New("cart has no purchasable items")
			}

			summary := pricing.Summarize(lines)
			order = models.Order{
				Reference:      generateOrderRef(),
				UserID:         userID,
				Items:          items,
				Subtotal:       summary.Subtotal,
				DiscountAmount: summary.DiscountAmount,
				TotalAmount:    summary.FinalTotal,
				Status:         models.OrderStatusPending,
				PaymentStatus:  models.PaymentStatusPending,
				OrderedAt:      time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			payment := models.Payment{
				OrderID: order.ID,
				Method:  req.PaymentMethod,
				Amount:  summary.FinalTotal,
				Status:  models.PaymentStatusPending,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			if err == errInsufficientStock {
				c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		var orders []models.Order
		if err := db.Preload("Items").Where("user_id = ?", userID).
			Order("ordered_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GET /user/orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		var order models.Order
		if err := db.Preload("Items").
			Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := db.Model(&models.Order{}).Where("id = ?", c.Param("id")).Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
	}
}

// PUT /admin/orders/:id/payment
func UpdatePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&models.Order{}).Where("id = ?", c.Param("id")).Update("payment_status", status)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			updates := map[string]any{"status": status}
			if status == models.PaymentStatusPaid {
				updates["paid_at"] = time.Now()
			}
			return tx.Model(&models.Payment{}).Where("order_id = ?", c.Param("id")).Updates(updates).Error
		})
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "payment_status": status})
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("ordered_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
