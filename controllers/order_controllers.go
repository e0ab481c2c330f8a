package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-management/events"
	"cafe-management/middlewares"
	"cafe-management/models"
	"cafe-management/utils"
)

type OrderController struct {
	DB  *gorm.DB
	Hub *events.Hub
	// PerPage sets the sales-filter page size; zero disables paging.
	PerPage int
}

func NewOrderController(db *gorm.DB, hub *events.Hub, perPage int) *OrderController {
	return &OrderController{DB: db, Hub: hub, PerPage: perPage}
}

// PlaceOrder handles POST /user/place_order: materializes the session
// cart into one Order plus its OrderItems inside a single transaction.
// The cart is cleared only after the transaction commits.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	sess := middlewares.GetSession(c)
	if len(sess.Cart) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrEmptyCart)
		return
	}

	customerName := strings.TrimSpace(c.PostForm("customer_name"))
	deliveryLocation := strings.TrimSpace(c.PostForm("delivery_location"))
	deliveryTime := c.PostForm("delivery_time")
	orderRequest := c.PostForm("order_request")

	if customerName == "" || deliveryLocation == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingCustomerInfo)
		return
	}

	now := time.Now()
	order := models.Order{
		OrderDate:        now,
		Status:           models.StatusPending,
		TotalAmount:      sess.Cart.Total(),
		CustomerName:     customerName,
		DeliveryLocation: deliveryLocation,
		DeliveryTime:     deliveryTime,
		OrderRequest:     orderRequest,
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		// the order row goes first so its id exists for the items
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range sess.Cart {
			menuID := item.MenuID
			orderItem := models.OrderItem{
				OrderID:        order.ID,
				MenuID:         &menuID,
				MenuName:       item.MenuName,
				Quantity:       item.Quantity,
				Subtotal:       item.Subtotal,
				Temperature:    item.Temperature,
				SpecialRequest: item.SpecialRequest,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, orderItem)
		}
		return nil
	})
	if err != nil {
		utils.ErrorLogger.Printf("place_order failed for %s: %v", customerName, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to place the order"))
		return
	}

	sess.Cart = nil

	utils.InfoLogger.Printf("Order #%d placed by %s (%d won, %d items)",
		order.ID, order.CustomerName, order.TotalAmount, len(order.OrderItems))
	oc.Hub.OrderCreated(order)

	utils.RespondJSON(c, http.StatusCreated, "Order placed", gin.H{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"status":       order.Status,
	})
}

// GetRecentOrders handles GET /admin/get_recent_orders (AJAX) and returns
// the latest 10 orders, newest first.
func (oc *OrderController) GetRecentOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("OrderItems").
		Order("order_date DESC").
		Limit(10).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	ordersData := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		ordersData = append(ordersData, gin.H{
			"id":                order.ID,
			"order_date":        order.OrderDate.Format("2006-01-02 15:04"),
			"customer_name":     order.CustomerName,
			"total_amount":      order.TotalAmount,
			"status":            order.Status,
			"delivery_location": order.DeliveryLocation,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": ordersData})
}

// UpdateOrderStatus handles POST /admin/update_order_status/:order_id
// (AJAX). An unknown status leaves the order untouched.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid order id"})
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": ErrOrderNotFound.Error()})
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !models.IsValidOrderStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": ErrInvalidStatus.Error()})
		return
	}

	order.Status = body.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	oc.Hub.OrderStatusChanged(order.ID, order.Status)
	c.JSON(http.StatusOK, gin.H{"success": true, "status": order.Status})
}

// DeleteOrder handles POST /admin/delete_order/:order_id (AJAX) and
// removes the order together with its line items.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid order id"})
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": ErrOrderNotFound.Error()})
		return
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	oc.Hub.OrderDeleted(order.ID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ordersInRange filters on the date portion of order_date, inclusive on
// both ends, newest first. Empty bounds are open.
func ordersInRange(db *gorm.DB, startDate, endDate string) ([]models.Order, error) {
	q := db.Model(&models.Order{})
	if startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			return nil, errors.New("invalid start_date, expected YYYY-MM-DD")
		}
		q = q.Where("DATE(order_date) >= ?", startDate)
	}
	if endDate != "" {
		if _, err := time.Parse("2006-01-02", endDate); err != nil {
			return nil, errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		q = q.Where("DATE(order_date) <= ?", endDate)
	}

	var orders []models.Order
	err := q.Preload("OrderItems").Preload("OrderItems.Menu").
		Order("order_date DESC").Find(&orders).Error
	return orders, err
}

// FilterSales handles POST /admin/sales/filter. Totals cover the whole
// range; the order list is paged by the configured page size.
func (oc *OrderController) FilterSales(c *gin.Context) {
	startDate := c.PostForm("start_date")
	endDate := c.PostForm("end_date")

	orders, err := ordersInRange(oc.DB, startDate, endDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	totalSales := 0
	for _, order := range orders {
		totalSales += order.TotalAmount
	}
	totalCount := len(orders)

	page := 1
	if oc.PerPage > 0 {
		if p, perr := strconv.Atoi(c.DefaultPostForm("page", "1")); perr == nil && p > 0 {
			page = p
		}
		start := (page - 1) * oc.PerPage
		if start >= len(orders) {
			orders = nil
		} else if end := start + oc.PerPage; end < len(orders) {
			orders = orders[start:end]
		} else {
			orders = orders[start:]
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Filtered orders", gin.H{
		"orders":      orders,
		"total_sales": totalSales,
		"total_count": totalCount,
		"page":        page,
		"per_page":    oc.PerPage,
		"start_date":  startDate,
		"end_date":    endDate,
	})
}
