package models

import "time"

// Order status lifecycle: pending -> preparing -> completed, or cancelled.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	OrderDate        time.Time   `gorm:"not null;index" json:"order_date"`
	Status           string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount      int         `gorm:"not null" json:"total_amount"`
	CustomerName     string      `gorm:"type:varchar(50);not null" json:"customer_name"`
	DeliveryLocation string      `gorm:"type:varchar(100);not null" json:"delivery_location"`
	DeliveryTime     string      `gorm:"type:varchar(50)" json:"delivery_time"`
	OrderRequest     string      `gorm:"type:text" json:"order_request"`
	CreatedAt        time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
}

func IsValidOrderStatus(status string) bool {
	switch status {
	case StatusPending, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
