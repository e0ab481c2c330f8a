package models

import "time"

// DeletedMenuLabel is shown for line items whose menu no longer exists.
const DeletedMenuLabel = "삭제된 메뉴"

type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	// MenuID is nulled when the menu is deleted; MenuName keeps the
	// at-order snapshot so history stays readable.
	MenuID         *uint     `gorm:"index" json:"menu_id,omitempty"`
	Menu           *Menu     `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"menu,omitempty"`
	MenuName       string    `gorm:"type:varchar(100);not null" json:"menu_name"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	Subtotal       int       `gorm:"not null" json:"subtotal"`
	Temperature    string    `gorm:"type:varchar(10);default:'ice'" json:"temperature"`
	SpecialRequest string    `gorm:"type:text" json:"special_request"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

// DisplayName prefers the live menu name, then the snapshot, then the
// deleted-menu placeholder.
func (oi *OrderItem) DisplayName() string {
	if oi.Menu != nil && oi.Menu.Name != "" {
		return oi.Menu.Name
	}
	if oi.MenuName != "" {
		return oi.MenuName
	}
	return DeletedMenuLabel
}
