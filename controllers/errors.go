package controllers

import "errors"

// Error taxonomy: validation errors answer 400, not-found 404, anything
// failing inside a multi-row write rolls back and answers 500.
var (
	ErrMenuNotFound        = errors.New("menu not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrMenuSoldOut         = errors.New("menu is sold out")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomerInfo = errors.New("customer name and delivery location are required")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidTemperature  = errors.New("invalid temperature option")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)
