package models

// CartItem lives in the session store, never in the database. Name and
// price are snapshots taken when the item is added.
type CartItem struct {
	MenuID         uint   `json:"menu_id"`
	MenuName       string `json:"menu_name"`
	Price          int    `json:"price"`
	Quantity       int    `json:"quantity"`
	Temperature    string `json:"temperature"`
	SpecialRequest string `json:"special_request"`
	Subtotal       int    `json:"subtotal"`
}

// Cart is the ordered list of items in a single browser session.
// Entries are addressed by position; indices shift on removal.
type Cart []CartItem

// Add merges into an existing entry with the same
// (menu, temperature, special request) tuple or appends a new one.
func (c Cart) Add(menu Menu, quantity int, temperature, specialRequest string) Cart {
	for i := range c {
		if c[i].MenuID == menu.ID &&
			c[i].Temperature == temperature &&
			c[i].SpecialRequest == specialRequest {
			c[i].Quantity += quantity
			c[i].Subtotal = c[i].Quantity * menu.Price
			return c
		}
	}
	return append(c, CartItem{
		MenuID:         menu.ID,
		MenuName:       menu.Name,
		Price:          menu.Price,
		Quantity:       quantity,
		Temperature:    temperature,
		SpecialRequest: specialRequest,
		Subtotal:       quantity * menu.Price,
	})
}

// UpdateQuantity sets the quantity of the entry at index. A quantity of
// zero or less removes the entry instead.
func (c Cart) UpdateQuantity(index, quantity int) (Cart, bool) {
	if index < 0 || index >= len(c) {
		return c, false
	}
	if quantity <= 0 {
		return c.Remove(index)
	}
	c[index].Quantity = quantity
	c[index].Subtotal = quantity * c[index].Price
	return c, true
}

// Remove drops the entry at index, shifting later entries down.
func (c Cart) Remove(index int) (Cart, bool) {
	if index < 0 || index >= len(c) {
		return c, false
	}
	return append(c[:index], c[index+1:]...), true
}

// Total sums the entry subtotals.
func (c Cart) Total() int {
	total := 0
	for i := range c {
		total += c[i].Subtotal
	}
	return total
}
