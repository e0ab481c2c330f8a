package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"cafe-management/models"
)

func TestPrintReceipt(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db, models.Menu{Name: "Americano", Category: "coffee", Price: 4000})
	tc := newTestClient(t, db)

	tc.postForm("/user/add_to_cart", url.Values{"menu_id": {"1"}, "quantity": {"2"}})
	w := tc.postForm("/user/place_order", url.Values{
		"customer_name":     {"Kim"},
		"delivery_location": {"Room 3"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	tc.login()

	w = tc.get("/admin/print_receipt/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, len(w.Body.Bytes()) > 4)
	assert.Equal(t, "%PDF", string(w.Body.Bytes()[:4]))

	w = tc.get("/admin/print_receipt_small/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF", string(w.Body.Bytes()[:4]))
}

func TestPrintReceiptUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	tc := newTestClient(t, db)
	tc.login()

	w := tc.get("/admin/print_receipt/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
