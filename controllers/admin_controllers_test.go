package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"cafe-management/models"
)

func seedOrder(t *testing.T, db *gorm.DB, orderDate time.Time, total int) models.Order {
	t.Helper()
	order := models.Order{
		OrderDate:        orderDate,
		Status:           models.StatusPending,
		TotalAmount:      total,
		CustomerName:     "김손님",
		DeliveryLocation: "3층 회의실",
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	tc := newTestClient(t, db)

	now := time.Now()
	seedOrder(t, db, now, 8000)
	seedOrder(t, db, now, 4500)
	seedOrder(t, db, now.AddDate(0, 0, -7), 5000)

	tc.login()
	w := tc.get("/admin")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			TodayCount  int64 `json:"today_count"`
			TodaySales  int   `json:"today_sales"`
			TotalOrders int64 `json:"total_orders"`
			TotalSales  int   `json:"total_sales"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp.Data.TodayCount)
	assert.Equal(t, 12500, resp.Data.TodaySales)
	assert.EqualValues(t, 3, resp.Data.TotalOrders)
	assert.Equal(t, 17500, resp.Data.TotalSales)
}

func TestDashboardReportsDatabaseFailure(t *testing.T) {
	db := setupTestDB(t)
	tc := newTestClient(t, db)
	tc.login()

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	w := tc.get("/admin")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	tc := newTestClient(t, db)

	w := tc.postForm("/admin/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the session must not gain the admin flag
	w = tc.get("/admin")
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestLogoutDropsAdminSession(t *testing.T) {
	db := setupTestDB(t)
	tc := newTestClient(t, db)
	tc.login()

	w := tc.get("/admin/logout")
	assert.Equal(t, http.StatusOK, w.Code)

	w = tc.get("/admin")
	assert.Equal(t, http.StatusSeeOther, w.Code)
}
