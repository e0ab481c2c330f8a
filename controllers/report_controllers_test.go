package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"cafe-management/models"
)

func placeSampleOrder(t *testing.T, tc *testClient) {
	t.Helper()
	tc.postForm("/user/add_to_cart", url.Values{
		"menu_id":         {"1"},
		"quantity":        {"2"},
		"temperature":     {"ice"},
		"special_request": {"얼음 적게"},
	})
	w := tc.postForm("/user/place_order", url.Values{
		"customer_name":     {"Kim"},
		"delivery_location": {"Room 3"},
		"delivery_time":     {"12:30"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestExportAllOrders(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db, models.Menu{Name: "아메리카노", Category: "커피", Price: 4000})
	tc := newTestClient(t, db)

	placeSampleOrder(t, tc)

	tc.login()
	w := tc.get("/admin/export_all_orders")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	wb, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	assert.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("주문내역")
	assert.NoError(t, err)
	// header plus one row per line item
	assert.Len(t, rows, 2)
	assert.Equal(t, "주문번호", rows[0][0])
	assert.Equal(t, "고객명", rows[0][2])

	row := rows[1]
	assert.Equal(t, "Kim", row[2])
	assert.Equal(t, "Room 3", row[3])
	assert.Equal(t, "아메리카노", row[5])
	assert.Equal(t, "2", row[6])
	assert.Equal(t, "8000", row[9])
	assert.Equal(t, "8000", row[10])
	assert.Equal(t, models.StatusPending, row[11])
}

func TestExportPeriodOrders(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db, models.Menu{Name: "아메리카노", Category: "커피", Price: 4000})
	tc := newTestClient(t, db)
	placeSampleOrder(t, tc)

	tc.login()

	today := time.Now().Format("2006-01-02")
	w := tc.postForm("/admin/export_period_orders", url.Values{
		"start_date": {today},
		"end_date":   {today},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	wb, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	assert.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows("주문내역")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	// line items resolve their live menu name
	assert.Equal(t, "아메리카노", rows[1][5])
	assert.Equal(t, "8000", rows[1][9])

	// a window in the past matches nothing
	w = tc.postForm("/admin/export_period_orders", url.Values{
		"start_date": {"2000-01-01"},
		"end_date":   {"2000-01-02"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	wb2, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	assert.NoError(t, err)
	defer wb2.Close()
	rows, err = wb2.GetRows("주문내역")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func buildImportFile(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{
		"주문번호", "주문일시", "고객명", "배달위치", "배달시간",
		"메뉴명", "수량", "온도", "특별요청", "소계", "총액", "상태", "주문요청사항",
	}
	assert.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		assert.NoError(t, err)
		assert.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	assert.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportOrdersCountsAndSkips(t *testing.T) {
	db := setupTestDB(t)
	tc := newTestClient(t, db)
	tc.login()

	sheet := buildImportFile(t, [][]interface{}{
		{1, "2024-01-01 12:00:00", "Kim", "Room 3", "12:30", "아메리카노", 2, "ice", "", 8000, 8000, "completed", ""},
		{2, "2024-01-02 13:00:00", "", "Room 4", "", "라떼", 1, "hot", "", 4500, 4500, "pending", ""},
		{3, "2024-01-03 14:00:00", "Park", "Office", "", "머핀", 1, "", "", 3500, 3500, "", "문 앞에 놔주세요"},
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "orders.xlsx")
	assert.NoError(t, err)
	_, err = part.Write(sheet.Bytes())
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	w := tc.do(http.MethodPost, "/admin/import_orders", &body, mw.FormDataContentType())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"imported":2`)
	assert.Contains(t, w.Body.String(), `"errors":1`)

	var orders []models.Order
	assert.NoError(t, db.Order("id").Find(&orders).Error)
	assert.Len(t, orders, 2)
	assert.Equal(t, "Kim", orders[0].CustomerName)
	assert.Equal(t, 8000, orders[0].TotalAmount)
	assert.Equal(t, "completed", orders[0].Status)
	// blank status defaults to pending
	assert.Equal(t, models.StatusPending, orders[1].Status)
	assert.Equal(t, "문 앞에 놔주세요", orders[1].OrderRequest)

	// imported orders carry totals but no line items
	var items int64
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, items)
}

func TestImportOrdersRejectsNonExcel(t *testing.T) {
	db := setupTestDB(t)
	tc := newTestClient(t, db)
	tc.login()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "orders.csv")
	assert.NoError(t, err)
	_, err = part.Write([]byte("a,b,c"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	w := tc.do(http.MethodPost, "/admin/import_orders", &body, mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
