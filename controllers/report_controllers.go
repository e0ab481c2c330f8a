package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"cafe-management/events"
	"cafe-management/models"
	"cafe-management/utils"
)

// Spreadsheet layout shared by export and import. One row per order line
// item; order-level fields repeat across the order's rows.
const exportSheet = "주문내역"

var exportColumns = []string{
	"주문번호", "주문일시", "고객명", "배달위치", "배달시간",
	"메뉴명", "수량", "온도", "특별요청", "소계", "총액", "상태", "주문요청사항",
}

type ReportController struct {
	DB  *gorm.DB
	Hub *events.Hub
}

func NewReportController(db *gorm.DB, hub *events.Hub) *ReportController {
	return &ReportController{DB: db, Hub: hub}
}

// ExportAllOrders handles GET /admin/export_all_orders.
func (rc *ReportController) ExportAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := rc.DB.Preload("OrderItems").Preload("OrderItems.Menu").
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := fmt.Sprintf("전체주문내역_%s.xlsx", time.Now().Format("20060102_150405"))
	rc.writeWorkbook(c, orders, filename)
}

// ExportPeriodOrders handles POST /admin/export_period_orders with
// start_date/end_date form fields.
func (rc *ReportController) ExportPeriodOrders(c *gin.Context) {
	startDate := c.PostForm("start_date")
	endDate := c.PostForm("end_date")

	orders, err := ordersInRange(rc.DB, startDate, endDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	filename := fmt.Sprintf("주문내역_%s_%s_%s.xlsx",
		startDate, endDate, time.Now().Format("20060102_150405"))
	rc.writeWorkbook(c, orders, filename)
}

func (rc *ReportController) writeWorkbook(c *gin.Context, orders []models.Order, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportColumns); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rowNum := 2
	for _, order := range orders {
		for _, item := range order.OrderItems {
			row := []interface{}{
				order.ID,
				order.OrderDate.Format("2006-01-02 15:04:05"),
				order.CustomerName,
				order.DeliveryLocation,
				order.DeliveryTime,
				item.DisplayName(),
				item.Quantity,
				item.Temperature,
				item.SpecialRequest,
				item.Subtotal,
				order.TotalAmount,
				order.Status,
				order.OrderRequest,
			}
			cell := fmt.Sprintf("A%d", rowNum)
			if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
			rowNum++
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		utils.ErrorLogger.Printf("export write failed: %v", err)
	}
}

// ImportPage handles GET /admin/import_orders.
func (rc *ReportController) ImportPage(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Upload an .xlsx file with the export columns", gin.H{
		"columns": exportColumns,
	})
}

// ImportOrders handles POST /admin/import_orders. Each valid row becomes
// one order shell: the total is taken verbatim and no line items are
// created. Rows missing customer or location are counted as errors and
// skipped, never aborting the batch.
func (rc *ReportController) ImportOrders(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("select a file to upload"))
		return
	}
	name := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
		utils.RespondError(c, http.StatusBadRequest, errors.New("only Excel files (.xlsx, .xls) can be uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	wb, err := excelize.OpenReader(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("could not read the spreadsheet"))
		return
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("the workbook has no sheets"))
		return
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil || len(rows) < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("the sheet has no rows"))
		return
	}

	col := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		col[strings.TrimSpace(header)] = i
	}

	get := func(row []string, header string) string {
		idx, ok := col[header]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	imported, errCount := 0, 0
	for _, row := range rows[1:] {
		customer := get(row, "고객명")
		location := get(row, "배달위치")
		if customer == "" || location == "" {
			errCount++
			continue
		}

		total := 0
		if v := get(row, "총액"); v != "" {
			if n, perr := strconv.Atoi(v); perr == nil {
				total = n
			}
		}
		status := get(row, "상태")
		if status == "" {
			status = models.StatusPending
		}

		order := models.Order{
			OrderDate:        time.Now(),
			Status:           status,
			TotalAmount:      total,
			CustomerName:     customer,
			DeliveryLocation: location,
			DeliveryTime:     get(row, "배달시간"),
			OrderRequest:     get(row, "주문요청사항"),
		}
		if err := rc.DB.Create(&order).Error; err != nil {
			errCount++
			continue
		}
		imported++
	}

	utils.InfoLogger.Printf("order import: %d imported, %d errors", imported, errCount)
	rc.Hub.OrdersImported(imported, errCount)

	utils.RespondJSON(c, http.StatusOK,
		fmt.Sprintf("%d orders imported (%d errors)", imported, errCount),
		gin.H{"imported": imported, "errors": errCount})
}
