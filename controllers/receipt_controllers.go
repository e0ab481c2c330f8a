package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"

	"cafe-management/models"
	"cafe-management/utils"
)

type ReceiptController struct {
	DB *gorm.DB
	// FontPath points at a UTF-8 TTF used for Korean text; when empty the
	// built-in Helvetica is used and non-Latin characters degrade.
	FontPath string
}

func NewReceiptController(db *gorm.DB, fontPath string) *ReceiptController {
	return &ReceiptController{DB: db, FontPath: fontPath}
}

func (rc *ReceiptController) loadOrder(c *gin.Context) (*models.Order, bool) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid order id"))
		return nil, false
	}
	var order models.Order
	if err := rc.DB.Preload("OrderItems").Preload("OrderItems.Menu").
		First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return nil, false
	}
	return &order, true
}

func (rc *ReceiptController) newPDF(orientation string, size fpdf.SizeType) (*fpdf.Fpdf, string) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		Size:           size,
	})
	fontName := "Helvetica"
	if rc.FontPath != "" {
		pdf.AddUTF8Font("receipt", "", rc.FontPath)
		if pdf.Err() {
			utils.ErrorLogger.Printf("receipt font %s failed to load: %v", rc.FontPath, pdf.Error())
			pdf.ClearError()
		} else {
			fontName = "receipt"
		}
	}
	return pdf, fontName
}

func (rc *ReceiptController) servePDF(c *gin.Context, pdf *fpdf.Fpdf, filename string) {
	if pdf.Err() {
		utils.RespondError(c, http.StatusInternalServerError, pdf.Error())
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	if err := pdf.Output(c.Writer); err != nil {
		utils.ErrorLogger.Printf("receipt output failed: %v", err)
	}
}

// PrintReceipt handles GET /admin/print_receipt/:order_id — the full A4
// receipt for filing.
func (rc *ReceiptController) PrintReceipt(c *gin.Context) {
	order, ok := rc.loadOrder(c)
	if !ok {
		return
	}

	pdf, font := rc.newPDF("P", fpdf.SizeType{Wd: 210, Ht: 297})
	pdf.AddPage()

	pdf.SetFont(font, "", 18)
	pdf.CellFormat(0, 12, "Cafe Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Order #%d", order.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, order.OrderDate.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(0, 7, fmt.Sprintf("Customer: %s", order.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Delivery: %s", order.DeliveryLocation), "", 1, "L", false, 0, "")
	if order.DeliveryTime != "" {
		pdf.CellFormat(0, 7, fmt.Sprintf("Time: %s", order.DeliveryTime), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// items table
	pdf.SetFont(font, "", 10)
	pdf.CellFormat(80, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Temp", "B", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "B", 1, "R", false, 0, "")
	for _, item := range order.OrderItems {
		pdf.CellFormat(80, 8, item.DisplayName(), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, item.Temperature, "", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, utils.FormatCurrencyKRW(item.Subtotal), "", 1, "R", false, 0, "")
		if item.SpecialRequest != "" {
			pdf.SetFont(font, "", 8)
			pdf.CellFormat(165, 5, "  * "+item.SpecialRequest, "", 1, "L", false, 0, "")
			pdf.SetFont(font, "", 10)
		}
	}

	pdf.Ln(4)
	pdf.SetFont(font, "", 13)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total: %s", utils.FormatCurrencyKRW(order.TotalAmount)), "T", 1, "R", false, 0, "")
	if order.OrderRequest != "" {
		pdf.SetFont(font, "", 9)
		pdf.MultiCell(0, 6, "Request: "+order.OrderRequest, "", "L", false)
	}

	rc.servePDF(c, pdf, fmt.Sprintf("receipt_%d.pdf", order.ID))
}

// PrintReceiptSmall handles GET /admin/print_receipt_small/:order_id —
// the 58mm roll format used at the counter printer.
func (rc *ReceiptController) PrintReceiptSmall(c *gin.Context) {
	order, ok := rc.loadOrder(c)
	if !ok {
		return
	}

	height := 90 + float64(len(order.OrderItems))*10
	pdf, font := rc.newPDF("P", fpdf.SizeType{Wd: 58, Ht: height})
	pdf.SetMargins(3, 4, 3)
	pdf.AddPage()

	pdf.SetFont(font, "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Order #%d", order.ID), "", 1, "C", false, 0, "")
	pdf.SetFont(font, "", 7)
	pdf.CellFormat(0, 4, order.OrderDate.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, order.CustomerName+" / "+order.DeliveryLocation, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	for _, item := range order.OrderItems {
		pdf.CellFormat(34, 4, item.DisplayName(), "", 0, "L", false, 0, "")
		pdf.CellFormat(6, 4, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(12, 4, utils.FormatCurrencyKRW(item.Subtotal), "", 1, "R", false, 0, "")
		if item.Temperature != "" {
			pdf.CellFormat(0, 3, "("+item.Temperature+")", "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(1)
	pdf.SetFont(font, "", 9)
	pdf.CellFormat(0, 5, utils.FormatCurrencyKRW(order.TotalAmount), "T", 1, "R", false, 0, "")

	rc.servePDF(c, pdf, fmt.Sprintf("receipt_small_%d.pdf", order.ID))
}
