package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-management/middlewares"
	"cafe-management/models"
	"cafe-management/utils"
)

type AdminController struct {
	DB   *gorm.DB
	Gate middlewares.AuthGate
}

func NewAdminController(db *gorm.DB, gate middlewares.AuthGate) *AdminController {
	return &AdminController{DB: db, Gate: gate}
}

// LoginPage handles GET /admin/login.
func (ac *AdminController) LoginPage(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Admin login", gin.H{
		"logged_in": middlewares.GetSession(c).AdminLoggedIn,
	})
}

// Login handles POST /admin/login with form fields username/password.
func (ac *AdminController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !ac.Gate.Check(username, password) {
		utils.ErrorLogger.Printf("failed admin login attempt from %s", c.ClientIP())
		utils.RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	sess := middlewares.GetSession(c)
	sess.AdminLoggedIn = true

	utils.InfoLogger.Printf("admin logged in from %s", c.ClientIP())
	utils.RespondJSON(c, http.StatusOK, "Logged in as admin", nil)
}

// Logout handles GET /admin/logout.
func (ac *AdminController) Logout(c *gin.Context) {
	sess := middlewares.GetSession(c)
	sess.AdminLoggedIn = false
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// Dashboard handles GET /admin: today's order count and sales, the five
// most recent orders, and all-time totals.
func (ac *AdminController) Dashboard(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TodayCount  int64          `json:"today_count"`
		TodaySales  int            `json:"today_sales"`
		TotalOrders int64          `json:"total_orders"`
		TotalSales  int            `json:"total_sales"`
		Recent      []models.Order `json:"recent_orders"`
	}

	if err := ac.DB.Model(&models.Order{}).
		Where("DATE(order_date) = ?", today).
		Count(&stats.TodayCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ac.DB.Model(&models.Order{}).
		Where("DATE(order_date) = ?", today).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TodaySales).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ac.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalSales).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := ac.DB.Preload("OrderItems").
		Order("order_date DESC").
		Limit(5).
		Find(&stats.Recent).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
