package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-management/config"
	"cafe-management/controllers"
	"cafe-management/events"
	"cafe-management/middlewares"
	"cafe-management/session"
	"cafe-management/utils"
)

// SetupRouter wires every route of the café app onto one gin engine.
func SetupRouter(db *gorm.DB, cfg config.Config, store session.Store, hub *events.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SessionMiddleware(store, cfg.SessionSecret))

	gate := middlewares.CredentialGate{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}

	menuCtrl := controllers.NewMenuController(db, cfg.UploadDir, hub)
	categoryCtrl := controllers.NewCategoryController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db, hub, cfg.OrdersPerPage)
	adminCtrl := controllers.NewAdminController(db, gate)
	reportCtrl := controllers.NewReportController(db, hub)
	receiptCtrl := controllers.NewReceiptController(db, cfg.ReceiptFont)

	// Uploaded menu images
	r.Static("/uploads", cfg.UploadDir)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", func(c *gin.Context) {
		sess := middlewares.GetSession(c)
		utils.RespondJSON(c, http.StatusOK, "cafe ordering service", gin.H{
			"cart_count": len(sess.Cart),
		})
	})
	r.GET("/init_db", menuCtrl.SeedMenus)

	user := r.Group("/user")
	{
		user.GET("/menu", menuCtrl.GetMenus)
		user.POST("/add_to_cart", cartCtrl.AddToCart)
		user.GET("/view_cart", cartCtrl.ViewCart)
		user.POST("/update_cart", cartCtrl.UpdateCart)
		user.POST("/place_order", orderCtrl.PlaceOrder)
		user.POST("/clear_cart", cartCtrl.ClearCart)
	}

	// Login is outside the gate, throttled per IP.
	loginLimiter := middlewares.NewLoginRateLimiter()
	r.GET("/admin/login", adminCtrl.LoginPage)
	r.POST("/admin/login", loginLimiter.Limit(), adminCtrl.Login)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AdminRequired())
	{
		admin.GET("", adminCtrl.Dashboard)
		admin.GET("/logout", adminCtrl.Logout)
		admin.POST("/sales/filter", orderCtrl.FilterSales)

		// menu management
		admin.GET("/menu", menuCtrl.GetMenus)
		admin.GET("/menu/add", menuCtrl.AddMenuPage)
		admin.POST("/menu/add", menuCtrl.CreateMenu)
		admin.GET("/menu/edit/:menu_id", menuCtrl.GetMenuForEdit)
		admin.POST("/menu/edit/:menu_id", menuCtrl.UpdateMenu)
		admin.GET("/menu/delete/:menu_id", menuCtrl.DeleteMenu)
		admin.POST("/menu/toggle_soldout/:menu_id", menuCtrl.ToggleSoldOut)
		admin.POST("/menu/update_order", menuCtrl.UpdateMenuOrder)

		// category management
		admin.GET("/categories", categoryCtrl.GetCategories)
		admin.POST("/categories", categoryCtrl.AddCategory)
		admin.POST("/categories/delete/:category", categoryCtrl.DeleteCategory)

		// order management (dashboard AJAX)
		admin.GET("/get_recent_orders", orderCtrl.GetRecentOrders)
		admin.POST("/update_order_status/:order_id", orderCtrl.UpdateOrderStatus)
		admin.POST("/delete_order/:order_id", orderCtrl.DeleteOrder)

		// export / import
		admin.GET("/export_all_orders", reportCtrl.ExportAllOrders)
		admin.POST("/export_period_orders", reportCtrl.ExportPeriodOrders)
		admin.GET("/import_orders", reportCtrl.ImportPage)
		admin.POST("/import_orders", reportCtrl.ImportOrders)

		// receipts
		admin.GET("/print_receipt/:order_id", receiptCtrl.PrintReceipt)
		admin.GET("/print_receipt_small/:order_id", receiptCtrl.PrintReceiptSmall)

		// live order feed for the dashboard
		admin.GET("/ws", events.ServeWS(hub))
	}

	return r
}
