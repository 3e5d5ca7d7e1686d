package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/controllers"
	"github.com/adiwirasta/franchise-supply-app/middlewares"
	"github.com/adiwirasta/franchise-supply-app/services"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

func SetupRouter(db *gorm.DB, tokens *utils.TokenManager, notifier *services.Notifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global per IP (50 request/detik)
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db, tokens)
	orderCtrl := controllers.NewOrderController(db,
		services.NewVendorResolver(db),
		services.NewDiscrepancyGate(db),
		notifier)
	discrepancyCtrl := controllers.NewDiscrepancyController(db, notifier)
	notificationCtrl := controllers.NewNotificationController(db)
	vendorCtrl := controllers.NewVendorController(db)
	franchiseCtrl := controllers.NewFranchiseController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, errors.New("route not found"))
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthRequired(tokens))

	auth.GET("/profile", userCtrl.GetProfile)

	// ORDER LIFECYCLE
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.GET("/orders/received-items", orderCtrl.GetReceivedItems)
	auth.PUT("/orders/:order_id/accept", orderCtrl.AcceptOrder)
	auth.PUT("/orders/:order_id/dispatch", orderCtrl.DispatchOrder)
	auth.PUT("/orders/:order_id/receive", orderCtrl.ReceiveOrder)

	// DISCREPANCIES
	auth.POST("/orders/:order_id/discrepancies", discrepancyCtrl.CreateDiscrepancy)
	auth.GET("/orders/:order_id/discrepancies", discrepancyCtrl.GetDiscrepanciesByOrder)
	auth.PATCH("/discrepancies/:discrepancy_id/resolve", discrepancyCtrl.ResolveDiscrepancy)

	// NOTIFICATIONS
	auth.GET("/notifications", notificationCtrl.GetMyNotifications)
	auth.PATCH("/notifications/:notif_id/read", notificationCtrl.MarkNotificationRead)

	// VENDORS & CATALOG
	auth.POST("/vendors", vendorCtrl.CreateVendor)
	auth.GET("/vendors", vendorCtrl.GetAllVendors)
	auth.GET("/vendors/:vendor_id", vendorCtrl.GetVendorByID)
	auth.POST("/vendors/:vendor_id/catalog", vendorCtrl.AddCatalogItem)
	auth.PATCH("/catalog-items/:item_id", vendorCtrl.UpdateCatalogItem)
	auth.DELETE("/catalog-items/:item_id", vendorCtrl.DeleteCatalogItem)

	// FRANCHISES
	auth.POST("/franchises", franchiseCtrl.CreateFranchise)
	auth.GET("/franchises", franchiseCtrl.GetAllFranchises)
	auth.GET("/franchises/:franchise_id", franchiseCtrl.GetFranchiseByID)
	auth.PATCH("/franchises/:franchise_id/vendors", franchiseCtrl.AssignVendors)

	return r
}
