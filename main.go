package main

import (
	config "storelink/config/database"
	admin_handler "storelink/internal/adminHandler"
	auth_handler "storelink/internal/authHandler"
	catalog_handler "storelink/internal/catalogHandler"
	feedback_handler "storelink/internal/feedbackHandler"
	cust_middleware "storelink/internal/middleware"
	notification_handler "storelink/internal/notificationHandler"
	stats_handler "storelink/internal/statsHandler"
	store_handler "storelink/internal/storeHandler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// connect to db and apply schema
	config.InitDB()
	defer config.CloseDB()
	config.MigrateData()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// uploaded images are served as-is; URLs carry cache-busting params
	e.Static("/uploads", config.Cfg.UploadDir)

	// public routes
	e.POST("/auth/register", auth_handler.RegisterUser)
	e.POST("/auth/login", auth_handler.LoginUser)
	e.GET("/storefront/:slug", catalog_handler.GetStorefront)
	e.POST("/storefront/:slug/feedback", feedback_handler.SubmitFeedback)

	// remote functions (public ones)
	e.POST("/functions/admin-role", admin_handler.HandleAdminRole)
	e.POST("/functions/handle-password-reset", auth_handler.HandlePasswordReset)
	e.POST("/functions/increment-page-view", stats_handler.IncrementPageView)
	e.POST("/functions/store-stats", stats_handler.GetStoreStats, cust_middleware.JWTMiddleware)

	// admin functions behind the client-held session record
	adminGroup := e.Group("/functions")
	adminGroup.Use(cust_middleware.AdminSessionGuard)
	adminGroup.POST("/manage-user", admin_handler.HandleManageUser)

	// protected routes for store owners using JWT middleware
	storeGroup := e.Group("/store")
	storeGroup.Use(cust_middleware.JWTMiddleware)

	// store configuration
	storeGroup.GET("/settings", store_handler.GetSettings)
	storeGroup.PUT("/settings/name", store_handler.UpdateName)
	storeGroup.PUT("/settings/slug", store_handler.UpdateSlug)
	storeGroup.PUT("/settings/theme", store_handler.UpdateTheme)
	storeGroup.PUT("/settings/fonts", store_handler.UpdateFonts)
	storeGroup.PUT("/settings/contact", store_handler.UpdateContactInfo)
	storeGroup.PUT("/settings/social", store_handler.UpdateSocialLinks)
	storeGroup.POST("/settings/banner", store_handler.UploadBanner)
	storeGroup.POST("/settings/logo", store_handler.UploadLogo)

	// catalog
	storeGroup.GET("/categories", catalog_handler.ListCategories)
	storeGroup.POST("/categories", catalog_handler.CreateCategory)
	storeGroup.PUT("/categories/:id", catalog_handler.UpdateCategory)
	storeGroup.POST("/categories/:id/image", catalog_handler.UploadCategoryImage)
	storeGroup.DELETE("/categories/:id", catalog_handler.DeleteCategory)
	storeGroup.GET("/products", catalog_handler.ListProducts)
	storeGroup.POST("/products", catalog_handler.CreateProduct)
	storeGroup.GET("/products/export", catalog_handler.ExportProducts)
	storeGroup.PUT("/products/:id", catalog_handler.UpdateProduct)
	storeGroup.POST("/products/:id/image", catalog_handler.UploadProductImage)
	storeGroup.DELETE("/products/:id", catalog_handler.DeleteProduct)

	// feedback inbox
	storeGroup.GET("/feedback", feedback_handler.ListFeedback)
	storeGroup.PUT("/feedback/:id/status", feedback_handler.UpdateFeedbackStatus)

	// notifications
	storeGroup.GET("/notifications", notification_handler.ListNotifications)
	storeGroup.PUT("/notifications/:id/read", notification_handler.MarkNotificationRead)
	storeGroup.GET("/notifications/ws", notification_handler.StreamNotifications)

	// dashboard stats (polled by the client on a fixed interval)
	storeGroup.GET("/stats", stats_handler.GetStoreStats)

	e.Logger.Fatal(e.Start(config.Cfg.HTTPAddr))
}
