package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"farm-market.backend/internal/interfaces/http/handlers"
	"farm-market.backend/internal/interfaces/http/middleware"
	"farm-market.backend/internal/usecases"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler
	productHandler *handlers.ProductHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
	gate           *usecases.ApprovalGate
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Profile routes (protected)
		profiles := v1.Group("/profiles")
		profiles.Use(d.authMiddleware)
		{
			profiles.POST("/farmer", d.profileHandler.SubmitFarmerProfile)
			profiles.POST("/company", d.profileHandler.SubmitCompanyProfile)
			profiles.GET("/me", d.profileHandler.Me)
		}

		// Product routes (public read, gated write)
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.ListApproved)
			products.GET("/mine", d.authMiddleware,
				middleware.RequireCapability(d.gate, usecases.CapabilitySellProducts),
				d.productHandler.ListMine)
			products.GET("/:id", d.productHandler.Get)
			products.POST("", d.authMiddleware,
				middleware.RequireCapability(d.gate, usecases.CapabilitySellProducts),
				d.productHandler.Create)
			products.PUT("/:id", d.authMiddleware,
				middleware.RequireCapability(d.gate, usecases.CapabilitySellProducts),
				d.productHandler.Update)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/pending/farmers", d.adminHandler.PendingFarmers)
			admin.GET("/pending/companies", d.adminHandler.PendingCompanies)
			admin.GET("/pending/products", d.adminHandler.PendingProducts)
			admin.GET("/users", d.adminHandler.Users)
			admin.GET("/decisions", d.adminHandler.DecisionHistory)
			admin.POST("/decisions", middleware.IdempotencyMiddleware(), d.adminHandler.Decide)
		}
	}
}
