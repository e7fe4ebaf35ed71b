package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tiffinbox/cmd/fx/account_fx"
	"tiffinbox/cmd/fx/address_fx"
	"tiffinbox/cmd/fx/cart_fx"
	"tiffinbox/cmd/fx/dashboard_fx"
	"tiffinbox/cmd/fx/db_fx"
	"tiffinbox/cmd/fx/meal_fx"
	"tiffinbox/cmd/fx/notification_fx"
	"tiffinbox/cmd/fx/order_fx"
	"tiffinbox/cmd/fx/payment_fx"
	"tiffinbox/cmd/fx/subscription_fx"
	"tiffinbox/internal/api/controllers"
	"tiffinbox/internal/config"
	dbm "tiffinbox/internal/models/db_models"
	"tiffinbox/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		account_fx.Module,
		meal_fx.Module,
		cart_fx.Module,
		address_fx.Module,
		notification_fx.Module,
		payment_fx.Module,
		order_fx.Module,
		subscription_fx.Module,
		dashboard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	if db == nil {
		return
	}
	err := db.AutoMigrate(
		&dbm.Counter{},
		&dbm.User{},
		&dbm.Meal{},
		&dbm.CurryOption{},
		&dbm.CartItem{},
		&dbm.Order{},
		&dbm.OrderItem{},
		&dbm.Subscription{},
		&dbm.Address{},
		&dbm.Transaction{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	mealController *controllers.MealController,
	cartController *controllers.CartController,
	addressController *controllers.AddressController,
	orderController *controllers.OrderController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.PrometheusMiddleware())

	RegisterRoutes(r,
		accountController, mealController, cartController, addressController,
		orderController, subscriptionController, paymentController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	mealController *controllers.MealController,
	cartController *controllers.CartController,
	addressController *controllers.AddressController,
	orderController *controllers.OrderController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	dashboardController *controllers.DashboardController) {

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.POST("/refresh", accountController.Refresh)
	auth.POST("/logout", middleware.JWTAuthMiddleware(), accountController.Logout)

	meals := api.Group("/meals")
	meals.GET("", mealController.List)
	meals.GET("/:id", mealController.Get)
	mealsAdmin := meals.Group("", middleware.JWTAuthMiddleware(), middleware.RequireRoles(dbm.RoleAdmin, dbm.RoleManager))
	mealsAdmin.POST("", mealController.Create)
	mealsAdmin.PUT("/:id", mealController.Update)
	mealsAdmin.DELETE("/:id", mealController.Delete)

	cart := api.Group("/cart", middleware.JWTAuthMiddleware())
	cart.GET("", cartController.Get)
	cart.POST("", cartController.AddItem)
	cart.DELETE("", cartController.Clear)
	cart.PATCH("/:id", cartController.UpdateItem)
	cart.DELETE("/:id", cartController.RemoveItem)

	addresses := api.Group("/addresses", middleware.JWTAuthMiddleware())
	addresses.GET("", addressController.List)
	addresses.POST("", addressController.Create)
	addresses.PATCH("/:id", addressController.Update)
	addresses.DELETE("/:id", addressController.Delete)
	addresses.POST("/:id/default", addressController.SetDefault)

	orders := api.Group("/orders", middleware.JWTAuthMiddleware())
	orders.POST("", orderController.Checkout)
	orders.GET("", orderController.ListMine)
	orders.GET("/:id", orderController.Get)
	orders.PATCH("/:id", orderController.UpdateStatus)

	subscriptions := api.Group("/subscriptions", middleware.JWTAuthMiddleware())
	subscriptions.POST("", subscriptionController.Create)
	subscriptions.GET("", subscriptionController.ListMine)
	subscriptions.GET("/:id", subscriptionController.Get)
	subscriptions.POST("/:id/modify", subscriptionController.Modify)
	subscriptions.POST("/:id/cancel", subscriptionController.Cancel)

	payments := api.Group("/payments", middleware.JWTAuthMiddleware())
	payments.POST("/create-order", paymentController.CreateOrder)
	payments.POST("/verify", paymentController.Verify)

	// Gateway callbacks authenticate with an HMAC signature, not a session.
	api.POST("/webhook/razorpay", paymentController.Webhook)

	admin := api.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RequireRoles(dbm.RoleAdmin, dbm.RoleManager))
	admin.GET("/orders", orderController.ListAll)
	admin.GET("/subscriptions", subscriptionController.ListAll)
	admin.GET("/users", accountController.ListUsers)

	api.GET("/analytics",
		middleware.JWTAuthMiddleware(), middleware.RequireRoles(dbm.RoleAdmin),
		dashboardController.Analytics)
}
