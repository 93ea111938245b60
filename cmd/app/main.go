package main

import (
	"context"
	"log"
	"os"

	"festiva/cmd/fx/ai_fx"
	"festiva/cmd/fx/controllers_fx"
	"festiva/cmd/fx/db_fx"
	"festiva/cmd/fx/event_fx"
	"festiva/cmd/fx/gift_fx"
	"festiva/cmd/fx/media_fx"
	"festiva/cmd/fx/repositories_fx"
	"festiva/cmd/fx/user_fx"
	"festiva/cmd/fx/vendor_fx"
	"festiva/internal/api/controllers"
	"festiva/internal/models/db_models"
	"festiva/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		repositories_fx.Module,
		ai_fx.Module,
		user_fx.Module,
		event_fx.Module,
		gift_fx.Module,
		vendor_fx.Module,
		media_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on port %s", os.Getenv("PORT"))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	userController *controllers.UserController,
	eventController *controllers.EventController,
	giftController *controllers.GiftController,
	vendorController *controllers.VendorController,
	mediaController *controllers.MediaController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, userController, eventController, giftController, vendorController, mediaController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	eventController *controllers.EventController,
	giftController *controllers.GiftController,
	vendorController *controllers.VendorController,
	mediaController *controllers.MediaController) {

	auth := middleware.JWTAuthMiddleware()

	users := r.Group("/users")
	users.POST("/signup", userController.Signup)
	users.POST("/login", userController.Login)
	users.POST("/refresh", userController.Refresh)
	users.POST("/logout", userController.Logout)

	events := r.Group("/events")
	events.GET("", auth, eventController.ListEvents)
	events.GET("/:id", auth, eventController.GetEvent)
	events.POST("", auth, middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleCustomer), eventController.CreateEvent)
	events.PUT("/:id", auth, middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleCustomer), eventController.UpdateEvent)
	events.DELETE("/:id", auth, middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleCustomer), eventController.DeleteEvent)
	events.POST("/:id/timeline", auth, eventController.GenerateTimeline)
	events.POST("/:id/vendors", auth, middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleCustomer), eventController.AddVendor)

	gifts := r.Group("/gifts")
	gifts.GET("", auth, giftController.ListGifts)
	gifts.GET("/:id", auth, giftController.GetGift)
	gifts.POST("", auth, middleware.RoleMiddleware(db_models.RoleAdmin), giftController.CreateGift)
	gifts.PUT("/:id", auth, middleware.RoleMiddleware(db_models.RoleAdmin), giftController.UpdateGift)
	gifts.GET("/orders/list", auth, giftController.ListOrders)
	gifts.POST("/order", auth, middleware.RoleMiddleware(db_models.RoleCustomer), giftController.CreateOrder)
	gifts.PUT("/order/:id", auth, middleware.RoleMiddleware(db_models.RoleAdmin), giftController.UpdateOrderStatus)

	vendors := r.Group("/vendors")
	vendors.GET("", auth, vendorController.ListVendors)
	vendors.GET("/recommendations", auth, vendorController.GetRecommendations)
	vendors.GET("/:id", auth, vendorController.GetVendor)
	vendors.POST("", auth, middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleVendor), vendorController.CreateVendor)
	vendors.PUT("/:id", auth, middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleVendor), vendorController.UpdateVendor)
	vendors.POST("/:id/reviews", auth, vendorController.AddReview)

	media := r.Group("/media")
	media.GET("/storybooks", auth, mediaController.ListStorybooks)
	media.POST("/storybooks", auth, mediaController.CreateStorybook)
	media.GET("/invitations", auth, mediaController.ListInvitations)
	media.POST("/invitations", auth, mediaController.CreateInvitation)
	media.GET("/posts", auth, mediaController.ListPosts)
	media.POST("/posts", auth, mediaController.CreatePost)
}
