package routes

import (
	"github.com/surajprakash3/Foodie-project/configs"
	"github.com/surajprakash3/Foodie-project/controllers"
	"github.com/surajprakash3/Foodie-project/middlewares"
	"github.com/surajprakash3/Foodie-project/repository"
	"github.com/surajprakash3/Foodie-project/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger *zap.Logger) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo, logger)
	foodSvc := services.NewFoodService(foodRepo, restRepo, logger)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, logger)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, cfg.UploadDir)
	foodCtrl := controllers.NewFoodController(foodSvc, cfg.UploadDir)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	user := middlewares.AuthMiddleware(cfg.JWTSecret)
	admin := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", user, authCtrl.Me)
	}

	// Restaurants
	rest := api.Group("/restaurants")
	{
		rest.GET("", restCtrl.List)
		rest.GET("/:id", restCtrl.Get)
		rest.POST("", admin, restCtrl.Create)
		rest.PUT("/:id", admin, restCtrl.Update)
		rest.DELETE("/:id", admin, restCtrl.Delete)
	}

	// Foods
	foods := api.Group("/foods")
	{
		foods.GET("", foodCtrl.List)
		foods.GET("/categories", foodCtrl.Categories)
		foods.POST("/create", admin, foodCtrl.CreateGlobal)
		foods.PUT("/item/:id", admin, foodCtrl.Update)
		foods.DELETE("/item/:id", admin, foodCtrl.Delete)
		foods.GET("/:restaurantId", foodCtrl.ListByRestaurant)
		foods.POST("/:restaurantId", admin, foodCtrl.CreateForRestaurant)
	}

	// Cart (all routes require authentication)
	cart := api.Group("/cart", user)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add", cartCtrl.Add)
		cart.DELETE("/remove/:foodId", cartCtrl.Remove)
		cart.DELETE("/clear", cartCtrl.Clear)
	}

	// Orders
	orders := api.Group("/orders")
	{
		orders.POST("", user, orderCtrl.Place)
		orders.GET("/user", user, orderCtrl.ListMine)
		orders.GET("/admin", admin, orderCtrl.ListAll)
		orders.PUT("/:id/status", admin, orderCtrl.UpdateStatus)
	}
}
