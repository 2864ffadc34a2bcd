// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"marketplace-api/internal/cache"
	"marketplace-api/internal/database"
	"marketplace-api/internal/handler"
	"marketplace-api/internal/handler/activity"
	"marketplace-api/internal/handler/auth"
	"marketplace-api/internal/handler/foods"
	"marketplace-api/internal/handler/rentals"
	"marketplace-api/internal/handler/uploads"
	"marketplace-api/internal/middleware"
)

// Deps 為註冊路由時需要的服務，全部在 main 建立後注入
type Deps struct {
	DB      database.DB
	Cache   cache.Cache
	Tokens  middleware.TokenVerifier
	Auth    auth.Service
	Foods   foods.Service
	Rentals rentals.Service
	Audit   activity.Service
	Files   uploads.Opener
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	requireAuth := middleware.RequireAuth(d.Tokens)

	e.GET("/", handler.RootHandler)
	e.GET("/uploads/*", uploads.ServeHandler(d.Files))

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))
	api.GET("/activity/logs", activity.LogsHandler(d.Audit))

	v1 := api.Group("/v1")

	apiAuth := v1.Group("/auth")
	apiAuth.POST("/signup", auth.SignupHandler(d.Auth))
	apiAuth.POST("/login", auth.LoginHandler(d.Auth))
	apiAuth.POST("/logout", auth.LogoutHandler)

	// 讀取公開，寫入需登入
	apiFoods := v1.Group("/foods")
	apiFoods.GET("", foods.ListFoodsHandler(d.Foods))
	apiFoods.GET("/count", foods.CountFoodsHandler(d.Foods))
	apiFoods.POST("", foods.CreateFoodHandler(d.Foods), requireAuth)
	apiFoods.PUT("/:id", foods.UpdateFoodHandler(d.Foods), requireAuth)
	apiFoods.DELETE("/:id", foods.DeleteFoodHandler(d.Foods), requireAuth)

	apiRentals := v1.Group("/rentals")
	apiRentals.GET("", rentals.ListRentalsHandler(d.Rentals))
	apiRentals.GET("/count", rentals.CountRentalsHandler(d.Rentals))
	apiRentals.GET("/count/available", rentals.CountAvailableRentalsHandler(d.Rentals))
	apiRentals.POST("", rentals.CreateRentalHandler(d.Rentals), requireAuth)
	apiRentals.PUT("/:id", rentals.UpdateRentalHandler(d.Rentals), requireAuth)
	apiRentals.DELETE("/:id", rentals.DeleteRentalHandler(d.Rentals), requireAuth)
}
