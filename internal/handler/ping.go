// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"marketplace-api/internal/cache"
	"marketplace-api/internal/database"
	"marketplace-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

const pingKey = "health:ping"

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與快取連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /api/ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("database unhealthy"))
		}
		if err := cch.Set(ctx, pingKey, "pong", 10*time.Second).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("cache unhealthy"))
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}

// RootHandler answers the bare liveness probe on "/".
// @Summary     Liveness
// @Tags        health
// @Produce     plain
// @Success     200 {string} string "Api is running..."
// @Router      / [get]
func RootHandler(c echo.Context) error {
	return c.String(http.StatusOK, "Api is running...")
}
