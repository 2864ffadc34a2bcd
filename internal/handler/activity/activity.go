// File: internal/handler/activity/activity.go
package activity

import (
	"context"
	"net/http"

	"marketplace-api/internal/dto"
	"marketplace-api/internal/handler"
	"marketplace-api/internal/model"

	"github.com/labstack/echo/v4"
)

// RecentLimit is how many entries the dashboard feed shows.
const RecentLimit = 4

// Service is implemented by *service.Auditor.
type Service interface {
	Recent(ctx context.Context, limit int) ([]model.ActivityLog, error)
}

// LogsHandler 回傳最新的稽核紀錄
// @Summary     最近操作紀錄
// @Tags        activity
// @Produce     json
// @Success     200 {object} dto.ActivityLogsResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /api/activity/logs [get]
func LogsHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		logs, err := svc.Recent(c.Request().Context(), RecentLimit)
		if err != nil {
			return handler.RespondError(c, err, "Failed to fetch logs")
		}
		if logs == nil {
			logs = []model.ActivityLog{}
		}
		return c.JSON(http.StatusOK, dto.ActivityLogsResponse{Logs: logs})
	}
}
