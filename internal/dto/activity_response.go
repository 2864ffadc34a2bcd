package dto

import "marketplace-api/internal/model"

// swagger:model dto.ActivityLogsResponse
type ActivityLogsResponse struct {
	Logs []model.ActivityLog `json:"logs"`
}
