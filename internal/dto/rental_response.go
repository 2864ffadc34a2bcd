package dto

import "marketplace-api/internal/model"

// swagger:model dto.RentalListResponse
type RentalListResponse struct {
	Status string         `json:"status" example:"success"`
	Data   []model.Rental `json:"data"`
}

func NewRentalListResponse(rentals []model.Rental) RentalListResponse {
	if rentals == nil {
		rentals = []model.Rental{}
	}
	return RentalListResponse{Status: StatusSuccess, Data: rentals}
}
