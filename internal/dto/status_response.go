package dto

// swagger:model dto.StatusResponse
type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Food updated successfully."`
}

// swagger:model dto.CreatedResponse
type CreatedResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Food item created successfully."`
	Image   string `json:"image" example:"chicken-burger-1721600000000.jpg"`
	ID      int    `json:"id" example:"1"`
}

// swagger:model dto.TotalResponse
type TotalResponse struct {
	Total int `json:"total" example:"12"`
}

// swagger:model dto.AvailableResponse
type AvailableResponse struct {
	Available int `json:"available" example:"7"`
}

// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Api is running..."`
}
