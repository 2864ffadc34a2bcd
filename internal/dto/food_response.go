package dto

import "marketplace-api/internal/model"

// FoodResponse exposes food rows with the names the frontend expects.
// swagger:model dto.FoodResponse
type FoodResponse struct {
	ID          int     `json:"id" example:"1"`
	Name        string  `json:"name" example:"Chicken Burger"`
	Description string  `json:"description" example:"Grilled chicken, lettuce, mayo"`
	Price       float64 `json:"price" example:"8.5"`
	Category    string  `json:"category" example:"general"`
	Image       string  `json:"image" example:"chicken-burger-1721600000000.jpg"`
	PrepTime    string  `json:"prepTime" example:"15 min"`
}

// swagger:model dto.FoodListResponse
type FoodListResponse struct {
	Status string         `json:"status" example:"success"`
	Data   []FoodResponse `json:"data"`
}

func NewFoodResponse(f model.Food) FoodResponse {
	category := f.Category
	if category == "" {
		category = model.DefaultCategory
	}
	return FoodResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    category,
		Image:       f.Image,
		PrepTime:    f.PrepTime,
	}
}

func NewFoodListResponse(foods []model.Food) FoodListResponse {
	data := make([]FoodResponse, 0, len(foods))
	for _, f := range foods {
		data = append(data, NewFoodResponse(f))
	}
	return FoodListResponse{Status: StatusSuccess, Data: data}
}
