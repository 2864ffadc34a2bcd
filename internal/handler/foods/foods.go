// File: internal/handler/foods/foods.go
package foods

import (
	"context"
	"net/http"

	"marketplace-api/internal/api"
	"marketplace-api/internal/dto"
	"marketplace-api/internal/handler"
	"marketplace-api/internal/model"
	"marketplace-api/internal/service"

	"github.com/labstack/echo/v4"
)

// Service is implemented by *service.FoodService.
type Service interface {
	Create(ctx context.Context, in service.FoodInput, image []byte) (*model.Food, error)
	List(ctx context.Context) ([]model.Food, error)
	Update(ctx context.Context, id int, patch service.FoodPatch, image []byte) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// form field names
const (
	fieldName        = "food_name"
	fieldDescription = "description"
	fieldPrice       = "price"
	fieldPrepTime    = "prep_time"
	fieldCategory    = "category"
)

// ListFoodsHandler 列出全部餐點
// @Summary     列出餐點
// @Tags        foods
// @Produce     json
// @Success     200 {object} dto.FoodListResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /api/v1/foods [get]
func ListFoodsHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		foods, err := svc.List(c.Request().Context())
		if err != nil {
			return handler.RespondError(c, err, "Could not fetch foods.")
		}
		return c.JSON(http.StatusOK, dto.NewFoodListResponse(foods))
	}
}

// CreateFoodHandler 新增餐點，需附上圖片
// @Summary     新增餐點
// @Tags        foods
// @Accept      multipart/form-data
// @Produce     json
// @Param       food_name   formData string true  "名稱"
// @Param       description formData string false "描述"
// @Param       price       formData number false "價格"
// @Param       prep_time   formData string false "準備時間"
// @Param       category    formData string false "分類，預設 general"
// @Param       image       formData file   true  "圖片"
// @Success     201 {object} dto.CreatedResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     415 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /api/v1/foods [post]
func CreateFoodHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		const fallback = "Something went wrong while creating the food item."
		form, err := c.FormParams()
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("Invalid form data."))
		}
		price, err := api.FormFloat(form, fieldPrice)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("Price must be a number."))
		}
		image, err := handler.ReadImage(c)
		if err != nil {
			return handler.RespondError(c, err, fallback)
		}

		f, err := svc.Create(c.Request().Context(), service.FoodInput{
			Name:        form.Get(fieldName),
			Description: form.Get(fieldDescription),
			Price:       price.Value,
			PrepTime:    form.Get(fieldPrepTime),
			Category:    form.Get(fieldCategory),
		}, image)
		if err != nil {
			return handler.RespondError(c, err, fallback)
		}
		return c.JSON(http.StatusCreated, dto.CreatedResponse{
			Status:  dto.StatusSuccess,
			Message: "Food item created successfully.",
			Image:   f.Image,
			ID:      f.ID,
		})
	}
}

// UpdateFoodHandler 部分更新；只有出現在表單中的欄位會被修改
// @Summary     更新餐點
// @Tags        foods
// @Accept      multipart/form-data
// @Produce     json
// @Param       id          path     int    true  "餐點 ID"
// @Param       food_name   formData string false "名稱"
// @Param       description formData string false "描述，可設為空字串"
// @Param       price       formData number false "價格"
// @Param       prep_time   formData string false "準備時間"
// @Param       category    formData string false "分類"
// @Param       image       formData file   false "新圖片"
// @Success     200 {object} dto.StatusResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     415 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /api/v1/foods/{id} [put]
func UpdateFoodHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		const fallback = "Could not update food."
		id, ok := handler.ParamID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, dto.Error("Invalid food id."))
		}
		form, err := c.FormParams()
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("Invalid form data."))
		}
		price, err := api.FormFloat(form, fieldPrice)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("Price must be a number."))
		}
		image, err := handler.ReadImage(c)
		if err != nil {
			return handler.RespondError(c, err, fallback)
		}

		patch := service.FoodPatch{
			Name:        api.FormString(form, fieldName),
			Description: api.FormString(form, fieldDescription),
			Price:       price,
			PrepTime:    api.FormString(form, fieldPrepTime),
			Category:    api.FormString(form, fieldCategory),
		}
		if err := svc.Update(c.Request().Context(), id, patch, image); err != nil {
			return handler.RespondError(c, err, fallback)
		}
		return c.JSON(http.StatusOK, dto.StatusResponse{Status: dto.StatusSuccess, Message: "Food updated successfully."})
	}
}

// DeleteFoodHandler 刪除餐點與其圖片
// @Summary     刪除餐點
// @Tags        foods
// @Produce     json
// @Param       id  path     int true "餐點 ID"
// @Success     200 {object} dto.StatusResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /api/v1/foods/{id} [delete]
func DeleteFoodHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParamID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, dto.Error("Invalid food id."))
		}
		if err := svc.Delete(c.Request().Context(), id); err != nil {
			return handler.RespondError(c, err, "Could not delete food.")
		}
		return c.JSON(http.StatusOK, dto.StatusResponse{Status: dto.StatusSuccess, Message: "Food deleted successfully."})
	}
}

// CountFoodsHandler 回傳餐點總數
// @Summary     餐點總數
// @Tags        foods
// @Produce     json
// @Success     200 {object} dto.TotalResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /api/v1/foods/count [get]
func CountFoodsHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := svc.Count(c.Request().Context())
		if err != nil {
			return handler.RespondError(c, err, "Internal server error")
		}
		return c.JSON(http.StatusOK, dto.TotalResponse{Total: n})
	}
}
