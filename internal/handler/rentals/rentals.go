// File: internal/handler/rentals/rentals.go
package rentals

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

// Service is implemented by *service.RentalService.
type Service interface {
	Create(ctx context.Context, in service.RentalInput, image []byte) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)
	Update(ctx context.Context, id int, patch service.RentalPatch, image []byte) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	CountAvailable(ctx context.Context) (int, error)
}

const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldPrice       = "price"
	fieldPriceType   = "price_type"
	fieldCategory    = "category"
	fieldAvailable   = "available"
)

// ListRentalsHandler 列出租借品，最新的在前
// @Summary     列出租借品
// @Tags        rentals
// @Produce     json
// @Success     200 {object} dto.RentalListResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /api/v1/rentals [get]
func ListRentalsHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		rentals, err := svc.List(c.Request().Context())
		if err != nil {
			return handler.RespondError(c, err, "Could not fetch rentals.")
		}
		return c.JSON(http.StatusOK, dto.NewRentalListResponse(rentals))
	}
}

// CreateRentalHandler 新增租借品，需附上圖片
// @Summary     新增租借品
// @Tags        rentals
// @Accept      multipart/form-data
// @Produce     json
// @Param       title       formData string  true  "名稱"
// @Param       description formData string  false "描述"
// @Param       price       formData number  false "價格"
// @Param       price_type  formData string  false "計價單位"
// @Param       category    formData string  false "分類，預設 general"
// @Param       available   formData string  false "true 或 on 代表可租"
// @Param       image       formData file    true  "圖片"
// @Success     201 {object} dto.CreatedResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     415 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /api/v1/rentals [post]
func CreateRentalHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		const fallback = "Something went wrong while creating the rental item."
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

		r, err := svc.Create(c.Request().Context(), service.RentalInput{
			Title:       form.Get(fieldTitle),
			Description: form.Get(fieldDescription),
			Price:       price.Value,
			PriceType:   form.Get(fieldPriceType),
			Category:    form.Get(fieldCategory),
			Available:   api.ParseAvailable(form.Get(fieldAvailable)),
		}, image)
		if err != nil {
			return handler.RespondError(c, err, fallback)
		}
		return c.JSON(http.StatusCreated, dto.CreatedResponse{
			Status:  dto.StatusSuccess,
			Message: "Rental item created successfully.",
			Image:   r.Image,
			ID:      r.ID,
		})
	}
}

// UpdateRentalHandler 部分更新；available 出現時一律套用，空值視為 false
// @Summary     更新租借品
// @Tags        rentals
// @Accept      multipart/form-data
// @Produce     json
// @Param       id          path     int    true  "租借品 ID"
// @Param       title       formData string false "名稱"
// @Param       description formData string false "描述，可設為空字串"
// @Param       price       formData number false "價格"
// @Param       price_type  formData string false "計價單位"
// @Param       category    formData string false "分類"
// @Param       available   formData string false "true 或 on 代表可租"
// @Param       image       formData file   false "新圖片"
// @Success     200 {object} dto.StatusResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     415 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /api/v1/rentals/{id} [put]
func UpdateRentalHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		const fallback = "Could not update rental."
		id, ok := handler.ParamID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, dto.Error("Invalid rental id."))
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

		patch := service.RentalPatch{
			Title:       api.FormString(form, fieldTitle),
			Description: api.FormString(form, fieldDescription),
			Price:       price,
			PriceType:   api.FormString(form, fieldPriceType),
			Category:    api.FormString(form, fieldCategory),
			Available:   api.FormAvailable(form, fieldAvailable),
		}
		if err := svc.Update(c.Request().Context(), id, patch, image); err != nil {
			return handler.RespondError(c, err, fallback)
		}
		return c.JSON(http.StatusOK, dto.StatusResponse{Status: dto.StatusSuccess, Message: "Rental updated successfully."})
	}
}

// DeleteRentalHandler 刪除租借品與其圖片
// @Summary     刪除租借品
// @Tags        rentals
// @Produce     json
// @Param       id  path     int true "租借品 ID"
// @Success     200 {object} dto.StatusResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /api/v1/rentals/{id} [delete]
func DeleteRentalHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParamID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, dto.Error("Invalid rental id."))
		}
		if err := svc.Delete(c.Request().Context(), id); err != nil {
			return handler.RespondError(c, err, "Could not delete rental.")
		}
		return c.JSON(http.StatusOK, dto.StatusResponse{Status: dto.StatusSuccess, Message: "Rental deleted successfully."})
	}
}

// CountRentalsHandler 回傳租借品總數
// @Summary     租借品總數
// @Tags        rentals
// @Produce     json
// @Success     200 {object} dto.TotalResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /api/v1/rentals/count [get]
func CountRentalsHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := svc.Count(c.Request().Context())
		if err != nil {
			return handler.RespondError(c, err, "Internal server error")
		}
		return c.JSON(http.StatusOK, dto.TotalResponse{Total: n})
	}
}

// CountAvailableRentalsHandler 回傳可租借的數量
// @Summary     可租借數量
// @Tags        rentals
// @Produce     json
// @Success     200 {object} dto.AvailableResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /api/v1/rentals/count/available [get]
func CountAvailableRentalsHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := svc.CountAvailable(c.Request().Context())
		if err != nil {
			return handler.RespondError(c, err, "Internal server error")
		}
		return c.JSON(http.StatusOK, dto.AvailableResponse{Available: n})
	}
}
