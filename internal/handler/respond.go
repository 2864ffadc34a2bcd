// Package handler holds the helpers shared by the HTTP handlers and the
// health endpoints.
package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"marketplace-api/internal/dto"
	"marketplace-api/internal/logger"
	"marketplace-api/internal/service"

	"github.com/labstack/echo/v4"
)

// ImageField is the multipart field carrying the uploaded image.
const ImageField = "image"

// StatusOf maps a classified service error to its HTTP status. Unclassified
// errors are internal.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnsupportedInput):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// RespondError 將錯誤轉為 {status, message}；內部錯誤只記錄不外洩，回傳 fallback 訊息
func RespondError(c echo.Context, err error, fallback string) error {
	return respond(c, err, fallback, func(msg string) any { return dto.Error(msg) })
}

// RespondMessage is RespondError for the auth endpoints, whose error bodies
// carry only {message}.
func RespondMessage(c echo.Context, err error, fallback string) error {
	return respond(c, err, fallback, func(msg string) any { return dto.MessageResponse{Message: msg} })
}

func respond(c echo.Context, err error, fallback string, body func(string) any) error {
	status := StatusOf(err)
	msg := service.Message(err)
	if status == http.StatusInternalServerError || msg == "" {
		logger.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, body(fallback))
	}
	return c.JSON(status, body(msg))
}

// ParamID parses the :id path parameter.
func ParamID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ReadImage returns the uploaded image bytes, or nil when the request carries
// no image part.
func ReadImage(c echo.Context) ([]byte, error) {
	fh, err := c.FormFile(ImageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
