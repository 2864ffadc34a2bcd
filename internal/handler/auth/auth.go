// File: internal/handler/auth/auth.go
package auth

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

// Service is implemented by *service.AuthService.
type Service interface {
	Register(ctx context.Context, email, username, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*service.LoginResult, error)
}

// SignupHandler 註冊新使用者
// @Summary     註冊使用者
// @Description email、username、password 皆為必填；email 或 username 重複回傳 409
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.SignupRequest true "註冊資料"
// @Success     201  {object} dto.SignupResponse
// @Failure     400  {object} dto.MessageResponse
// @Failure     409  {object} dto.MessageResponse
// @Failure     500  {object} dto.MessageResponse
// @Router      /api/v1/auth/signup [post]
func SignupHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: api.ValidationMessage(err)})
		}

		user, err := svc.Register(c.Request().Context(), req.Email, req.Username, req.Password)
		if err != nil {
			return handler.RespondMessage(c, err, "Something went wrong")
		}
		return c.JSON(http.StatusCreated, dto.SignupResponse{
			Message: "User registered successfully",
			User:    dto.NewUserResponse(user),
		})
	}
}

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 成功時 token 同時放在 Authorization header 與回應內容
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} dto.LoginResponse
// @Header      200  {string} Authorization "Bearer <token>"
// @Failure     400  {object} dto.MessageResponse
// @Failure     401  {object} dto.MessageResponse
// @Failure     500  {object} dto.MessageResponse
// @Router      /api/v1/auth/login [post]
func LoginHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: api.ValidationMessage(err)})
		}

		res, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.RespondMessage(c, err, "Something went wrong. Please try again later.")
		}

		c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+res.Token)
		return c.JSON(http.StatusOK, dto.LoginResponse{
			Message:   "Login successful.",
			User:      dto.NewUserResponse(res.User),
			Token:     res.Token,
			ExpiresIn: res.ExpiresIn,
		})
	}
}

// LogoutHandler tokens are stateless; the client discards its copy.
// @Summary     登出
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Router      /api/v1/auth/logout [post]
func LogoutHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully."})
}
