package api

import (
	"github.com/gin-gonic/gin"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/service"
)

func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.LoginRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Auth.Login(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Login failed")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PostLogout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.Registry().Active().Auth.Logout(); err != nil {
			HandleError(c, app.Logger(), err, "Logout failed")
			return
		}
		HandleSuccess(c, app.Logger(), gin.H{"success": true}, nil)
	}
}

func PostRegister(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.RegisterRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Auth.Register(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Registration failed")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PostRefresh(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := app.Registry().Active().Auth.RefreshToken(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, "Token refresh failed")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GetCurrentUser(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := app.Registry().Active().Auth.CurrentUser(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch current user")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GetSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), gin.H{
			"authenticated": app.Registry().Active().Auth.IsAuthenticated(),
		}, nil)
	}
}

func PostPasswordReset(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Auth.RequestPasswordReset(c.Request.Context(), body.Email)
		if err != nil {
			HandleError(c, app.Logger(), err, "Password reset request failed")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PostPasswordResetConfirm(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.PasswordResetConfirmRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Auth.ConfirmPasswordReset(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Password reset confirmation failed")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}
