package api

import (
	"github.com/gin-gonic/gin"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/service"
)

func GetProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := app.Registry().Active().User.Profile(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch profile")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PatchProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch internal.UserProfileUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().User.UpdateProfile(c.Request.Context(), patch)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to update profile")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GetUserActivity(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c)
		out, err := app.Registry().Active().User.Activity(c.Request.Context(), page, pageSize)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch activity history")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PostChangePassword(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.ChangePasswordRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().User.ChangePassword(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to change password")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PatchNotifications(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body internal.NotificationSettings
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().User.UpdateNotifications(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to update notification settings")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PatchPrivacy(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body internal.PrivacySettings
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().User.UpdatePrivacy(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to update privacy settings")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PostAvatar(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		url, err := app.Registry().Active().User.UploadAvatar(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to upload avatar")
			return
		}
		HandleSuccess(c, app.Logger(), gin.H{"avatar_url": url}, nil)
	}
}

func DeleteAccount(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().User.DeleteAccount(c.Request.Context(), body.Password)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to delete account")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}
