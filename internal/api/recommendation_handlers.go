package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/service"
)

func ListRecommendations(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var isQuick *bool
		if v := c.Query("is_quick"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				HandleError(c, app.Logger(), err, "Invalid is_quick")
				return
			}
			isQuick = &b
		}
		out, err := app.Registry().Active().Recommendations.Catalog(c.Request.Context(), c.Query("category"), isQuick)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch recommendations")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func ListRecommendationCategories(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := app.Registry().Active().Recommendations.Categories(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch recommendation categories")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func ListUserRecommendations(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c)
		out, err := app.Registry().Active().Recommendations.UserList(c.Request.Context(), c.Query("status"), page, pageSize)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch user recommendations")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GetUserRecommendation(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid id")
			return
		}
		out, err := app.Registry().Active().Recommendations.UserGet(c.Request.Context(), id)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch user recommendation")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PatchUserRecommendation(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid id")
			return
		}
		var body service.UpdateStatusRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Recommendations.UpdateStatus(c.Request.Context(), id, body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to update recommendation status")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GenerateRecommendations(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := app.Registry().Active().Recommendations.RequestNew(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to generate recommendations")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}
