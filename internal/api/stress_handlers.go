package api

import (
	"github.com/gin-gonic/gin"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/service"
)

func ListStress(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c)
		out, err := app.Registry().Active().Stress.List(c.Request.Context(), page, pageSize)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch stress entries")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GetStress(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid id")
			return
		}
		out, err := app.Registry().Active().Stress.Get(c.Request.Context(), id)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch stress entry")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PostStress(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.StressLevelRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Stress.Create(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to save stress entry")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GetStressStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end := dateRange(c)
		out, err := app.Registry().Active().Stress.Statistics(c.Request.Context(), start, end)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to compute stress statistics")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}
