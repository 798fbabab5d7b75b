package api

import (
	"github.com/gin-gonic/gin"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/service"
)

func ListSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c)
		out, err := app.Registry().Active().Sleep.List(c.Request.Context(), page, pageSize)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch sleep records")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GetSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid id")
			return
		}
		out, err := app.Registry().Active().Sleep.Get(c.Request.Context(), id)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch sleep record")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PostSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.SleepRecordRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Sleep.Create(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to save sleep record")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PatchSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid id")
			return
		}
		var patch internal.SleepRecordUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Sleep.Update(c.Request.Context(), id, patch)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to update sleep record")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func DeleteSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid id")
			return
		}
		if err := app.Registry().Active().Sleep.Delete(c.Request.Context(), id); err != nil {
			HandleError(c, app.Logger(), err, "Failed to delete sleep record")
			return
		}
		HandleSuccess(c, app.Logger(), gin.H{"deleted": id}, nil)
	}
}

func GetSleepStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end := dateRange(c)
		out, err := app.Registry().Active().Sleep.Statistics(c.Request.Context(), start, end)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to compute sleep statistics")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}
