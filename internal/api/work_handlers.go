package api

import (
	"github.com/gin-gonic/gin"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/service"
)

func ListWork(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c)
		out, err := app.Registry().Active().Work.List(c.Request.Context(), page, pageSize)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch work activities")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GetWork(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid id")
			return
		}
		out, err := app.Registry().Active().Work.Get(c.Request.Context(), id)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch work activity")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PostWork(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.WorkActivityRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Work.Create(c.Request.Context(), body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to save work activity")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func PatchWork(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid id")
			return
		}
		var patch internal.WorkActivityUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		out, err := app.Registry().Active().Work.Update(c.Request.Context(), id, patch)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to update work activity")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func DeleteWork(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid id")
			return
		}
		if err := app.Registry().Active().Work.Delete(c.Request.Context(), id); err != nil {
			HandleError(c, app.Logger(), err, "Failed to delete work activity")
			return
		}
		HandleSuccess(c, app.Logger(), gin.H{"deleted": id}, nil)
	}
}

func GetWorkStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end := dateRange(c)
		out, err := app.Registry().Active().Work.Statistics(c.Request.Context(), start, end)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to compute work statistics")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}
