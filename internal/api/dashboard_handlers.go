package api

import "github.com/gin-gonic/gin"

func GetDashboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := app.Registry().Active().Dashboard.Summary(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to build dashboard summary")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}

func GetBurnoutStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end := dateRange(c)
		out, err := app.Registry().Active().Dashboard.BurnoutStatistics(c.Request.Context(), start, end)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to compute burnout statistics")
			return
		}
		HandleSuccess(c, app.Logger(), out, nil)
	}
}
