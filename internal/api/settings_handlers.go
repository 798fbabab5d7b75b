package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// GetTheme and PutTheme expose the persisted light/dark preference.
func GetTheme(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), gin.H{"theme": app.Creds().Theme()}, nil)
	}
}

func PutTheme(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Theme string `json:"theme"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		if body.Theme != "light" && body.Theme != "dark" {
			HandleError(c, app.Logger(), errors.New("theme must be light or dark"), "Invalid theme")
			return
		}
		if err := app.Creds().SetTheme(body.Theme); err != nil {
			HandleError(c, app.Logger(), err, "Failed to persist theme")
			return
		}
		HandleSuccess(c, app.Logger(), gin.H{"theme": body.Theme}, nil)
	}
}

// GetDataSource and PutDataSource expose the runtime mock/live switch.
func GetDataSource(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), gin.H{"use_mock_data": app.Registry().UsingMockData()}, nil)
	}
}

func PutDataSource(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			UseMockData *bool `json:"use_mock_data"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.UseMockData == nil {
			if err == nil {
				err = errors.New("use_mock_data is required")
			}
			HandleError(c, app.Logger(), err, "Invalid JSON")
			return
		}
		app.Registry().UseMockData(*body.UseMockData)
		HandleSuccess(c, app.Logger(), gin.H{"use_mock_data": *body.UseMockData}, nil)
	}
}
