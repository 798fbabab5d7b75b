package api

import "github.com/gin-gonic/gin"

// NewRouter wires every endpoint onto a gin engine. All data flows through
// the registry's active service bundle, so a runtime data-source switch is
// picked up by the next request.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())

	auth := r.Group("/auth")
	{
		auth.POST("/token/", PostLogin(app))
		auth.POST("/token/refresh/", PostRefresh(app))
		auth.POST("/logout/", PostLogout(app))
		auth.GET("/session/", GetSession(app))
		auth.POST("/password/reset/", PostPasswordReset(app))
		auth.POST("/password/reset/confirm/", PostPasswordResetConfirm(app))
	}

	r.POST("/users/", PostRegister(app))

	me := r.Group("/users/me")
	{
		me.GET("/", GetProfile(app))
		me.PATCH("/", PatchProfile(app))
		me.DELETE("/", DeleteAccount(app))
		me.GET("/activity/", GetUserActivity(app))
		me.POST("/password/", PostChangePassword(app))
		me.PATCH("/notifications/", PatchNotifications(app))
		me.PATCH("/privacy/", PatchPrivacy(app))
		me.POST("/avatar/", PostAvatar(app))
	}
	r.GET("/users/current/", GetCurrentUser(app))

	sleep := r.Group("/sleep-data")
	{
		sleep.GET("/", ListSleep(app))
		sleep.POST("/", PostSleep(app))
		sleep.GET("/statistics/", GetSleepStats(app))
		sleep.GET("/:id/", GetSleep(app))
		sleep.PATCH("/:id/", PatchSleep(app))
		sleep.DELETE("/:id/", DeleteSleep(app))
	}

	stress := r.Group("/stress")
	{
		stress.GET("/", ListStress(app))
		stress.POST("/", PostStress(app))
		stress.GET("/statistics/", GetStressStats(app))
		stress.GET("/:id/", GetStress(app))
	}

	work := r.Group("/work-activity")
	{
		work.GET("/", ListWork(app))
		work.POST("/", PostWork(app))
		work.GET("/statistics/", GetWorkStats(app))
		work.GET("/:id/", GetWork(app))
		work.PATCH("/:id/", PatchWork(app))
		work.DELETE("/:id/", DeleteWork(app))
	}

	recs := r.Group("/recommendations")
	{
		recs.GET("/", ListRecommendations(app))
		recs.GET("/categories/", ListRecommendationCategories(app))
	}

	userRecs := r.Group("/user-recommendations")
	{
		userRecs.GET("/", ListUserRecommendations(app))
		userRecs.POST("/generate/", GenerateRecommendations(app))
		userRecs.GET("/:id/", GetUserRecommendation(app))
		userRecs.PATCH("/:id/", PatchUserRecommendation(app))
	}

	r.GET("/dashboard/summary/", GetDashboard(app))
	r.GET("/burnout-risks/statistics/", GetBurnoutStats(app))

	settings := r.Group("/settings")
	{
		settings.GET("/theme/", GetTheme(app))
		settings.PUT("/theme/", PutTheme(app))
		settings.GET("/data-source/", GetDataSource(app))
		settings.PUT("/data-source/", PutDataSource(app))
	}

	return r
}
