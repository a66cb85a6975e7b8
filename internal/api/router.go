package api

import (
	"github.com/gin-gonic/gin"
	"github.com/speedscore/roundtracker/internal/auth"
)

// NewRouter wires the full route table onto a gin engine.
func NewRouter(app *App, provider auth.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(auth.Middleware(provider))

	r.GET("/rounds", GetRounds(app))
	r.POST("/rounds", PostRound(app))
	r.PUT("/rounds/:num", PutRound(app))
	r.DELETE("/rounds/:num", DeleteRound(app))

	d := r.Group("/rounds/dialog")
	d.GET("", GetDialog(app))
	d.POST("/open", PostDialogOpen(app))
	d.POST("/field", PostDialogField(app))
	d.POST("/focus", PostDialogFocus(app))
	d.POST("/key", PostDialogKey(app))
	d.POST("/submit", PostDialogSubmit(app))
	d.POST("/cancel", PostDialogCancel(app))

	return r
}
