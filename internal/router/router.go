// Package router wires the HTTP surface: session middleware, the public
// endpoints, the authenticated API, and the admin subtree.
package router

import (
	"github.com/amalanberkah/internal/config"
	"github.com/amalanberkah/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New assembles the gin engine around the handler set.
func New(api *handler.API, cfg config.AppConfig) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("amalan_session", store))

	r.GET("/healthz", api.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/auth/register", api.Register)
		apiGroup.POST("/auth/login", api.Login)
		apiGroup.GET("/settings", api.GetSettings)
		apiGroup.GET("/habits", api.Habits)
	}

	auth := apiGroup.Group("")
	auth.Use(handler.AuthRequired())
	{
		auth.POST("/auth/logout", api.Logout)
		auth.GET("/auth/me", api.Me)

		auth.GET("/progress", api.GetProgress)
		auth.PUT("/progress", api.PutProgress)
		auth.POST("/progress/toggle-habit/:id", api.ToggleHabit)
		auth.POST("/progress/toggle-muhasabah/:key", api.ToggleMuhasabah)
		auth.GET("/progress/stats", api.Stats)

		auth.GET("/events", api.Events)

		auth.POST("/partnerships/invite", api.InvitePartner)
		auth.GET("/partnerships/pending", api.PendingInvitations)
		auth.POST("/partnerships/:id/accept", api.AcceptInvitation)
		auth.POST("/partnerships/:id/reject", api.RejectInvitation)
		auth.GET("/partnerships/current", api.CurrentPartnership)
		auth.GET("/partnerships/partner/:id/progress", api.PartnerProgress)

		auth.POST("/messages", api.SendMessage)
		auth.GET("/messages/thread/:id", api.MessageThread)
		auth.POST("/messages/:id/read", api.MarkMessageRead)
	}

	admin := auth.Group("/admin")
	admin.Use(api.AdminRequired())
	{
		admin.GET("/stats", api.AdminStats)
		admin.GET("/users", api.AdminUsers)
		admin.GET("/users/export", api.AdminExportUsers)
		admin.PUT("/settings", api.AdminUpdateSettings)
	}

	return r
}
