package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetWedding(c *ginext.Context)
	GetInvitation(c *ginext.Context)
	SubmitRSVP(c *ginext.Context)
	CreateInvitation(c *ginext.Context)
	ListInvitations(c *ginext.Context)
	MergeInvitations(c *ginext.Context)
	GetSummary(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Invitation page content
		api.GET("/wedding", h.GetWedding)

		// Guest-facing RSVP
		api.GET("/invitations/:id", h.GetInvitation)
		api.POST("/invitations/:id/rsvp", h.SubmitRSVP)

		// Admin: seeding, fusing and progress
		admin := api.Group("/admin")
		{
			admin.POST("/invitations", h.CreateInvitation)
			admin.GET("/invitations", h.ListInvitations)
			admin.POST("/invitations/merge", h.MergeInvitations)
			admin.GET("/summary", h.GetSummary)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	return router
}
