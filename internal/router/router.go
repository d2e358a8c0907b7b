package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	DeleteOccurrence(c *ginext.Context)
	UpdateSlotCapacity(c *ginext.Context)
	PreviewOccurrences(c *ginext.Context)
	SignUp(c *ginext.Context)
	CancelByEmail(c *ginext.Context)
	GetReservation(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	ListEventReservations(c *ginext.Context)
	RemoveReservation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.DELETE("/events/:id/occurrences/:date", h.DeleteOccurrence)
		api.PATCH("/events/:id/slots/:slotID", h.UpdateSlotCapacity)

		// Occurrence preview
		api.POST("/occurrences/preview", h.PreviewOccurrences)

		// Signups
		api.POST("/events/:id/signup", h.SignUp)
		api.POST("/events/:id/cancel", h.CancelByEmail)

		// Organizer roster
		api.GET("/events/:id/reservations", h.ListEventReservations)
		api.DELETE("/events/:id/reservations/:resID", h.RemoveReservation)

		// Self-service via manage token
		api.GET("/reservations/:token", h.GetReservation)
		api.PATCH("/reservations/:token", h.UpdateReservation)
		api.DELETE("/reservations/:token", h.CancelReservation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
