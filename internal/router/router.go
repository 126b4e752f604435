package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	GetListing(c *ginext.Context)
	CloseListing(c *ginext.Context)
	StartReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	SelectDates(c *ginext.Context)
	ReviewReservation(c *ginext.Context)
	BackReservation(c *ginext.Context)
	ConfirmReservation(c *ginext.Context)
	AbandonReservation(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Listings
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.POST("/listings/:id/close", h.CloseListing)

		// Reservation flows
		api.POST("/reservations", h.StartReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/dates", h.SelectDates)
		api.POST("/reservations/:id/review", h.ReviewReservation)
		api.POST("/reservations/:id/back", h.BackReservation)
		api.POST("/reservations/:id/confirm", h.ConfirmReservation)
		api.POST("/reservations/:id/abandon", h.AbandonReservation)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
