package router

import (
	"net/http"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CheckAvailability(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	ListAllotments(c *ginext.Context)
	CreateStudent(c *ginext.Context)
	ListStudents(c *ginext.Context)
}

func InitRouter(mode, authSecret string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// слот-каталог и занятость; открыто для формы подачи заявки
		api.GET("/availability", h.CheckAvailability)

		authed := api.Group("", middleware.Auth(authSecret))
		{
			authed.POST("/bookings", h.SubmitBooking)
			authed.GET("/bookings/my", h.MyBookings)

			admin := authed.Group("", middleware.RequireAdmin())
			{
				admin.GET("/bookings", h.ListBookings)
				admin.GET("/bookings/:id", h.GetBooking)
				admin.POST("/bookings/:id/approve", h.ApproveBooking)
				admin.POST("/bookings/:id/reject", h.RejectBooking)
				admin.GET("/allotments", h.ListAllotments)
				admin.POST("/students", h.CreateStudent)
				admin.GET("/students", h.ListStudents)
			}
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
