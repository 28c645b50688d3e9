package leadsHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	leadsService "RBCDigital/internal/api/leads/service"
	"RBCDigital/internal/middleware"
)

type LeadsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	leadsService leadsService.ILeadsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ls leadsService.ILeadsService,
) *LeadsHandler {
	return &LeadsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		leadsService: ls,
	}
}

func (h *LeadsHandler) Start(srv fiber.Router) {
	srv.Post("/contacts", h.middleware.NewRateLimiter, h.CreateContact)
	srv.Get("/contacts", h.GetAllContacts)

	srv.Post("/bookings", h.middleware.NewRateLimiter, h.CreateBooking)
	srv.Get("/bookings", h.GetAllBookings)
}
