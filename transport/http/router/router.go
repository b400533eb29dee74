package router

import (
	"goldentower/internal/handlers/auth"
	"goldentower/internal/handlers/booking"
	"goldentower/internal/handlers/catalog"
	"goldentower/internal/handlers/payout"
	"goldentower/internal/handlers/therapist"
	"goldentower/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Catalog   catalog.Handler
	Therapist therapist.Handler
	Booking   booking.Handler
	Payout    payout.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Therapist.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payout.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
