//go:build wireinject
// +build wireinject

package di

import (
	"goldentower/config"
	"goldentower/infras/jwt"
	"goldentower/infras/kafka"
	"goldentower/infras/otel"
	"goldentower/infras/postgres"
	"goldentower/infras/redis"
	"goldentower/permissions"
	"goldentower/shared/cache"
	"goldentower/transport/http"
	"goldentower/transport/http/middleware"
	"goldentower/transport/http/router"

	"github.com/google/wire"

	authService "goldentower/internal/domains/auth/service"
	bookingRepository "goldentower/internal/domains/booking/repository"
	bookingService "goldentower/internal/domains/booking/service"
	catalogRepository "goldentower/internal/domains/catalog/repository"
	catalogService "goldentower/internal/domains/catalog/service"
	payoutRepository "goldentower/internal/domains/payout/repository"
	payoutService "goldentower/internal/domains/payout/service"
	therapistRepository "goldentower/internal/domains/therapist/repository"
	therapistService "goldentower/internal/domains/therapist/service"
	userRepository "goldentower/internal/domains/user/repository"
	userService "goldentower/internal/domains/user/service"

	authHandler "goldentower/internal/handlers/auth"
	bookingHandler "goldentower/internal/handlers/booking"
	catalogHandler "goldentower/internal/handlers/catalog"
	payoutHandler "goldentower/internal/handlers/payout"
	therapistHandler "goldentower/internal/handlers/therapist"
	userHandler "goldentower/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var therapistDomain = wire.NewSet(
	therapistRepository.New,
	therapistService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var payoutDomain = wire.NewSet(
	payoutRepository.New,
	payoutService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	catalogDomain,
	therapistDomain,
	bookingDomain,
	payoutDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	catalogHandler.New,
	therapistHandler.New,
	bookingHandler.New,
	payoutHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
