package bootstrap

import (
	"hotel-desk/internal/domain/reservation"
	"hotel-desk/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewAvailabilityPolicy,
	),
)

// NewAvailabilityPolicy fails startup on an unknown AVAILABILITY_POLICY.
func NewAvailabilityPolicy(cfg config.Config) (reservation.Policy, error) {
	return reservation.ParsePolicy(cfg.Booking.AvailabilityPolicy)
}
