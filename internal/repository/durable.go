package repository

import (
	"context"
	"time"

	"github.com/lakeside-retreat/service-booking/internal/database"
	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
	"go.uber.org/zap"
)

// OpenDurableStore probes the database once and picks the store variant. A failed
// probe never aborts startup: the service runs on the fallback store instead.
func OpenDurableStore(
	ctx context.Context,
	cfg database.PostgresConfig,
	opTimeout time.Duration,
	logger *zap.Logger,
) bookingDomain.DurableStore {
	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("database connection failed, using memory storage", zap.Error(err))
		return NewUnavailableStore(err)
	}
	return NewGormBookingStore(db, opTimeout, logger)
}
