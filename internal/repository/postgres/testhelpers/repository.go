package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/venue-reservation-service/internal/domain/repository"
	"github.com/venue-reservation-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

func NewVenueRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.VenueRepository {
	return postgres.NewVenueRepository(NewDBForTest(db, logger))
}

func NewVenueExpanderForTest(db *sqlx.DB, logger *zap.Logger) repository.VenueExpander {
	return postgres.NewVenueExpander(NewDBForTest(db, logger))
}

func NewLocationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LocationRepository {
	return postgres.NewLocationRepository(NewDBForTest(db, logger))
}

func NewReservationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ReservationRepository {
	return postgres.NewReservationRepository(NewDBForTest(db, logger))
}
