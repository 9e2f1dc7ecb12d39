package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
	"github.com/venue-reservation-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type locationRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewLocationRepository создает репозиторий справочника городов и департаментов
func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *locationRepository) FindCityByName(ctx context.Context, name string) (*domain.City, error) {
	query := `
		SELECT id::text AS id, nombre_ciud, department_id::text AS department_id
		FROM cities
		WHERE nombre_ciud = $1
		ORDER BY id
		LIMIT 1
	`

	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, name); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to find city by name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &city, nil
}

func (r *locationRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	query := `
		SELECT id::text AS id, nombre_depart
		FROM departments
		WHERE nombre_depart = $1
		ORDER BY id
		LIMIT 1
	`

	var dept domain.Department
	if err := r.db.GetContext(ctx, &dept, query, name); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to find department by name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &dept, nil
}

func (r *locationRepository) ListCityIDsByDepartment(ctx context.Context, departmentID string) ([]string, error) {
	query := `SELECT id::text FROM cities WHERE department_id::text = $1 ORDER BY id`

	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, query, departmentID); err != nil {
		r.logger.Error("failed to list department cities",
			zap.String("department_id", departmentID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return ids, nil
}
