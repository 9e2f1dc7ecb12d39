package repository

import (
	"context"

	"github.com/venue-reservation-service/internal/domain"
)

// LocationRepository - справочник городов и департаментов
type LocationRepository interface {
	// FindCityByName - точное совпадение nombre_ciud, nil если не найден
	FindCityByName(ctx context.Context, name string) (*domain.City, error)

	// FindDepartmentByName - точное совпадение nombre_depart, nil если не найден
	FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error)

	// ListCityIDsByDepartment возвращает идентификаторы всех городов департамента
	ListCityIDsByDepartment(ctx context.Context, departmentID string) ([]string, error)
}
