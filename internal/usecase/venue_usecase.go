package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
	"github.com/venue-reservation-service/internal/usecase/dto"
)

// VenueUseCase - use case для салонов: поиск, избранное и CRUD
type VenueUseCase struct {
	venueRepo    repository.VenueRepository
	locationRepo repository.LocationRepository
	expander     repository.VenueExpander
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	featuredTTL  time.Duration
	locationTTL  time.Duration
}

// NewVenueUseCase - создание нового VenueUseCase
func NewVenueUseCase(
	venueRepo repository.VenueRepository,
	locationRepo repository.LocationRepository,
	expander repository.VenueExpander,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	featuredTTL time.Duration,
	locationTTL time.Duration,
) *VenueUseCase {
	return &VenueUseCase{
		venueRepo:    venueRepo,
		locationRepo: locationRepo,
		expander:     expander,
		cacheRepo:    cacheRepo,
		logger:       logger,
		featuredTTL:  featuredTTL,
		locationTTL:  locationTTL,
	}
}

// ResolveLocation maps a city or department name to city identifiers. An
// exact city name wins over a department of the same name; an unknown name
// resolves to an empty set.
func (uc *VenueUseCase) ResolveLocation(ctx context.Context, text string) ([]string, error) {
	if ids, found, err := uc.cacheRepo.GetLocation(ctx, text); err != nil {
		uc.logger.Warn("Location cache read failed", zap.String("location", text), zap.Error(err))
	} else if found {
		return ids, nil
	}

	ids, err := uc.resolveLocation(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetLocation(ctx, text, ids, uc.locationTTL); err != nil {
		uc.logger.Warn("Location cache write failed", zap.String("location", text), zap.Error(err))
	}
	return ids, nil
}

func (uc *VenueUseCase) resolveLocation(ctx context.Context, text string) ([]string, error) {
	city, err := uc.locationRepo.FindCityByName(ctx, text)
	if err != nil {
		return nil, err
	}
	if city != nil {
		return []string{city.ID}, nil
	}

	dept, err := uc.locationRepo.FindDepartmentByName(ctx, text)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		uc.logger.Debug("Location not resolved", zap.String("location", text))
		return []string{}, nil
	}

	return uc.locationRepo.ListCityIDsByDepartment(ctx, dept.ID)
}

// ListByLocation - салоны города или всех городов департамента
func (uc *VenueUseCase) ListByLocation(ctx context.Context, text string) ([]*domain.VenueDetail, error) {
	cityIDs, err := uc.ResolveLocation(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(cityIDs) == 0 {
		return []*domain.VenueDetail{}, nil
	}

	venues, err := uc.venueRepo.ListByCityIDs(ctx, cityIDs)
	if err != nil {
		return nil, err
	}
	return uc.expander.ExpandVenues(ctx, venues)
}

// Search - фильтрация салонов по параметрам запроса
func (uc *VenueUseCase) Search(ctx context.Context, req dto.VenueFilterRequest) ([]*domain.VenueDetail, error) {
	filter, err := BuildVenueFilter(req)
	if err != nil {
		return nil, err
	}

	venues, err := uc.venueRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uc.expander.ExpandVenues(ctx, venues)
}

// Featured - салоны с позицией баннера по возрастанию, через кеш
func (uc *VenueUseCase) Featured(ctx context.Context, scope domain.FeaturedScope) ([]*domain.VenueDetail, error) {
	cached, err := uc.cacheRepo.GetFeatured(ctx, scope)
	if err != nil {
		uc.logger.Warn("Featured cache read failed", zap.String("scope", string(scope)), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	venues, err := uc.venueRepo.ListFeatured(ctx, scope)
	if err != nil {
		return nil, err
	}
	details, err := uc.expander.ExpandVenues(ctx, venues)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetFeatured(ctx, scope, details, uc.featuredTTL); err != nil {
		uc.logger.Warn("Featured cache write failed", zap.String("scope", string(scope)), zap.Error(err))
	}
	return details, nil
}

func (uc *VenueUseCase) List(ctx context.Context) ([]*domain.VenueDetail, error) {
	venues, err := uc.venueRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.expander.ExpandVenues(ctx, venues)
}

func (uc *VenueUseCase) ListByCity(ctx context.Context, cityID string) ([]*domain.VenueDetail, error) {
	venues, err := uc.venueRepo.ListByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return uc.expander.ExpandVenues(ctx, venues)
}

func (uc *VenueUseCase) GetByID(ctx context.Context, id string) (*domain.VenueDetail, error) {
	venue, err := uc.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.expandOne(ctx, venue)
}

// Create - регистрация салона. Запрос должен быть провалидирован
func (uc *VenueUseCase) Create(ctx context.Context, req dto.VenueRequest) (*domain.VenueDetail, error) {
	venue := req.ToDomain("")
	if err := uc.venueRepo.Create(ctx, venue); err != nil {
		return nil, err
	}
	uc.invalidateFeatured(ctx)
	return uc.expandOne(ctx, venue)
}

// Update - полная замена полей салона, включая позиции баннера. estado не
// меняется, ответ строится из сохранённой строки
func (uc *VenueUseCase) Update(ctx context.Context, id string, req dto.VenueRequest) (*domain.VenueDetail, error) {
	venue := req.ToDomain(id)
	if err := uc.venueRepo.Update(ctx, venue); err != nil {
		return nil, err
	}
	uc.invalidateFeatured(ctx)
	return uc.expandOne(ctx, venue)
}

// SetActive - активация/деактивация салона
func (uc *VenueUseCase) SetActive(ctx context.Context, id string, active bool) (*domain.VenueDetail, error) {
	venue, err := uc.venueRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	uc.invalidateFeatured(ctx)
	return uc.expandOne(ctx, venue)
}

func (uc *VenueUseCase) expandOne(ctx context.Context, venue *domain.Venue) (*domain.VenueDetail, error) {
	details, err := uc.expander.ExpandVenues(ctx, []*domain.Venue{venue})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (uc *VenueUseCase) invalidateFeatured(ctx context.Context) {
	if err := uc.cacheRepo.InvalidateFeatured(ctx); err != nil {
		uc.logger.Warn("Featured cache invalidation failed", zap.Error(err))
	}
}
