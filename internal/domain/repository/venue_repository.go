package repository

import (
	"context"

	"github.com/venue-reservation-service/internal/domain"
)

// VenueRepository определяет методы для работы с салонами
type VenueRepository interface {
	// Create сохраняет новый салон. ID и временные метки заполняются репозиторием
	Create(ctx context.Context, venue *domain.Venue) error

	// GetByID возвращает салон или ErrVenueNotFound
	GetByID(ctx context.Context, id string) (*domain.Venue, error)

	// List возвращает все салоны
	List(ctx context.Context) ([]*domain.Venue, error)

	// ListByCity возвращает салоны города
	ListByCity(ctx context.Context, cityID string) ([]*domain.Venue, error)

	// ListByCityIDs возвращает салоны, принадлежащие любому из городов
	ListByCityIDs(ctx context.Context, cityIDs []string) ([]*domain.Venue, error)

	// Search возвращает салоны, удовлетворяющие всем условиям фильтра
	Search(ctx context.Context, filter domain.VenueFilter) ([]*domain.Venue, error)

	// ListFeatured возвращает салоны с заданной позицией баннера по возрастанию
	ListFeatured(ctx context.Context, scope domain.FeaturedScope) ([]*domain.Venue, error)

	// Update полностью заменяет поля салона. Занятая другим салоном позиция
	// баннера возвращает ErrBannerPositionTaken, отсутствующий салон - ErrVenueNotFound
	Update(ctx context.Context, venue *domain.Venue) error

	// SetActive меняет флаг estado и возвращает обновлённый салон
	SetActive(ctx context.Context, id string, active bool) (*domain.Venue, error)
}

// VenueExpander разворачивает ссылки салонов в вложенные документы
type VenueExpander interface {
	ExpandVenues(ctx context.Context, venues []*domain.Venue) ([]*domain.VenueDetail, error)
}
