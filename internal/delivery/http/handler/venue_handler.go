package handler

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/pkg/errors"
	"github.com/venue-reservation-service/internal/pkg/utils"
	"github.com/venue-reservation-service/internal/pkg/validator"
	"github.com/venue-reservation-service/internal/usecase/dto"
)

// VenueService - операции над салонами, используемые обработчиком
type VenueService interface {
	List(ctx context.Context) ([]*domain.VenueDetail, error)
	Search(ctx context.Context, req dto.VenueFilterRequest) ([]*domain.VenueDetail, error)
	Featured(ctx context.Context, scope domain.FeaturedScope) ([]*domain.VenueDetail, error)
	ListByCity(ctx context.Context, cityID string) ([]*domain.VenueDetail, error)
	ListByLocation(ctx context.Context, text string) ([]*domain.VenueDetail, error)
	GetByID(ctx context.Context, id string) (*domain.VenueDetail, error)
	Create(ctx context.Context, req dto.VenueRequest) (*domain.VenueDetail, error)
	Update(ctx context.Context, id string, req dto.VenueRequest) (*domain.VenueDetail, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.VenueDetail, error)
}

// VenueHandler - обработчик для салонов
type VenueHandler struct {
	venueUC VenueService
	logger  *zap.Logger
}

// NewVenueHandler - создание нового VenueHandler
func NewVenueHandler(venueUC VenueService, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{
		venueUC: venueUC,
		logger:  logger,
	}
}

// Register mounts the venue routes. Static segments go before /:id.
func (h *VenueHandler) Register(r fiber.Router) {
	r.Get("/all", h.List)
	r.Get("/salones", h.Search)
	r.Get("/salones-destacados", h.Featured)
	r.Get("/salones-destacados-ubicacion", h.FeaturedByLocation)
	r.Get("/ciudad/:idCiudSalonEvento", h.ListByCity)
	r.Get("/salones/:location", h.ListByLocation)
	r.Post("/registro", h.Create)
	r.Put("/editar/:id", h.Update)
	r.Put("/activar/:id", h.Activate)
	r.Put("/inactivar/:id", h.Deactivate)
	r.Get("/:id", h.GetByID)
}

// List godoc
// @Summary Все салоны
// @Tags Venues
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueDetail}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/all [get]
func (h *VenueHandler) List(c *fiber.Ctx) error {
	venues, err := h.venueUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendList(c, venues)
}

// Search godoc
// @Summary Фильтрация салонов
// @Description Все переданные условия объединяются через AND. Списки идентификаторов разделяются запятыми.
// @Tags Venues
// @Produce json
// @Param idCiudSalonEvento query string false "Город или департамент"
// @Param tipo_ubicacion query string false "ciudad | departamento"
// @Param idAmbienteSalon query string false "Содержит все ambientes"
// @Param idEspaciosSalon query string false "Содержит все espacios"
// @Param idServiciosSalon query string false "Содержит все servicios"
// @Param idTipoSalon query string false "Содержит любой tipo"
// @Param idUbicacionSalon query string false "Содержит любую ubicación"
// @Param precio_sal query number false "Максимальная цена"
// @Param capacidad_sal query string false "Диапазон вместимости lo-hi"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/salones [get]
func (h *VenueHandler) Search(c *fiber.Ctx) error {
	req := dto.VenueFilterRequest{
		Location:     optionalQuery(c, "idCiudSalonEvento"),
		LocationKind: c.Query("tipo_ubicacion"),
		Ambiente:     optionalQuery(c, "idAmbienteSalon"),
		Espacios:     optionalQuery(c, "idEspaciosSalon"),
		Servicios:    optionalQuery(c, "idServiciosSalon"),
		Tipo:         optionalQuery(c, "idTipoSalon"),
		Ubicacion:    optionalQuery(c, "idUbicacionSalon"),
		MaxPrice:     optionalQuery(c, "precio_sal"),
		Capacity:     optionalQuery(c, "capacidad_sal"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	venues, err := h.venueUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendList(c, venues)
}

// Featured godoc
// @Summary Салоны главного баннера
// @Description Салоны с posicion_banner по возрастанию позиции
// @Tags Venues
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueDetail}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/salones-destacados [get]
func (h *VenueHandler) Featured(c *fiber.Ctx) error {
	return h.featured(c, domain.FeaturedGlobal)
}

// FeaturedByLocation godoc
// @Summary Салоны баннера локации
// @Description Салоны с posicion_banner_ubicacion по возрастанию позиции
// @Tags Venues
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueDetail}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/salones-destacados-ubicacion [get]
func (h *VenueHandler) FeaturedByLocation(c *fiber.Ctx) error {
	return h.featured(c, domain.FeaturedLocation)
}

func (h *VenueHandler) featured(c *fiber.Ctx, scope domain.FeaturedScope) error {
	venues, err := h.venueUC.Featured(c.Context(), scope)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendList(c, venues)
}

// ListByCity godoc
// @Summary Салоны города
// @Tags Venues
// @Produce json
// @Param idCiudSalonEvento path string true "ID города"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/ciudad/{idCiudSalonEvento} [get]
func (h *VenueHandler) ListByCity(c *fiber.Ctx) error {
	cityID, err := pathID(c, "idCiudSalonEvento")
	if err != nil {
		return utils.SendError(c, err)
	}

	venues, err := h.venueUC.ListByCity(c.Context(), cityID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendList(c, venues)
}

// ListByLocation godoc
// @Summary Салоны по названию города или департамента
// @Description Точное совпадение с названием города имеет приоритет над департаментом. Неизвестное название возвращает пустой список.
// @Tags Venues
// @Produce json
// @Param location path string true "Название города или департамента"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueDetail}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/salones/{location} [get]
func (h *VenueHandler) ListByLocation(c *fiber.Ctx) error {
	location, err := pathText(c, "location")
	if err != nil {
		return utils.SendError(c, err)
	}

	venues, err := h.venueUC.ListByLocation(c.Context(), location)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendList(c, venues)
}

// GetByID godoc
// @Summary Салон по ID
// @Tags Venues
// @Produce json
// @Param id path string true "ID салона"
// @Success 200 {object} utils.SuccessResponse{data=domain.VenueDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/{id} [get]
func (h *VenueHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	venue, err := h.venueUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, venue, nil)
}

// Create godoc
// @Summary Регистрация салона
// @Tags Venues
// @Accept json
// @Produce json
// @Param request body dto.VenueRequest true "Салон"
// @Success 201 {object} utils.SuccessResponse{data=domain.VenueDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/registro [post]
func (h *VenueHandler) Create(c *fiber.Ctx) error {
	var req dto.VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	venue, err := h.venueUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Info("Venue created", zap.String("venue_id", venue.ID))
	return utils.SendCreated(c, venue)
}

// Update godoc
// @Summary Редактирование салона
// @Description Полная замена полей, включая обе позиции баннера. Позиция, занятая другим салоном, возвращает 400.
// @Tags Venues
// @Accept json
// @Produce json
// @Param id path string true "ID салона"
// @Param request body dto.VenueRequest true "Салон"
// @Success 200 {object} utils.SuccessResponse{data=domain.VenueDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/editar/{id} [put]
func (h *VenueHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	venue, err := h.venueUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, venue, nil)
}

// Activate godoc
// @Summary Активация салона
// @Tags Venues
// @Produce json
// @Param id path string true "ID салона"
// @Success 200 {object} utils.SuccessResponse{data=domain.VenueDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/activar/{id} [put]
func (h *VenueHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

// Deactivate godoc
// @Summary Деактивация салона
// @Tags Venues
// @Produce json
// @Param id path string true "ID салона"
// @Success 200 {object} utils.SuccessResponse{data=domain.VenueDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/salones-evento/inactivar/{id} [put]
func (h *VenueHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *VenueHandler) setActive(c *fiber.Ctx, active bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	venue, err := h.venueUC.SetActive(c.Context(), id, active)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, venue, nil)
}

// optionalQuery returns nil when key is absent from the query string and a
// pointer to its value (possibly empty) otherwise.
func optionalQuery(c *fiber.Ctx, key string) *string {
	if !c.Context().QueryArgs().Has(key) {
		return nil
	}
	v := c.Query(key)
	return &v
}

// pathID returns a path parameter that must be a valid identifier.
func pathID(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		return "", errors.ErrInvalidID.WithDetails(map[string]interface{}{
			"param": name,
			"value": id,
		})
	}
	return id, nil
}

// pathText returns a free-text path parameter, percent-decoded.
func pathText(c *fiber.Ctx, name string) (string, error) {
	v, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"param": name,
		})
	}
	return v, nil
}

func sendList[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}
