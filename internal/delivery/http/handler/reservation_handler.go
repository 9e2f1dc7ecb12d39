package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/pkg/errors"
	"github.com/venue-reservation-service/internal/pkg/utils"
	"github.com/venue-reservation-service/internal/pkg/validator"
	"github.com/venue-reservation-service/internal/usecase/dto"
)

// ReservationService - операции над бронированиями, используемые обработчиком
type ReservationService interface {
	List(ctx context.Context) ([]*domain.ReservationDetail, error)
	ListByClientName(ctx context.Context, name string) ([]*domain.ReservationDetail, error)
	GetByID(ctx context.Context, id string) (*domain.ReservationDetail, error)
	Create(ctx context.Context, req dto.ReservationRequest) (*domain.ReservationDetail, error)
	Update(ctx context.Context, id string, req dto.ReservationRequest) (*domain.ReservationDetail, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.ReservationDetail, error)
}

// ReservationHandler - обработчик для бронирований
type ReservationHandler struct {
	reservationUC ReservationService
	logger        *zap.Logger
}

// NewReservationHandler - создание нового ReservationHandler
func NewReservationHandler(reservationUC ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: reservationUC,
		logger:        logger,
	}
}

// Register mounts the reservation routes.
func (h *ReservationHandler) Register(r fiber.Router) {
	r.Get("/all", h.List)
	r.Get("/nombre-cliente/:nombre_cliente", h.ListByClientName)
	r.Post("/registro", h.Create)
	r.Put("/editar/:id", h.Update)
	r.Put("/activar/:id", h.Activate)
	r.Put("/inactivar/:id", h.Deactivate)
	r.Get("/:id", h.GetByID)
}

// List godoc
// @Summary Все бронирования
// @Tags Reservations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ReservationDetail}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reservas/all [get]
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	list, err := h.reservationUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendList(c, list)
}

// ListByClientName godoc
// @Summary Бронирования клиента
// @Description Точное совпадение nombre_cliente
// @Tags Reservations
// @Produce json
// @Param nombre_cliente path string true "Имя клиента"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ReservationDetail}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reservas/nombre-cliente/{nombre_cliente} [get]
func (h *ReservationHandler) ListByClientName(c *fiber.Ctx) error {
	name, err := pathText(c, "nombre_cliente")
	if err != nil {
		return utils.SendError(c, err)
	}

	list, err := h.reservationUC.ListByClientName(c.Context(), name)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendList(c, list)
}

// GetByID godoc
// @Summary Бронирование по ID
// @Tags Reservations
// @Produce json
// @Param id path string true "ID бронирования"
// @Success 200 {object} utils.SuccessResponse{data=domain.ReservationDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reservas/{id} [get]
func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.reservationUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, nil)
}

// Create godoc
// @Summary Регистрация бронирования
// @Description Салон должен существовать. После сохранения публикуется событие для рассылки уведомлений.
// @Tags Reservations
// @Accept json
// @Produce json
// @Param request body dto.ReservationRequest true "Бронирование"
// @Success 201 {object} utils.SuccessResponse{data=domain.ReservationDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reservas/registro [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var req dto.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.reservationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Info("Reservation created",
		zap.String("reservation_id", res.ID),
		zap.String("venue_id", req.VenueID))
	return utils.SendCreated(c, res)
}

// Update godoc
// @Summary Редактирование бронирования
// @Tags Reservations
// @Accept json
// @Produce json
// @Param id path string true "ID бронирования"
// @Param request body dto.ReservationRequest true "Бронирование"
// @Success 200 {object} utils.SuccessResponse{data=domain.ReservationDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reservas/editar/{id} [put]
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.reservationUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, nil)
}

// Activate godoc
// @Summary Активация бронирования
// @Tags Reservations
// @Produce json
// @Param id path string true "ID бронирования"
// @Success 200 {object} utils.SuccessResponse{data=domain.ReservationDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/reservas/activar/{id} [put]
func (h *ReservationHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

// Deactivate godoc
// @Summary Деактивация бронирования
// @Tags Reservations
// @Produce json
// @Param id path string true "ID бронирования"
// @Success 200 {object} utils.SuccessResponse{data=domain.ReservationDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/reservas/inactivar/{id} [put]
func (h *ReservationHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *ReservationHandler) setActive(c *fiber.Ctx, active bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.reservationUC.SetActive(c.Context(), id, active)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, nil)
}
