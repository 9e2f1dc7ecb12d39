package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-reservation-service/internal/domain"
	apperrors "github.com/venue-reservation-service/internal/pkg/errors"
	"github.com/venue-reservation-service/internal/usecase"
	"github.com/venue-reservation-service/internal/usecase/dto"
)

const testVenueID = "7b1b7f1e-4c47-4a53-9a4f-6f0f5c0f2a11"

type reservationMocks struct {
	reservations *MockReservationRepository
	venues       *MockVenueRepository
	stream       *MockStreamRepository
}

func newReservationUseCase() (*usecase.ReservationUseCase, *reservationMocks) {
	m := &reservationMocks{
		reservations: &MockReservationRepository{},
		venues:       &MockVenueRepository{},
		stream:       &MockStreamRepository{},
	}
	return usecase.NewReservationUseCase(m.reservations, m.venues, m.stream, zap.NewNop()), m
}

func validReservationRequest() dto.ReservationRequest {
	return dto.ReservationRequest{
		ClientName:  "Laura Gómez",
		ClientEmail: "laura@example.com",
		ClientPhone: "+573001234567",
		PartySize:   120,
		Date:        "2026-12-05",
		Message:     "Boda civil",
		VenueID:     testVenueID,
	}
}

func expandedReservation(res *domain.Reservation) []*domain.ReservationDetail {
	return []*domain.ReservationDetail{{
		ID:                    res.ID,
		ReservationAttributes: res.ReservationAttributes,
		Venue:                 &domain.Venue{ID: res.VenueID},
	}}
}

func TestReservationUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and publishes event", func(t *testing.T) {
		uc, m := newReservationUseCase()
		createdAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

		m.venues.On("GetByID", ctx, testVenueID).Return(&domain.Venue{ID: testVenueID}, nil)
		m.reservations.On("Create", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.ClientName == "Laura Gómez" && r.Active &&
				r.Date.Equal(time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC))
		})).Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.Reservation)
			r.ID = "res-1"
			r.CreatedAt = createdAt
		}).Return(nil)
		m.stream.On("PublishToStream", ctx, domain.StreamReservationCreated, domain.ReservationCreatedEvent{
			ReservationID: "res-1",
			VenueID:       testVenueID,
			CreatedAt:     createdAt,
		}).Return(nil)
		m.reservations.On("ExpandReservations", ctx, mock.Anything).Return(
			[]*domain.ReservationDetail{{ID: "res-1", Venue: &domain.Venue{ID: testVenueID}}}, nil)

		result, err := uc.Create(ctx, validReservationRequest())

		require.NoError(t, err)
		assert.Equal(t, "res-1", result.ID)
		assert.Equal(t, testVenueID, result.Venue.ID)
		m.venues.AssertExpectations(t)
		m.reservations.AssertExpectations(t)
		m.stream.AssertExpectations(t)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		uc, m := newReservationUseCase()
		m.venues.On("GetByID", ctx, testVenueID).Return(&domain.Venue{ID: testVenueID}, nil)
		m.reservations.On("Create", ctx, mock.Anything).Return(nil)
		m.stream.On("PublishToStream", ctx, domain.StreamReservationCreated, mock.Anything).Return(errors.New("redis down"))
		m.reservations.On("ExpandReservations", ctx, mock.Anything).Return(
			[]*domain.ReservationDetail{{ID: "res-2"}}, nil)

		result, err := uc.Create(ctx, validReservationRequest())

		require.NoError(t, err)
		assert.Equal(t, "res-2", result.ID)
		m.stream.AssertExpectations(t)
	})

	t.Run("unknown venue", func(t *testing.T) {
		uc, m := newReservationUseCase()
		m.venues.On("GetByID", ctx, testVenueID).Return(nil, apperrors.ErrVenueNotFound)

		_, err := uc.Create(ctx, validReservationRequest())

		assert.ErrorIs(t, err, apperrors.ErrVenueNotFound)
		m.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unparseable date", func(t *testing.T) {
		uc, m := newReservationUseCase()
		req := validReservationRequest()
		req.Date = "next friday"

		_, err := uc.Create(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		m.venues.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestReservationUseCase_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("get by id expands venue", func(t *testing.T) {
		uc, m := newReservationUseCase()
		res := &domain.Reservation{ID: "res-1", VenueID: testVenueID}
		m.reservations.On("GetByID", ctx, "res-1").Return(res, nil)
		m.reservations.On("ExpandReservations", ctx, []*domain.Reservation{res}).Return(expandedReservation(res), nil)

		result, err := uc.GetByID(ctx, "res-1")

		require.NoError(t, err)
		assert.Equal(t, testVenueID, result.Venue.ID)
	})

	t.Run("get by id not found", func(t *testing.T) {
		uc, m := newReservationUseCase()
		m.reservations.On("GetByID", ctx, "res-x").Return(nil, apperrors.ErrReservationNotFound)

		_, err := uc.GetByID(ctx, "res-x")

		assert.ErrorIs(t, err, apperrors.ErrReservationNotFound)
	})

	t.Run("list by client name", func(t *testing.T) {
		uc, m := newReservationUseCase()
		list := []*domain.Reservation{{ID: "res-1"}, {ID: "res-2"}}
		m.reservations.On("ListByClientName", ctx, "Laura Gómez").Return(list, nil)
		m.reservations.On("ExpandReservations", ctx, list).Return(
			[]*domain.ReservationDetail{{ID: "res-1"}, {ID: "res-2"}}, nil)

		result, err := uc.ListByClientName(ctx, "Laura Gómez")

		require.NoError(t, err)
		assert.Len(t, result, 2)
		m.reservations.AssertExpectations(t)
	})

	t.Run("list propagates database errors", func(t *testing.T) {
		uc, m := newReservationUseCase()
		m.reservations.On("List", ctx).Return(nil, apperrors.ErrDatabaseError)

		_, err := uc.List(ctx)

		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	})
}

func TestReservationUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces fields under the path id", func(t *testing.T) {
		uc, m := newReservationUseCase()
		req := validReservationRequest()
		req.Active = new(bool)

		m.reservations.On("Update", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.ID == "res-1" && !r.Active && r.PartySize == 120
		})).Return(nil)
		m.reservations.On("ExpandReservations", ctx, mock.Anything).Return(
			[]*domain.ReservationDetail{{ID: "res-1"}}, nil)

		result, err := uc.Update(ctx, "res-1", req)

		require.NoError(t, err)
		assert.Equal(t, "res-1", result.ID)
		m.stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deactivated reservation stays inactive", func(t *testing.T) {
		uc, m := newReservationUseCase()
		req := validReservationRequest()
		req.Active = nil

		m.reservations.On("Update", ctx, mock.AnythingOfType("*domain.Reservation")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Reservation).Active = false
			}).
			Return(nil)
		m.reservations.On("ExpandReservations", ctx, mock.MatchedBy(func(r []*domain.Reservation) bool {
			return len(r) == 1 && !r[0].Active
		})).Return([]*domain.ReservationDetail{{ID: "res-1"}}, nil)

		result, err := uc.Update(ctx, "res-1", req)

		require.NoError(t, err)
		assert.False(t, result.Active)
		m.reservations.AssertExpectations(t)
	})

	t.Run("missing reservation", func(t *testing.T) {
		uc, m := newReservationUseCase()
		m.reservations.On("Update", ctx, mock.Anything).Return(apperrors.ErrReservationNotFound)

		_, err := uc.Update(ctx, "res-x", validReservationRequest())

		assert.ErrorIs(t, err, apperrors.ErrReservationNotFound)
	})
}

func TestReservationUseCase_SetActive(t *testing.T) {
	ctx := context.Background()
	uc, m := newReservationUseCase()
	res := &domain.Reservation{ID: "res-1", VenueID: testVenueID}
	res.Active = true
	m.reservations.On("SetActive", ctx, "res-1", true).Return(res, nil)
	m.reservations.On("ExpandReservations", ctx, []*domain.Reservation{res}).Return(expandedReservation(res), nil)

	result, err := uc.SetActive(ctx, "res-1", true)

	require.NoError(t, err)
	assert.True(t, result.Active)
}
