package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/usecase/dto"
)

const (
	venueID       = "7b1b7f1e-4c47-4a53-9a4f-6f0f5c0f2a11"
	reservationID = "0d6a4a4e-2f0e-4d55-8d5e-91c1a4f7e3b2"
	cityID        = "3f2a9c1d-8b7e-4f6a-9d5c-2e1b0a9f8c7d"
)

// MockVenueService is a mock of handler.VenueService
type MockVenueService struct {
	mock.Mock
}

func (m *MockVenueService) venues(args mock.Arguments) ([]*domain.VenueDetail, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VenueDetail), args.Error(1)
}

func (m *MockVenueService) venue(args mock.Arguments) (*domain.VenueDetail, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueDetail), args.Error(1)
}

func (m *MockVenueService) List(ctx context.Context) ([]*domain.VenueDetail, error) {
	return m.venues(m.Called(ctx))
}

func (m *MockVenueService) Search(ctx context.Context, req dto.VenueFilterRequest) ([]*domain.VenueDetail, error) {
	return m.venues(m.Called(ctx, req))
}

func (m *MockVenueService) Featured(ctx context.Context, scope domain.FeaturedScope) ([]*domain.VenueDetail, error) {
	return m.venues(m.Called(ctx, scope))
}

func (m *MockVenueService) ListByCity(ctx context.Context, id string) ([]*domain.VenueDetail, error) {
	return m.venues(m.Called(ctx, id))
}

func (m *MockVenueService) ListByLocation(ctx context.Context, text string) ([]*domain.VenueDetail, error) {
	return m.venues(m.Called(ctx, text))
}

func (m *MockVenueService) GetByID(ctx context.Context, id string) (*domain.VenueDetail, error) {
	return m.venue(m.Called(ctx, id))
}

func (m *MockVenueService) Create(ctx context.Context, req dto.VenueRequest) (*domain.VenueDetail, error) {
	return m.venue(m.Called(ctx, req))
}

func (m *MockVenueService) Update(ctx context.Context, id string, req dto.VenueRequest) (*domain.VenueDetail, error) {
	return m.venue(m.Called(ctx, id, req))
}

func (m *MockVenueService) SetActive(ctx context.Context, id string, active bool) (*domain.VenueDetail, error) {
	return m.venue(m.Called(ctx, id, active))
}

// MockReservationService is a mock of handler.ReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) list(args mock.Arguments) ([]*domain.ReservationDetail, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReservationDetail), args.Error(1)
}

func (m *MockReservationService) one(args mock.Arguments) (*domain.ReservationDetail, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationDetail), args.Error(1)
}

func (m *MockReservationService) List(ctx context.Context) ([]*domain.ReservationDetail, error) {
	return m.list(m.Called(ctx))
}

func (m *MockReservationService) ListByClientName(ctx context.Context, name string) ([]*domain.ReservationDetail, error) {
	return m.list(m.Called(ctx, name))
}

func (m *MockReservationService) GetByID(ctx context.Context, id string) (*domain.ReservationDetail, error) {
	return m.one(m.Called(ctx, id))
}

func (m *MockReservationService) Create(ctx context.Context, req dto.ReservationRequest) (*domain.ReservationDetail, error) {
	return m.one(m.Called(ctx, req))
}

func (m *MockReservationService) Update(ctx context.Context, id string, req dto.ReservationRequest) (*domain.ReservationDetail, error) {
	return m.one(m.Called(ctx, id, req))
}

func (m *MockReservationService) SetActive(ctx context.Context, id string, active bool) (*domain.ReservationDetail, error) {
	return m.one(m.Called(ctx, id, active))
}

type envelope struct {
	Data  json.RawMessage      `json:"data"`
	Meta  *struct{ Total int } `json:"meta"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}
