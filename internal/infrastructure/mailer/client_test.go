package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gomail "gopkg.in/mail.v2"

	"github.com/venue-reservation-service/internal/config"
	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
)

func testData() ReservationData {
	res := &domain.ReservationDetail{ID: "res-1"}
	res.ClientName = "Laura Gómez"
	res.ClientEmail = "laura@example.com"
	res.ClientPhone = "+573001234567"
	res.PartySize = 120
	res.Date = time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC)
	res.Message = "Boda <civil>"

	venue := &domain.VenueDetail{
		ID:      "v1",
		Contact: &domain.Contact{Name: "Ana", Email: "ana@salon.co", Phone: "3001112233"},
	}
	venue.Name = "Hacienda El Roble"
	venue.Address = "Km 5 vía Girón"

	return ReservationData{Reservation: res, Venue: venue}
}

func TestRender_VenueTemplate(t *testing.T) {
	subject, plain, html, err := Render(ReservationVenueTemplate, testData())

	require.NoError(t, err)
	assert.Equal(t, "Nueva reserva para Hacienda El Roble", subject)
	assert.Contains(t, plain, "Laura Gómez reservó Hacienda El Roble para el 05/12/2026")
	assert.Contains(t, plain, "Personas: 120")
	assert.Contains(t, html, "Boda &lt;civil&gt;")
}

func TestRender_ClientTemplate(t *testing.T) {
	data := testData()
	data.Venue.Contact = nil

	subject, plain, _, err := Render(ReservationClientTemplate, data)

	require.NoError(t, err)
	assert.Equal(t, "Tu reserva en Hacienda El Roble", subject)
	assert.Contains(t, plain, "120 personas")
	assert.NotContains(t, plain, "Contacto:")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("missing.tmpl", testData())
	assert.Error(t, err)
}

func TestClient_Send(t *testing.T) {
	cfg := &config.SMTPConfig{Host: "localhost", Port: 2525, From: "reservas@salones.co"}

	t.Run("builds multipart message", func(t *testing.T) {
		var sent []*gomail.Message
		c := NewMailer(cfg, zap.NewNop()).(*client)
		c.send = func(msgs ...*gomail.Message) error {
			sent = append(sent, msgs...)
			return nil
		}

		err := c.Send(context.Background(), repository.Mail{
			To:       "ana@salon.co",
			Template: ReservationVenueTemplate,
			Data:     testData(),
		})

		require.NoError(t, err)
		require.Len(t, sent, 1)
		assert.Equal(t, []string{"ana@salon.co"}, sent[0].GetHeader("To"))
		assert.Equal(t, []string{"Nueva reserva para Hacienda El Roble"}, sent[0].GetHeader("Subject"))

		var buf bytes.Buffer
		_, err = sent[0].WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "text/html")
	})

	t.Run("transport error", func(t *testing.T) {
		c := NewMailer(cfg, zap.NewNop()).(*client)
		c.send = func(...*gomail.Message) error { return errors.New("connection refused") }

		err := c.Send(context.Background(), repository.Mail{
			To:       "ana@salon.co",
			Template: ReservationVenueTemplate,
			Data:     testData(),
		})

		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("cancelled context", func(t *testing.T) {
		c := NewMailer(cfg, zap.NewNop()).(*client)
		c.send = func(...*gomail.Message) error {
			t.Fatal("send must not be called")
			return nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := c.Send(ctx, repository.Mail{To: "ana@salon.co", Template: ReservationVenueTemplate})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
