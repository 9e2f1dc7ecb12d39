package usecase

import (
	stderrors "errors"
	"math"
	"strconv"
	"strings"

	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/pkg/errors"
	"github.com/venue-reservation-service/internal/pkg/validator"
	"github.com/venue-reservation-service/internal/usecase/dto"
)

// BuildVenueFilter converts raw query parameters into a VenueFilter.
//
// Comma lists are split without trimming or dropping empty items, so a
// present but empty parameter becomes a single empty identifier and matches
// nothing. Empty location, price and capacity values are treated as absent
// instead; the two rules differ on purpose. A capacity range that does not
// parse keeps NaN bounds and matches nothing.
func BuildVenueFilter(req dto.VenueFilterRequest) (domain.VenueFilter, error) {
	var f domain.VenueFilter

	if req.Location != nil && *req.Location != "" {
		f.Location = &domain.LocationRef{
			Kind: domain.LocationKind(req.LocationKind),
			ID:   *req.Location,
		}
	}

	f.AmbienteIDs = splitList(req.Ambiente)
	f.EspaciosIDs = splitList(req.Espacios)
	f.ServiciosIDs = splitList(req.Servicios)
	f.TipoIDs = splitList(req.Tipo)
	f.UbicacionIDs = splitList(req.Ubicacion)

	if req.MaxPrice != nil && *req.MaxPrice != "" {
		price := jsNumber(*req.MaxPrice)
		if math.IsNaN(price) {
			return domain.VenueFilter{}, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
				"fields": []validator.FieldError{{
					Field:   "precio_sal",
					Rule:    "numeric",
					Message: "must be a number",
				}},
			})
		}
		f.MaxPrice = &price
	}

	if req.Capacity != nil && *req.Capacity != "" {
		r := parseCapacityRange(*req.Capacity)
		f.Capacity = &r
	}

	return f, nil
}

func splitList(s *string) []string {
	if s == nil {
		return nil
	}
	return strings.Split(*s, ",")
}

// parseCapacityRange reads "lo-hi". Only the first two parts count; a
// missing part is NaN.
func parseCapacityRange(s string) domain.CapacityRange {
	parts := strings.Split(s, "-")
	r := domain.CapacityRange{Min: jsNumber(parts[0]), Max: math.NaN()}
	if len(parts) > 1 {
		r.Max = jsNumber(parts[1])
	}
	return r
}

// jsNumber coerces a string the way query values are coerced to numbers in
// browsers: surrounding whitespace is ignored, an empty string is 0, hex
// literals and exponents are accepted, anything else is NaN.
func jsNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X' || s[1] == 'o' || s[1] == 'O' || s[1] == 'b' || s[1] == 'B') {
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil || strings.Contains(s, "_") {
			return math.NaN()
		}
		return float64(n)
	}

	for _, c := range s {
		if !strings.ContainsRune("0123456789+-.eE", c) {
			return math.NaN()
		}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if stderrors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return n // ±Inf on overflow
		}
		return math.NaN()
	}
	return n
}
