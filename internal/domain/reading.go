package domain

import (
	"context"
	"strings"

	"github.com/kapu/celestia-ai-go/pkg/errors"
)

// AstrologyReading is built entirely from the model response.
type AstrologyReading struct {
	SunSign           string `json:"sunSign"`
	MoonSign          string `json:"moonSign"`
	RisingSign        string `json:"risingSign"`
	NatalAnalysis     string `json:"natalAnalysis"`
	CurrentPrediction string `json:"currentPrediction"`
}

// Reading field names as they appear in the model's output schema.
const (
	FieldSunSign           = "sunSign"
	FieldMoonSign          = "moonSign"
	FieldRisingSign        = "risingSign"
	FieldNatalAnalysis     = "natalAnalysis"
	FieldCurrentPrediction = "currentPrediction"
)

// ReadingFields lists every required field in schema order.
var ReadingFields = []string{
	FieldSunSign,
	FieldMoonSign,
	FieldRisingSign,
	FieldNatalAnalysis,
	FieldCurrentPrediction,
}

func (r *AstrologyReading) Validate() error {
	if r == nil {
		return errors.NewValidationError("reading is missing", "reading", nil)
	}

	values := map[string]string{
		FieldSunSign:           r.SunSign,
		FieldMoonSign:          r.MoonSign,
		FieldRisingSign:        r.RisingSign,
		FieldNatalAnalysis:     r.NatalAnalysis,
		FieldCurrentPrediction: r.CurrentPrediction,
	}
	for _, field := range ReadingFields {
		if strings.TrimSpace(values[field]) == "" {
			return errors.NewValidationError(field+" is missing from reading", field, values[field])
		}
	}
	return nil
}

// Oracle turns birth details into a reading. Implementations must fail with an
// error matching errors.ErrReadingUnavailable whatever went wrong.
type Oracle interface {
	Reading(ctx context.Context, details BirthDetails) (*AstrologyReading, error)
}
