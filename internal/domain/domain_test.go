package domain_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/kapu/celestia-ai-go/internal/domain"
	"github.com/kapu/celestia-ai-go/pkg/errors"
)

func parisDetails() domain.BirthDetails {
	return domain.BirthDetails{Date: "1990-05-15", Time: "14:30", City: "Paris", Country: "France"}
}

func fullReading() *domain.AstrologyReading {
	return &domain.AstrologyReading{
		SunSign:           "Taurus",
		MoonSign:          "Leo",
		RisingSign:        "Virgo",
		NatalAnalysis:     "Grounded and warm.",
		CurrentPrediction: "A season of steady growth.",
	}
}

func TestBirthDetailsValidate(t *testing.T) {
	if err := parisDetails().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		field  string
		mutate func(*domain.BirthDetails)
	}{
		{"date", func(b *domain.BirthDetails) { b.Date = "" }},
		{"time", func(b *domain.BirthDetails) { b.Time = "  " }},
		{"city", func(b *domain.BirthDetails) { b.City = "" }},
		{"country", func(b *domain.BirthDetails) { b.Country = "\t" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			details := parisDetails()
			tt.mutate(&details)

			err := details.Validate()
			var ve *errors.ValidationError
			if !stderrors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, ve.Field)
			}
		})
	}
}

func TestBirthDetailsValidateAcceptsImplausibleValues(t *testing.T) {
	details := domain.BirthDetails{Date: "1990-02-31", Time: "25:99", City: "Atlantis", Country: "???"}
	if err := details.Validate(); err != nil {
		t.Fatalf("presence is the only rule, got %v", err)
	}
}

func TestAstrologyReadingValidate(t *testing.T) {
	if err := fullReading().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var nilReading *domain.AstrologyReading
	if err := nilReading.Validate(); err == nil {
		t.Fatal("expected error for nil reading")
	}

	r := fullReading()
	r.CurrentPrediction = ""
	err := r.Validate()
	var ve *errors.ValidationError
	if !stderrors.As(err, &ve) || ve.Field != domain.FieldCurrentPrediction {
		t.Fatalf("expected currentPrediction validation error, got %v", err)
	}
}

func TestViewStateTransitions(t *testing.T) {
	state := domain.NewViewState()
	if state.Status != domain.StatusIdle {
		t.Fatalf("expected idle, got %s", state.Status)
	}

	state.Begin()
	if !state.IsLoading() {
		t.Fatalf("expected loading, got %s", state.Status)
	}

	reading := fullReading()
	state.Succeed(reading)
	if state.Status != domain.StatusSuccess || state.Reading != reading {
		t.Fatalf("expected success with reading, got %+v", state)
	}

	state.Reset()
	if state.Status != domain.StatusIdle || state.Reading != nil || state.ErrorMessage != "" {
		t.Fatalf("reset did not clear state: %+v", state)
	}

	state.Begin()
	state.Fail("The stars are cloudy")
	if state.Status != domain.StatusError || state.Reading != nil || state.ErrorMessage == "" {
		t.Fatalf("unexpected error state: %+v", state)
	}

	state.Begin()
	if state.ErrorMessage != "" {
		t.Errorf("resubmission should clear the previous error message")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []domain.Status{domain.StatusIdle, domain.StatusLoading, domain.StatusSuccess, domain.StatusError} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if domain.Status("paused").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestViewStateStale(t *testing.T) {
	now := time.Now()
	state := domain.NewViewState()

	state.Begin()
	state.UpdatedAt = now.Add(-time.Minute)
	if state.Stale(now, 5*time.Minute) {
		t.Error("a recent loading state is still in flight")
	}
	if !state.Stale(now, 30*time.Second) {
		t.Error("expected loading state older than the limit to be stale")
	}

	state.Succeed(fullReading())
	state.UpdatedAt = now.Add(-time.Hour)
	if state.Stale(now, time.Second) {
		t.Error("only loading states go stale")
	}
}
