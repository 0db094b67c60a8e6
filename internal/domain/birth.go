package domain

import (
	"strings"

	"github.com/kapu/celestia-ai-go/pkg/errors"
)

// BirthDetails is what the visitor typed into the form, untouched.
type BirthDetails struct {
	Date    string `json:"date" form:"date"`
	Time    string `json:"time" form:"time"`
	City    string `json:"city" form:"city"`
	Country string `json:"country" form:"country"`
}

// Validate only checks presence. Calendar ranges and place names are left to the model.
func (b BirthDetails) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"date", b.Date},
		{"time", b.Time},
		{"city", b.City},
		{"country", b.Country},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return errors.NewValidationError(f.name+" is required", f.name, f.value)
		}
	}
	return nil
}
