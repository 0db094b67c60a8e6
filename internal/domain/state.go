package domain

import "time"

// Status is the presentation mode flag.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

func (s Status) Valid() bool {
	switch s {
	case StatusIdle, StatusLoading, StatusSuccess, StatusError:
		return true
	default:
		return false
	}
}

// ViewState is everything the presentation layer keeps for one visitor.
type ViewState struct {
	Status       Status            `json:"status"`
	Reading      *AstrologyReading `json:"reading,omitempty"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func NewViewState() *ViewState {
	return &ViewState{
		Status:    StatusIdle,
		UpdatedAt: time.Now(),
	}
}

// Begin marks a submission as in flight. The previous reading stays out of view
// because only the success view renders it.
func (v *ViewState) Begin() {
	v.Status = StatusLoading
	v.ErrorMessage = ""
	v.touch()
}

func (v *ViewState) Succeed(reading *AstrologyReading) {
	v.Status = StatusSuccess
	v.Reading = reading
	v.ErrorMessage = ""
	v.touch()
}

func (v *ViewState) Fail(message string) {
	v.Status = StatusError
	v.Reading = nil
	v.ErrorMessage = message
	v.touch()
}

func (v *ViewState) Reset() {
	v.Status = StatusIdle
	v.Reading = nil
	v.ErrorMessage = ""
	v.touch()
}

func (v *ViewState) IsLoading() bool {
	return v.Status == StatusLoading
}

// Stale reports a loading state older than after, which no live request can
// still be working on.
func (v *ViewState) Stale(now time.Time, after time.Duration) bool {
	return v.IsLoading() && now.Sub(v.UpdatedAt) > after
}

func (v *ViewState) touch() {
	v.UpdatedAt = time.Now()
}
