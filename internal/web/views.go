package web

import (
	"github.com/kapu/celestia-ai-go/internal/constants"
	"github.com/kapu/celestia-ai-go/internal/domain"
)

const (
	TabNatal   = "natal"
	TabCurrent = "current"
)

// PageView is the data behind templates/page.tmpl. Exactly one of the four
// views is rendered, chosen by Status alone.
type PageView struct {
	AppName      string
	Status       domain.Status
	Reading      *domain.AstrologyReading
	ErrorMessage string
	Notice       string
	Details      domain.BirthDetails
	ActiveTab    string
}

func newPageView(state *domain.ViewState, tab string) PageView {
	view := PageView{
		AppName:      constants.AppInfo.Name,
		Status:       state.Status,
		ErrorMessage: state.ErrorMessage,
		ActiveTab:    TabNatal,
	}
	if tab == TabCurrent {
		view.ActiveTab = TabCurrent
	}
	if state.Status == domain.StatusSuccess {
		view.Reading = state.Reading
	}
	return view
}

func (v PageView) Loading() bool {
	return v.Status == domain.StatusLoading
}

func (v PageView) ShowReading() bool {
	return v.Status == domain.StatusSuccess && v.Reading != nil
}

// ShowError gives way to Notice so only one banner is ever shown.
func (v PageView) ShowError() bool {
	return v.Status == domain.StatusError && v.ErrorMessage != "" && v.Notice == ""
}

func (v PageView) ShowReset() bool {
	return v.Loading() || v.Status == domain.StatusError
}
