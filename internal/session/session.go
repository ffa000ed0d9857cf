// Package session holds the per-session page state and the single event
// dispatcher that mutates it.
//
// Navigation is a flat, fully connected graph: every page can reach every
// other page in one step and there is no intermediate loading state.
package session

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/salesdash/internal/model"
)

var (
	ErrUnknownPage = errors.New("session: unknown page")
	ErrBadPayload  = errors.New("session: bad event payload")
	ErrWrongPage   = errors.New("session: action not available on current page")
)

// maxHistory bounds the visited-pages trail.
const maxHistory = 16

// Action identifies what a user did.
type Action int

const (
	ActionNavigate       Action = iota // payload: model.Page
	ActionSubmitPredict                // payload: model.PredictionRequest
	ActionSubmitForecast               // payload: model.ForecastRequest
)

func (a Action) String() string {
	switch a {
	case ActionNavigate:
		return "navigate"
	case ActionSubmitPredict:
		return "submit_predict"
	case ActionSubmitForecast:
		return "submit_forecast"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Event is one discrete user action.
type Event struct {
	Action  Action
	Payload any
}

// NavigateTo builds a navigation event.
func NavigateTo(p model.Page) Event {
	return Event{Action: ActionNavigate, Payload: p}
}

// Session owns the current page. It is not safe for concurrent use; the UI
// update loop is its only caller.
type Session struct {
	page    model.Page
	history []model.Page
}

// New returns a session on the home page.
func New() *Session {
	return &Session{
		page:    model.PageHome,
		history: []model.Page{model.PageHome},
	}
}

// Page returns the current page.
func (s *Session) Page() model.Page {
	return s.page
}

// History returns the visited pages, oldest first.
func (s *Session) History() []model.Page {
	return append([]model.Page(nil), s.history...)
}

// Navigate sets the current page. Undefined targets are rejected and leave
// the state unchanged.
func (s *Session) Navigate(target model.Page) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPage, int(target))
	}
	if target != s.page {
		s.history = append(s.history, target)
		if len(s.history) > maxHistory {
			s.history = append([]model.Page(nil), s.history[len(s.history)-maxHistory:]...)
		}
	}
	s.page = target
	return nil
}

// Dispatch applies ev. changed reports whether the current page moved.
// Submit events are validated against the current page and never move it.
func (s *Session) Dispatch(ev Event) (changed bool, err error) {
	switch ev.Action {
	case ActionNavigate:
		target, ok := ev.Payload.(model.Page)
		if !ok {
			return false, fmt.Errorf("%w: %s wants model.Page, got %T", ErrBadPayload, ev.Action, ev.Payload)
		}
		prev := s.page
		if err := s.Navigate(target); err != nil {
			return false, err
		}
		return prev != s.page, nil

	case ActionSubmitPredict:
		if _, ok := ev.Payload.(model.PredictionRequest); !ok {
			return false, fmt.Errorf("%w: %s wants model.PredictionRequest, got %T", ErrBadPayload, ev.Action, ev.Payload)
		}
		if s.page != model.PagePredictSales {
			return false, fmt.Errorf("%w: %s on %s", ErrWrongPage, ev.Action, s.page)
		}
		return false, nil

	case ActionSubmitForecast:
		if _, ok := ev.Payload.(model.ForecastRequest); !ok {
			return false, fmt.Errorf("%w: %s wants model.ForecastRequest, got %T", ErrBadPayload, ev.Action, ev.Payload)
		}
		if s.page != model.PageForecastSales {
			return false, fmt.Errorf("%w: %s on %s", ErrWrongPage, ev.Action, s.page)
		}
		return false, nil
	}
	return false, fmt.Errorf("session: unknown action %s", ev.Action)
}
