package session

import (
	"errors"
	"testing"
	"time"

	"github.com/tinytelemetry/salesdash/internal/model"
)

func TestNew_StartsAtHome(t *testing.T) {
	t.Parallel()

	s := New()
	if got := s.Page(); got != model.PageHome {
		t.Fatalf("initial page = %s, want %s", got, model.PageHome)
	}
}

func TestNavigate_FullyConnected(t *testing.T) {
	t.Parallel()

	for _, from := range model.Pages {
		for _, to := range model.Pages {
			s := New()
			if err := s.Navigate(from); err != nil {
				t.Fatalf("Navigate(%s): %v", from, err)
			}
			if err := s.Navigate(to); err != nil {
				t.Fatalf("Navigate(%s -> %s): %v", from, to, err)
			}
			if got := s.Page(); got != to {
				t.Errorf("%s -> %s: page = %s", from, to, got)
			}
		}
	}
}

func TestNavigate_RejectsUndefinedPage(t *testing.T) {
	t.Parallel()

	s := New()
	_ = s.Navigate(model.PageForecastSales)

	err := s.Navigate(model.Page(99))
	if !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("Navigate(99) error = %v, want ErrUnknownPage", err)
	}
	if got := s.Page(); got != model.PageForecastSales {
		t.Errorf("page after rejected navigate = %s, want %s", got, model.PageForecastSales)
	}
}

func TestDispatch_Navigate(t *testing.T) {
	t.Parallel()

	s := New()
	changed, err := s.Dispatch(NavigateTo(model.PagePredictSales))
	if err != nil || !changed {
		t.Fatalf("Dispatch(navigate predict) = %v, %v; want true, nil", changed, err)
	}

	changed, err = s.Dispatch(NavigateTo(model.PagePredictSales))
	if err != nil || changed {
		t.Fatalf("Dispatch(navigate same page) = %v, %v; want false, nil", changed, err)
	}
}

func TestDispatch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page model.Page
		ev   Event
		want error
	}{
		{"navigate bad payload", model.PageHome, Event{Action: ActionNavigate, Payload: "home"}, ErrBadPayload},
		{"navigate unknown page", model.PageHome, NavigateTo(model.Page(-1)), ErrUnknownPage},
		{"predict bad payload", model.PagePredictSales, Event{Action: ActionSubmitPredict, Payload: model.ForecastRequest{}}, ErrBadPayload},
		{"predict from home", model.PageHome, Event{Action: ActionSubmitPredict, Payload: model.PredictionRequest{}}, ErrWrongPage},
		{"forecast bad payload", model.PageForecastSales, Event{Action: ActionSubmitForecast, Payload: nil}, ErrBadPayload},
		{"forecast from predict", model.PagePredictSales, Event{Action: ActionSubmitForecast, Payload: model.ForecastRequest{}}, ErrWrongPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := New()
			_ = s.Navigate(tt.page)
			changed, err := s.Dispatch(tt.ev)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Dispatch error = %v, want %v", err, tt.want)
			}
			if changed {
				t.Error("changed = true on error")
			}
			if got := s.Page(); got != tt.page {
				t.Errorf("page = %s, want unchanged %s", got, tt.page)
			}
		})
	}
}

func TestDispatch_SubmitDoesNotMove(t *testing.T) {
	t.Parallel()

	s := New()
	_ = s.Navigate(model.PagePredictSales)
	changed, err := s.Dispatch(Event{Action: ActionSubmitPredict, Payload: model.PredictionRequest{
		ItemID: "HOBBIES_1_001", StoreID: "WI_1", Date: time.Now(),
	}})
	if err != nil || changed {
		t.Fatalf("Dispatch(submit) = %v, %v; want false, nil", changed, err)
	}
	if got := s.Page(); got != model.PagePredictSales {
		t.Errorf("page = %s, want %s", got, model.PagePredictSales)
	}
}

func TestHistory_Bounded(t *testing.T) {
	t.Parallel()

	s := New()
	for i := 0; i < 40; i++ {
		_ = s.Navigate(model.Pages[(i+1)%len(model.Pages)])
	}
	h := s.History()
	if len(h) != maxHistory {
		t.Fatalf("len(History()) = %d, want %d", len(h), maxHistory)
	}
	if h[len(h)-1] != s.Page() {
		t.Errorf("last history entry = %s, want current page %s", h[len(h)-1], s.Page())
	}
}
