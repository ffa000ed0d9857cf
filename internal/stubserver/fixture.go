package stubserver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultBaseline = 31250.0

// Fixture controls the canned responses of the stub.
type Fixture struct {
	Description      string             `yaml:"description"`
	RepoLink         string             `yaml:"github_repo_link"`
	NationalBaseline float64            `yaml:"national_baseline"`
	Predictions      map[string]float64 `yaml:"predictions"` // "ITEM|STORE" or "ITEM"
	Fail             map[string]int     `yaml:"fail"`        // path -> status code
}

// DefaultFixture returns the built-in responses.
func DefaultFixture() Fixture {
	return Fixture{
		Description:      description,
		RepoLink:         repoLink,
		NationalBaseline: defaultBaseline,
	}
}

// LoadFixture reads a YAML fixture file. Fields left out keep their
// defaults; unknown keys are rejected.
func LoadFixture(path string) (Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fixture{}, err
	}
	defer f.Close()

	fx := DefaultFixture()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return Fixture{}, fmt.Errorf("stubserver: parse fixture %s: %w", path, err)
	}
	if err := fx.validate(); err != nil {
		return Fixture{}, fmt.Errorf("stubserver: fixture %s: %w", path, err)
	}
	return fx, nil
}

func (f Fixture) validate() error {
	if f.NationalBaseline <= 0 {
		return fmt.Errorf("national_baseline must be positive, got %v", f.NationalBaseline)
	}
	for path, code := range f.Fail {
		if code < 400 || code > 599 {
			return fmt.Errorf("fail[%s]: status %d is not an error status", path, code)
		}
	}
	return nil
}

// prediction returns the fixed volume for item/store, if the fixture has one.
// An exact "ITEM|STORE" entry wins over an item-wide one.
func (f Fixture) prediction(itemID, storeID string) (float64, bool) {
	item := strings.ToUpper(itemID)
	if v, ok := f.Predictions[item+"|"+strings.ToUpper(storeID)]; ok {
		return v, true
	}
	v, ok := f.Predictions[item]
	return v, ok
}
