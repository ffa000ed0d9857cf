package stubserver

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture_OverridesAndDefaults(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, `
description: Demo service
predictions:
  HOBBIES_1_001|WI_1: 42
  FOODS_3_090: 7.5
fail:
  /sales/national/: 503
`)

	fx, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if fx.Description != "Demo service" {
		t.Fatalf("description = %q", fx.Description)
	}
	if fx.RepoLink != repoLink {
		t.Fatalf("repo link = %q, want default", fx.RepoLink)
	}
	if fx.NationalBaseline != defaultBaseline {
		t.Fatalf("baseline = %v, want default", fx.NationalBaseline)
	}
	if v, ok := fx.prediction("hobbies_1_001", "wi_1"); !ok || v != 42 {
		t.Fatalf("prediction(item|store) = %v, %v; want 42", v, ok)
	}
	if v, ok := fx.prediction("FOODS_3_090", "CA_1"); !ok || v != 7.5 {
		t.Fatalf("prediction(item) = %v, %v; want 7.5", v, ok)
	}
	if _, ok := fx.prediction("HOUSEHOLD_1_001", "WI_1"); ok {
		t.Fatal("unexpected prediction for unlisted item")
	}
}

func TestLoadFixture_EmptyFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	fx, err := LoadFixture(writeFixture(t, ""))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if fx.Description != description {
		t.Fatalf("description = %q, want default", fx.Description)
	}
}

func TestLoadFixture_Rejects(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown key":    "colour: blue\n",
		"bad baseline":   "national_baseline: -1\n",
		"success status": "fail:\n  /: 200\n",
		"not yaml":       "predictions: [1, 2\n",
	}
	for name, body := range tests {
		if _, err := LoadFixture(writeFixture(t, body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestServer_UsesFixture(t *testing.T) {
	t.Parallel()

	srv := NewServer("", nil)
	srv.UseFixture(Fixture{
		Description:      "Fixture description",
		RepoLink:         "https://example.com/repo",
		NationalBaseline: 1000,
		Predictions:      map[string]float64{"HOBBIES_1_001|WI_1": 42},
		Fail:             map[string]int{"/health": http.StatusServiceUnavailable},
	})
	h := srv.Handler()

	root := get(t, h, "/")
	if got := gjson.GetBytes(root.Body.Bytes(), "github_repo_link").String(); got != "https://example.com/repo" {
		t.Fatalf("repo link = %q", got)
	}

	pred := get(t, h, "/sales/stores/items/?item_id=HOBBIES_1_001&store_id=WI_1&date=2024-01-15")
	if got := gjson.GetBytes(pred.Body.Bytes(), "prediction").Num; got != 42 {
		t.Fatalf("prediction = %v, want 42", got)
	}

	nat := get(t, h, "/sales/national/?date=2024-01-15")
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if got, want := gjson.GetBytes(nat.Body.Bytes(), "2024-01-15").Num, nationalVolume(1000, day); got != want {
		t.Fatalf("national volume = %v, want %v", got, want)
	}

	if w := get(t, h, "/health"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("health status = %d, want 503", w.Code)
	}
}
