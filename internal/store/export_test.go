package store

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Yizi-Yeh/runschedule-manager/internal/models"
)

func populatedStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore()
	season := s.CreateSeason("Spring", mustStartDate(t), 2)
	week := season.Weeks[0]
	day := week.Days[1]
	s.AddTrainingItem(week.ID, day.ID, models.TrainingItem{
		Type:        models.TrainingMain,
		Title:       "節奏跑",
		Description: "T配速訓練",
		Distance:    8,
		Duration:    45,
		Pace:        "T配速",
	})
	dark := models.ThemeDark
	s.UpdateSettings(SettingsUpdate{Theme: &dark})
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	source := populatedStore(t)

	exported, err := source.ExportData()
	if err != nil {
		t.Fatal(err)
	}

	fresh := newTestStore()
	if !fresh.ImportData(exported) {
		t.Fatal("import of exported document failed")
	}

	if diff := cmp.Diff(source.Seasons(), fresh.Seasons()); diff != "" {
		t.Errorf("seasons not reproduced (-source +imported):\n%s", diff)
	}
	if diff := cmp.Diff(source.Settings(), fresh.Settings()); diff != "" {
		t.Errorf("settings not reproduced (-source +imported):\n%s", diff)
	}
	if fresh.CurrentSeason() != nil {
		t.Error("import must clear the current-season pointer")
	}
}

func TestImportInvalidJSON(t *testing.T) {
	s := populatedStore(t)
	seasons := s.Seasons()
	settings := s.Settings()

	if s.ImportData("{not valid json") {
		t.Fatal("invalid JSON must be rejected")
	}

	if diff := cmp.Diff(seasons, s.Seasons()); diff != "" {
		t.Errorf("failed import changed seasons:\n%s", diff)
	}
	if diff := cmp.Diff(settings, s.Settings()); diff != "" {
		t.Errorf("failed import changed settings:\n%s", diff)
	}
}

func TestImportSeasonsNotArray(t *testing.T) {
	s := populatedStore(t)
	seasons := s.Seasons()

	for _, doc := range []string{
		`{"seasons": "not-an-array"}`,
		`{"seasons": null}`,
		`{"seasons": 42}`,
		`{"settings": {}}`,
		`[]`,
	} {
		if s.ImportData(doc) {
			t.Errorf("ImportData(%q) succeeded, want rejection", doc)
		}
	}

	if diff := cmp.Diff(seasons, s.Seasons()); diff != "" {
		t.Errorf("failed imports changed state:\n%s", diff)
	}
}

func TestImportWithoutSettingsFallsBackToDefaults(t *testing.T) {
	s := populatedStore(t)

	if !s.ImportData(`{"seasons": []}`) {
		t.Fatal("import failed")
	}
	if len(s.Seasons()) != 0 {
		t.Error("seasons not replaced")
	}
	if diff := cmp.Diff(models.DefaultSettings(), s.Settings()); diff != "" {
		t.Errorf("settings should fall back to defaults:\n%s", diff)
	}
}

func TestExportIsValidIndentedJSON(t *testing.T) {
	s := populatedStore(t)

	exported, err := s.ExportData()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(exported, `"seasons"`) || !strings.Contains(exported, `"exportDate"`) {
		t.Errorf("export missing expected fields:\n%s", exported)
	}
	if !validateExportedSeasons(exported) {
		t.Error("exported seasons should validate")
	}
}

// validateExportedSeasons checks each exported season passes the
// single-season validation used before file imports.
func validateExportedSeasons(exported string) bool {
	s := newTestStore()
	if !s.ImportData(exported) {
		return false
	}
	for _, season := range s.Seasons() {
		if !season.Validate() {
			return false
		}
	}
	return true
}

func TestExportSeason(t *testing.T) {
	s := populatedStore(t)
	season := s.Seasons()[0]

	data, err := s.ExportSeason(season.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ValidateSeasonData([]byte(data)) {
		t.Error("exported season should validate")
	}

	if _, err := s.ExportSeason("missing"); err != ErrSeasonNotFound {
		t.Errorf("err = %v, want ErrSeasonNotFound", err)
	}
}

func TestValidateSeasonData(t *testing.T) {
	if ValidateSeasonData([]byte(`{`)) {
		t.Error("invalid JSON should not validate")
	}
	if ValidateSeasonData([]byte(`{"id": "x", "name": "y"}`)) {
		t.Error("season missing required fields should not validate")
	}
}
