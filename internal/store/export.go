// internal/store/export.go
package store

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/Yizi-Yeh/runschedule-manager/internal/ident"
	"github.com/Yizi-Yeh/runschedule-manager/internal/models"
	"github.com/Yizi-Yeh/runschedule-manager/internal/parser"
)

// exportDocument is the backup format produced by ExportData and accepted by
// ImportData. ExportDate is informational only and ignored on import.
type exportDocument struct {
	Seasons    []models.Season    `json:"seasons"`
	Settings   models.AppSettings `json:"settings"`
	ExportDate time.Time          `json:"exportDate"`
}

// importDocument defers decoding of the seasons field so a missing or
// non-array value can be rejected without touching store state.
type importDocument struct {
	Seasons  json.RawMessage     `json:"seasons"`
	Settings *models.AppSettings `json:"settings"`
}

// ExportData serializes the full store state as an indented JSON backup.
func (s *Store) ExportData() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(exportDocument{
		Seasons:    s.seasons,
		Settings:   s.settings,
		ExportDate: s.now(),
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportData replaces the seasons collection and settings from a backup
// document. It reports false, leaving the store untouched, when the text is
// not valid JSON or the seasons field is missing or not an array. A missing
// settings section falls back to defaults. The current-season pointer is
// cleared on success.
func (s *Store) ImportData(data string) bool {
	var doc importDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return false
	}

	raw := bytes.TrimSpace(doc.Seasons)
	if len(raw) == 0 || raw[0] != '[' {
		return false
	}
	var seasons []models.Season
	if err := json.Unmarshal(raw, &seasons); err != nil {
		return false
	}
	if seasons == nil {
		seasons = []models.Season{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seasons = seasons
	if doc.Settings != nil {
		s.settings = *doc.Settings
	} else {
		s.settings = models.DefaultSettings()
	}
	s.currentID = ""
	s.persist()
	return true
}

// ClearAllData resets the store to its initial state. Callers wanting to
// keep anything must export first.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seasons = []models.Season{}
	s.currentID = ""
	s.currentWeek = 1
	s.settings = models.DefaultSettings()
	s.persist()
}

// ExportSeason serializes a single season as indented JSON.
func (s *Store) ExportSeason(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	season := s.findSeason(id)
	if season == nil {
		return "", ErrSeasonNotFound
	}
	data, err := json.MarshalIndent(season, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ValidateSeasonData reports whether the bytes decode to a season carrying
// every required field. Used as a dry-run check before a file import.
func ValidateSeasonData(data []byte) bool {
	var season models.Season
	if err := json.Unmarshal(data, &season); err != nil {
		return false
	}
	return season.Validate()
}

// ImportTrainingText parses free-form schedule text and commits the result
// into the current season: for every recognized week present in the season,
// the matching days' item lists are replaced with freshly-id'd items.
// It returns the number of weeks recognized, and false when there is no
// current season to import into.
func (s *Store) ImportTrainingText(text string) (int, bool) {
	weeks := parser.ToWeekData(parser.ParseTrainingText(text))

	s.mu.Lock()
	defer s.mu.Unlock()

	season := s.currentSeason()
	if season == nil {
		return 0, false
	}
	if len(weeks) == 0 {
		return 0, true
	}

	for _, parsed := range weeks {
		week := weekByNumber(season, parsed.WeekNumber)
		if week == nil {
			continue
		}
		for _, day := range parsed.Days {
			target := dayByNumber(week, day.DayOfWeek)
			if target == nil {
				continue
			}
			items := make([]models.TrainingItem, 0, len(day.TrainingItems))
			for _, item := range day.TrainingItems {
				item.ID = ident.New()
				items = append(items, item)
			}
			target.TrainingItems = items
		}
	}

	season.UpdatedAt = s.now()
	s.persist()
	return len(weeks), true
}

func weekByNumber(season *models.Season, weekNumber int) *models.WeekTraining {
	for i := range season.Weeks {
		if season.Weeks[i].WeekNumber == weekNumber {
			return &season.Weeks[i]
		}
	}
	return nil
}

func dayByNumber(week *models.WeekTraining, dayOfWeek int) *models.DayTraining {
	for i := range week.Days {
		if week.Days[i].DayOfWeek == dayOfWeek {
			return &week.Days[i]
		}
	}
	return nil
}
