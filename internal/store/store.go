// internal/store/store.go
package store

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Yizi-Yeh/runschedule-manager/internal/ident"
	"github.com/Yizi-Yeh/runschedule-manager/internal/models"
)

// storageKey names the persisted document in the key-value collaborator.
const storageKey = "runschedule_seasons"

// ErrSeasonNotFound is returned by DuplicateSeason when the source id does
// not match any season. All other mutations treat a missing id as a no-op.
var ErrSeasonNotFound = errors.New("season not found")

// Persistence is the external key-value collaborator the store saves its
// state through. Load returns nil data when the key has never been saved.
type Persistence interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// persistedState is the document written after every mutation and read back
// on startup. The current-season pointer is deliberately not persisted.
type persistedState struct {
	Seasons     []models.Season    `json:"seasons"`
	Settings    models.AppSettings `json:"settings"`
	CurrentWeek int                `json:"currentWeek"`
}

// Store is the single source of truth for all season data and settings.
// The season forest is owned exclusively by the store; callers only see
// deep copies and mutate through the operations below.
type Store struct {
	mu sync.RWMutex

	seasons     []models.Season
	currentID   string
	currentWeek int
	settings    models.AppSettings

	persistence Persistence
	now         func() time.Time
}

// NewStore builds a store and hydrates it from the persistence collaborator.
// A missing or unreadable document starts the store empty; persistence
// failures are logged, never surfaced.
func NewStore(p Persistence) *Store {
	s := &Store{
		seasons:     []models.Season{},
		currentWeek: 1,
		settings:    models.DefaultSettings(),
		persistence: p,
		now:         time.Now,
	}

	if p == nil {
		return s
	}

	data, err := p.Load(storageKey)
	if err != nil {
		log.Printf("Failed to load persisted state: %v", err)
		return s
	}
	if data == nil {
		return s
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Persisted state is corrupt, starting empty: %v", err)
		return s
	}
	if state.Seasons != nil {
		s.seasons = state.Seasons
	}
	if state.CurrentWeek >= 1 {
		s.currentWeek = state.CurrentWeek
	}
	s.settings = state.Settings
	if s.settings.Theme == "" {
		s.settings = models.DefaultSettings()
	}
	return s
}

// persist writes the current state through the persistence collaborator.
// Called with the write lock held; fire-and-forget per the save contract.
func (s *Store) persist() {
	if s.persistence == nil {
		return
	}
	data, err := json.Marshal(persistedState{
		Seasons:     s.seasons,
		Settings:    s.settings,
		CurrentWeek: s.currentWeek,
	})
	if err != nil {
		log.Printf("Failed to serialize state: %v", err)
		return
	}
	if err := s.persistence.Save(storageKey, data); err != nil {
		log.Printf("Failed to persist state: %v", err)
	}
}

func (s *Store) findSeason(id string) *models.Season {
	for i := range s.seasons {
		if s.seasons[i].ID == id {
			return &s.seasons[i]
		}
	}
	return nil
}

// currentSeason returns the season the current pointer refers to, or nil.
func (s *Store) currentSeason() *models.Season {
	if s.currentID == "" {
		return nil
	}
	return s.findSeason(s.currentID)
}

// CreateSeason allocates a new season with totalWeeks pre-populated weeks
// and makes it the current season. A non-positive totalWeeks falls back to
// the default of 12.
func (s *Store) CreateSeason(name string, startDate time.Time, totalWeeks int) models.Season {
	s.mu.Lock()
	defer s.mu.Unlock()

	season := models.NewSeason(name, startDate, totalWeeks)
	now := s.now()
	season.CreatedAt = now
	season.UpdatedAt = now

	s.seasons = append(s.seasons, season)
	s.currentID = season.ID
	s.persist()

	return season.Clone()
}

// SeasonUpdate carries a partial season mutation; nil fields are left
// untouched. An empty-string GoogleCalendarID pointer clears the binding.
type SeasonUpdate struct {
	Name               *string
	StartDate          *time.Time
	TotalWeeks         *int
	GoogleCalendarID   *string
	Weeks              []models.WeekTraining
	AuxiliaryTrainings []models.AuxiliaryTraining
	TimePreferences    *models.TimePreferences
	SyncStatus         *models.SyncStatus
}

// UpdateSeason merges the update into the matching season and refreshes its
// updatedAt marker. Missing ids are a silent no-op.
func (s *Store) UpdateSeason(id string, upd SeasonUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season := s.findSeason(id)
	if season == nil {
		return
	}
	if upd.Name != nil {
		season.Name = *upd.Name
	}
	if upd.StartDate != nil {
		season.StartDate = *upd.StartDate
	}
	if upd.TotalWeeks != nil {
		season.TotalWeeks = *upd.TotalWeeks
	}
	if upd.GoogleCalendarID != nil {
		season.GoogleCalendarID = *upd.GoogleCalendarID
	}
	if upd.Weeks != nil {
		season.Weeks = upd.Weeks
	}
	if upd.AuxiliaryTrainings != nil {
		season.AuxiliaryTrainings = upd.AuxiliaryTrainings
	}
	if upd.TimePreferences != nil {
		season.TimePreferences = *upd.TimePreferences
	}
	if upd.SyncStatus != nil {
		status := upd.SyncStatus.Clone()
		season.SyncStatus = &status
	}
	season.UpdatedAt = s.now()
	s.persist()
}

// DeleteSeason removes the season and everything beneath it. If it was
// current, the current-season pointer is cleared.
func (s *Store) DeleteSeason(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.seasons[:0]
	for _, season := range s.seasons {
		if season.ID != id {
			kept = append(kept, season)
		}
	}
	s.seasons = kept
	if s.currentID == id {
		s.currentID = ""
	}
	s.persist()
}

// DuplicateSeason deep-clones the season under newName with fresh ids at
// every level. The copy is appended to the collection; the current-season
// pointer is left alone.
func (s *Store) DuplicateSeason(id, newName string) (models.Season, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source := s.findSeason(id)
	if source == nil {
		return models.Season{}, ErrSeasonNotFound
	}

	clone := source.Clone()
	clone.ID = ident.New()
	clone.Name = newName
	now := s.now()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	for wi := range clone.Weeks {
		clone.Weeks[wi].ID = ident.New()
		reidentifyDays(clone.Weeks[wi].Days)
	}

	s.seasons = append(s.seasons, clone)
	s.persist()

	return clone.Clone(), nil
}

// reidentifyDays walks days and their items, replacing every id with a
// freshly generated one.
func reidentifyDays(days []models.DayTraining) {
	for di := range days {
		days[di].ID = ident.New()
		for ti := range days[di].TrainingItems {
			days[di].TrainingItems[ti].ID = ident.New()
		}
	}
}

// SetCurrentSeason points the store at the season matching id. An empty or
// unmatched id clears the pointer.
func (s *Store) SetCurrentSeason(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.findSeason(id) != nil {
		s.currentID = id
	} else {
		s.currentID = ""
	}
}

// SetCurrentWeek records the viewed week number. Range validation against
// the current season is the caller's responsibility.
func (s *Store) SetCurrentWeek(weekNumber int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentWeek = weekNumber
	s.persist()
}

// CurrentSeason returns a deep copy of the current season, or nil.
func (s *Store) CurrentSeason() *models.Season {
	s.mu.RLock()
	defer s.mu.RUnlock()

	season := s.currentSeason()
	if season == nil {
		return nil
	}
	clone := season.Clone()
	return &clone
}

// CurrentWeek returns the viewed week number.
func (s *Store) CurrentWeek() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentWeek
}

// Seasons returns deep copies of every season.
func (s *Store) Seasons() []models.Season {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Season, 0, len(s.seasons))
	for _, season := range s.seasons {
		out = append(out, season.Clone())
	}
	return out
}

// GetSeason returns a deep copy of the season matching id, or nil.
func (s *Store) GetSeason(id string) *models.Season {
	s.mu.RLock()
	defer s.mu.RUnlock()

	season := s.findSeason(id)
	if season == nil {
		return nil
	}
	clone := season.Clone()
	return &clone
}

// Settings returns the current application settings.
func (s *Store) Settings() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SettingsUpdate carries a partial settings mutation.
type SettingsUpdate struct {
	Theme            *models.Theme
	DefaultSeason    *string
	AutoSave         *bool
	SyncConfirmation *bool
}

// UpdateSettings merges the update into the global settings.
func (s *Store) UpdateSettings(upd SettingsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.Theme != nil {
		s.settings.Theme = *upd.Theme
	}
	if upd.DefaultSeason != nil {
		s.settings.DefaultSeason = *upd.DefaultSeason
	}
	if upd.AutoSave != nil {
		s.settings.AutoSave = *upd.AutoSave
	}
	if upd.SyncConfirmation != nil {
		s.settings.SyncConfirmation = *upd.SyncConfirmation
	}
	s.persist()
}
