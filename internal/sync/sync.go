package sync

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Yizi-Yeh/runschedule-manager/internal/models"
	"github.com/Yizi-Yeh/runschedule-manager/internal/store"
)

// CalendarProvider pushes one week of trainings to an external calendar.
type CalendarProvider interface {
	PushWeek(ctx context.Context, calendarID string, season models.Season, week models.WeekTraining) error
}

// SimulatedProvider stands in for a real calendar backend: it waits a fixed
// delay per week and always succeeds. The real Google Calendar protocol is
// out of scope.
type SimulatedProvider struct {
	Delay time.Duration
}

func (p *SimulatedProvider) PushWeek(ctx context.Context, calendarID string, season models.Season, week models.WeekTraining) error {
	delay := p.Delay
	if delay == 0 {
		delay = 200 * time.Millisecond
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// SyncService walks a season's weeks, pushes each to the calendar provider
// and records per-week results in the season's sync status.
type SyncService struct {
	store    *store.Store
	provider CalendarProvider
}

func NewSyncService(st *store.Store, provider CalendarProvider) *SyncService {
	return &SyncService{
		store:    st,
		provider: provider,
	}
}

// Connect binds the season to a calendar id.
func (s *SyncService) Connect(seasonID, calendarID string) {
	s.store.UpdateSeason(seasonID, store.SeasonUpdate{GoogleCalendarID: &calendarID})
}

// Disconnect clears the season's calendar binding.
func (s *SyncService) Disconnect(seasonID string) {
	empty := ""
	s.store.UpdateSeason(seasonID, store.SeasonUpdate{GoogleCalendarID: &empty})
}

// SyncSeason pushes every week of the season to the calendar, updating the
// season's sync status as it goes. A week that fails is recorded and the
// sync moves on; context cancellation aborts the run.
func (s *SyncService) SyncSeason(ctx context.Context, seasonID string) error {
	season := s.store.GetSeason(seasonID)
	if season == nil {
		return fmt.Errorf("season %s not found", seasonID)
	}
	if season.GoogleCalendarID == "" {
		return fmt.Errorf("season %s has no calendar connected", seasonID)
	}

	startTime := time.Now()
	log.Printf("Starting calendar sync for season %q (%d weeks)", season.Name, len(season.Weeks))
	defer func() {
		log.Printf("Calendar sync for season %q completed in %s", season.Name, time.Since(startTime))
	}()

	status := models.SyncStatus{
		SyncedWeeks:  []int{},
		PendingWeeks: []int{},
		FailedWeeks:  []int{},
		IsSyncing:    true,
	}
	for _, week := range season.Weeks {
		status.PendingWeeks = append(status.PendingWeeks, week.WeekNumber)
	}
	s.store.UpdateSeason(seasonID, store.SeasonUpdate{SyncStatus: &status})

	for i, week := range season.Weeks {
		log.Printf("[%d/%d] Syncing week %d...", i+1, len(season.Weeks), week.WeekNumber)

		err := s.provider.PushWeek(ctx, season.GoogleCalendarID, *season, week)
		status.PendingWeeks = removeWeek(status.PendingWeeks, week.WeekNumber)
		if err != nil {
			status.FailedWeeks = append(status.FailedWeeks, week.WeekNumber)
			log.Printf("Error syncing week %d: %v", week.WeekNumber, err)
			if ctx.Err() != nil {
				s.finish(seasonID, &status)
				return ctx.Err()
			}
			// Continue with the next week on provider errors.
			continue
		}
		status.SyncedWeeks = append(status.SyncedWeeks, week.WeekNumber)
		s.store.UpdateSeason(seasonID, store.SeasonUpdate{SyncStatus: &status})
	}

	s.finish(seasonID, &status)
	return nil
}

func (s *SyncService) finish(seasonID string, status *models.SyncStatus) {
	now := time.Now()
	status.IsSyncing = false
	status.LastSyncDate = &now
	s.store.UpdateSeason(seasonID, store.SeasonUpdate{SyncStatus: status})
}

func removeWeek(weeks []int, weekNumber int) []int {
	kept := weeks[:0]
	for _, w := range weeks {
		if w != weekNumber {
			kept = append(kept, w)
		}
	}
	return kept
}
