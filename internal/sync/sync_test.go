package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Yizi-Yeh/runschedule-manager/internal/models"
	"github.com/Yizi-Yeh/runschedule-manager/internal/store"
)

// recordingProvider counts pushes and fails the week numbers it is told to.
type recordingProvider struct {
	pushed    []int
	failWeeks map[int]bool
}

func (p *recordingProvider) PushWeek(ctx context.Context, calendarID string, season models.Season, week models.WeekTraining) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.pushed = append(p.pushed, week.WeekNumber)
	if p.failWeeks[week.WeekNumber] {
		return errors.New("calendar rejected week")
	}
	return nil
}

func connectedSeason(t *testing.T, st *store.Store, totalWeeks int) models.Season {
	t.Helper()
	season := st.CreateSeason("Spring", time.Now(), totalWeeks)
	calendarID := "runner@example.com"
	st.UpdateSeason(season.ID, store.SeasonUpdate{GoogleCalendarID: &calendarID})
	return season
}

func TestSyncSeason(t *testing.T) {
	st := store.NewStore(nil)
	season := connectedSeason(t, st, 3)
	provider := &recordingProvider{}
	svc := NewSyncService(st, provider)

	if err := svc.SyncSeason(context.Background(), season.ID); err != nil {
		t.Fatal(err)
	}

	if len(provider.pushed) != 3 {
		t.Errorf("pushed %v, want all 3 weeks", provider.pushed)
	}

	status := st.GetSeason(season.ID).SyncStatus
	if status == nil {
		t.Fatal("sync status not recorded")
	}
	if status.IsSyncing {
		t.Error("isSyncing still set after completion")
	}
	if len(status.SyncedWeeks) != 3 || len(status.PendingWeeks) != 0 || len(status.FailedWeeks) != 0 {
		t.Errorf("status = %+v", status)
	}
	if status.LastSyncDate == nil {
		t.Error("lastSyncDate not set")
	}
}

func TestSyncSeasonRecordsFailedWeeks(t *testing.T) {
	st := store.NewStore(nil)
	season := connectedSeason(t, st, 3)
	provider := &recordingProvider{failWeeks: map[int]bool{2: true}}
	svc := NewSyncService(st, provider)

	if err := svc.SyncSeason(context.Background(), season.ID); err != nil {
		t.Fatal(err)
	}

	status := st.GetSeason(season.ID).SyncStatus
	if len(status.SyncedWeeks) != 2 {
		t.Errorf("syncedWeeks = %v", status.SyncedWeeks)
	}
	if len(status.FailedWeeks) != 1 || status.FailedWeeks[0] != 2 {
		t.Errorf("failedWeeks = %v", status.FailedWeeks)
	}
}

func TestSyncSeasonHonorsCancellation(t *testing.T) {
	st := store.NewStore(nil)
	season := connectedSeason(t, st, 5)
	provider := &recordingProvider{}
	svc := NewSyncService(st, provider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.SyncSeason(ctx, season.ID); err == nil {
		t.Fatal("cancelled sync should return an error")
	}

	status := st.GetSeason(season.ID).SyncStatus
	if status.IsSyncing {
		t.Error("isSyncing should be cleared after an aborted sync")
	}
	if len(provider.pushed) != 0 {
		t.Errorf("no weeks should be pushed after cancellation, got %v", provider.pushed)
	}
}

func TestSyncSeasonRequiresConnection(t *testing.T) {
	st := store.NewStore(nil)
	season := st.CreateSeason("Spring", time.Now(), 2)
	svc := NewSyncService(st, &recordingProvider{})

	if err := svc.SyncSeason(context.Background(), season.ID); err == nil {
		t.Error("sync without a calendar binding should fail")
	}
	if err := svc.SyncSeason(context.Background(), "missing"); err == nil {
		t.Error("sync of a missing season should fail")
	}
}

func TestConnectAndDisconnect(t *testing.T) {
	st := store.NewStore(nil)
	season := st.CreateSeason("Spring", time.Now(), 1)
	svc := NewSyncService(st, &recordingProvider{})

	svc.Connect(season.ID, "runner@example.com")
	if got := st.GetSeason(season.ID).GoogleCalendarID; got != "runner@example.com" {
		t.Errorf("calendar id = %q", got)
	}

	svc.Disconnect(season.ID)
	if got := st.GetSeason(season.ID).GoogleCalendarID; got != "" {
		t.Errorf("calendar id not cleared: %q", got)
	}
}
