// internal/store/week.go
package store

import (
	"time"

	"github.com/Yizi-Yeh/runschedule-manager/internal/ident"
	"github.com/Yizi-Yeh/runschedule-manager/internal/models"
)

// Week, day and item operations address entities inside the current season,
// mirroring how the schedule view drives them. A missing current season or
// an unmatched id is a silent no-op; stale ids from the presentation layer
// must never crash the process.

// WeekUpdate carries a partial week mutation.
type WeekUpdate struct {
	Title *string
	Notes *string
	Days  []models.DayTraining
}

// UpdateWeek merges the update into the matching week of the current season
// and refreshes the season's updatedAt marker.
func (s *Store) UpdateWeek(weekID string, upd WeekUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season, week := s.findWeek(weekID)
	if week == nil {
		return
	}
	if upd.Title != nil {
		week.Title = *upd.Title
	}
	if upd.Notes != nil {
		week.Notes = *upd.Notes
	}
	if upd.Days != nil {
		week.Days = upd.Days
	}
	season.UpdatedAt = s.now()
	s.persist()
}

// DuplicateWeek clones the source week's content into the target week of the
// given season. The target keeps its own id and week number; its days and
// items get fresh ids. Missing season or weeks are a silent no-op.
func (s *Store) DuplicateWeek(seasonID string, sourceWeekNumber, targetWeekNumber int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season := s.findSeason(seasonID)
	if season == nil {
		return
	}

	var source, target *models.WeekTraining
	for i := range season.Weeks {
		switch season.Weeks[i].WeekNumber {
		case sourceWeekNumber:
			source = &season.Weeks[i]
		case targetWeekNumber:
			target = &season.Weeks[i]
		}
	}
	if source == nil || target == nil {
		return
	}

	cloned := source.Clone()
	reidentifyDays(cloned.Days)
	target.Title = source.Title
	target.Notes = source.Notes
	target.Days = cloned.Days

	season.UpdatedAt = s.now()
	s.persist()
}

// DayUpdate carries a partial day mutation. ClearDate removes a previously
// set date.
type DayUpdate struct {
	Date       *time.Time
	ClearDate  bool
	IsFlexible *bool
	TimeSlot   *models.TimeSlot
	CustomTime *string
	Notes      *string
}

// UpdateDay merges the update into the matching day of the current season.
func (s *Store) UpdateDay(weekID, dayID string, upd DayUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season, day := s.findDay(weekID, dayID)
	if day == nil {
		return
	}
	if upd.Date != nil {
		date := *upd.Date
		day.Date = &date
	}
	if upd.ClearDate {
		day.Date = nil
	}
	if upd.IsFlexible != nil {
		day.IsFlexible = *upd.IsFlexible
	}
	if upd.TimeSlot != nil {
		day.TimeSlot = *upd.TimeSlot
	}
	if upd.CustomTime != nil {
		day.CustomTime = *upd.CustomTime
	}
	if upd.Notes != nil {
		day.Notes = *upd.Notes
	}
	season.UpdatedAt = s.now()
	s.persist()
}

// AddTrainingItem appends the item to the day's sequence with a fresh id,
// whatever id the caller supplied.
func (s *Store) AddTrainingItem(weekID, dayID string, item models.TrainingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season, day := s.findDay(weekID, dayID)
	if day == nil {
		return
	}
	item.ID = ident.New()
	day.TrainingItems = append(day.TrainingItems, item)
	season.UpdatedAt = s.now()
	s.persist()
}

// ItemUpdate carries a partial training-item mutation.
type ItemUpdate struct {
	Type        *models.TrainingType
	Title       *string
	Description *string
	Distance    *float64
	Duration    *int
	Pace        *string
	Sets        *int
	Rest        *int
	Notes       *string
}

// UpdateTrainingItem merges the update into the matching item.
func (s *Store) UpdateTrainingItem(weekID, dayID, itemID string, upd ItemUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season, day := s.findDay(weekID, dayID)
	if day == nil {
		return
	}
	for i := range day.TrainingItems {
		if day.TrainingItems[i].ID != itemID {
			continue
		}
		item := &day.TrainingItems[i]
		if upd.Type != nil {
			item.Type = *upd.Type
		}
		if upd.Title != nil {
			item.Title = *upd.Title
		}
		if upd.Description != nil {
			item.Description = *upd.Description
		}
		if upd.Distance != nil {
			item.Distance = *upd.Distance
		}
		if upd.Duration != nil {
			item.Duration = *upd.Duration
		}
		if upd.Pace != nil {
			item.Pace = *upd.Pace
		}
		if upd.Sets != nil {
			item.Sets = *upd.Sets
		}
		if upd.Rest != nil {
			item.Rest = *upd.Rest
		}
		if upd.Notes != nil {
			item.Notes = *upd.Notes
		}
		season.UpdatedAt = s.now()
		s.persist()
		return
	}
}

// DeleteTrainingItem removes the matching item from the day's sequence.
func (s *Store) DeleteTrainingItem(weekID, dayID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season, day := s.findDay(weekID, dayID)
	if day == nil {
		return
	}
	kept := day.TrainingItems[:0]
	removed := false
	for _, item := range day.TrainingItems {
		if item.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	day.TrainingItems = kept
	if !removed {
		return
	}
	season.UpdatedAt = s.now()
	s.persist()
}

// ReorderTrainingItems rebuilds the day's item sequence to match itemIDs.
// Ids absent from the list are dropped; that is intentional truncation,
// not an error.
func (s *Store) ReorderTrainingItems(weekID, dayID string, itemIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season, day := s.findDay(weekID, dayID)
	if day == nil {
		return
	}
	byID := make(map[string]models.TrainingItem, len(day.TrainingItems))
	for _, item := range day.TrainingItems {
		byID[item.ID] = item
	}
	reordered := make([]models.TrainingItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		if item, ok := byID[id]; ok {
			reordered = append(reordered, item)
		}
	}
	day.TrainingItems = reordered
	season.UpdatedAt = s.now()
	s.persist()
}

// findWeek locates a week by id within the current season. Both returns are
// nil when there is no current season or no matching week.
func (s *Store) findWeek(weekID string) (*models.Season, *models.WeekTraining) {
	season := s.currentSeason()
	if season == nil {
		return nil, nil
	}
	for i := range season.Weeks {
		if season.Weeks[i].ID == weekID {
			return season, &season.Weeks[i]
		}
	}
	return nil, nil
}

// findDay locates a day by week and day id within the current season.
func (s *Store) findDay(weekID, dayID string) (*models.Season, *models.DayTraining) {
	season, week := s.findWeek(weekID)
	if week == nil {
		return nil, nil
	}
	for i := range week.Days {
		if week.Days[i].ID == dayID {
			return season, &week.Days[i]
		}
	}
	return nil, nil
}
