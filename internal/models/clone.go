// internal/models/clone.go
package models

// Clone returns a deep copy of the item.
func (t TrainingItem) Clone() TrainingItem {
	return t
}

// Clone returns a deep copy of the day, including its item sequence.
func (d DayTraining) Clone() DayTraining {
	out := d
	if d.Date != nil {
		date := *d.Date
		out.Date = &date
	}
	out.TrainingItems = make([]TrainingItem, len(d.TrainingItems))
	copy(out.TrainingItems, d.TrainingItems)
	return out
}

// Clone returns a deep copy of the week and all days beneath it.
func (w WeekTraining) Clone() WeekTraining {
	out := w
	out.Days = make([]DayTraining, 0, len(w.Days))
	for _, d := range w.Days {
		out.Days = append(out.Days, d.Clone())
	}
	return out
}

// Clone returns a deep copy of the sync status.
func (st SyncStatus) Clone() SyncStatus {
	out := st
	if st.LastSyncDate != nil {
		date := *st.LastSyncDate
		out.LastSyncDate = &date
	}
	out.SyncedWeeks = append([]int(nil), st.SyncedWeeks...)
	out.PendingWeeks = append([]int(nil), st.PendingWeeks...)
	out.FailedWeeks = append([]int(nil), st.FailedWeeks...)
	return out
}

// Clone returns a deep copy of the whole season subtree. Identifiers are
// copied verbatim; duplication with fresh ids happens in the store.
func (s Season) Clone() Season {
	out := s
	out.Weeks = make([]WeekTraining, 0, len(s.Weeks))
	for _, w := range s.Weeks {
		out.Weeks = append(out.Weeks, w.Clone())
	}
	out.AuxiliaryTrainings = append([]AuxiliaryTraining(nil), s.AuxiliaryTrainings...)
	if s.TimePreferences.DaySpecificTimes != nil {
		times := make(map[int]string, len(s.TimePreferences.DaySpecificTimes))
		for k, v := range s.TimePreferences.DaySpecificTimes {
			times[k] = v
		}
		out.TimePreferences.DaySpecificTimes = times
	}
	if s.SyncStatus != nil {
		st := s.SyncStatus.Clone()
		out.SyncStatus = &st
	}
	return out
}
