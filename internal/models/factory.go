// internal/models/factory.go
package models

import (
	"time"

	"github.com/Yizi-Yeh/runschedule-manager/internal/ident"
)

// NewDayTraining returns an empty day slot with a fresh id.
func NewDayTraining(dayOfWeek int) DayTraining {
	return DayTraining{
		ID:            ident.New(),
		DayOfWeek:     dayOfWeek,
		TrainingItems: []TrainingItem{},
	}
}

// NewWeekTraining returns a week pre-populated with 7 empty days,
// one per dayOfWeek value 0-6.
func NewWeekTraining(weekNumber int) WeekTraining {
	days := make([]DayTraining, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, NewDayTraining(i))
	}
	return WeekTraining{
		ID:         ident.New(),
		WeekNumber: weekNumber,
		Days:       days,
	}
}

// NewSeason builds a season with totalWeeks weeks numbered 1..totalWeeks,
// each holding 7 empty days. Weeks are never created lazily.
func NewSeason(name string, startDate time.Time, totalWeeks int) Season {
	if totalWeeks < 1 {
		totalWeeks = DefaultTotalWeeks
	}
	weeks := make([]WeekTraining, 0, totalWeeks)
	for i := 1; i <= totalWeeks; i++ {
		weeks = append(weeks, NewWeekTraining(i))
	}
	now := time.Now()
	return Season{
		ID:                 ident.New(),
		Name:               name,
		StartDate:          startDate,
		TotalWeeks:         totalWeeks,
		Weeks:              weeks,
		AuxiliaryTrainings: []AuxiliaryTraining{},
		TimePreferences:    DefaultTimePreferences(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
