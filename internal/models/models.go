// internal/models/models.go
package models

import "time"

type TrainingType string

const (
	TrainingWarmup   TrainingType = "warmup"
	TrainingMain     TrainingType = "main"
	TrainingCooldown TrainingType = "cooldown"
)

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// TrainingItem is one scheduled workout segment. Distance is in kilometers,
// Duration in minutes, Rest in seconds. All metrics are optional; zero means
// the field was not recognized or not set.
type TrainingItem struct {
	ID          string       `json:"id"`
	Type        TrainingType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Distance    float64      `json:"distance,omitempty"`
	Duration    int          `json:"duration,omitempty"`
	Pace        string       `json:"pace,omitempty"`
	Sets        int          `json:"sets,omitempty"`
	Rest        int          `json:"rest,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// DayTraining is one weekday slot. DayOfWeek is 0-6 with 0=Sunday.
type DayTraining struct {
	ID            string         `json:"id"`
	DayOfWeek     int            `json:"dayOfWeek"`
	Date          *time.Time     `json:"date,omitempty"`
	IsFlexible    bool           `json:"isFlexible,omitempty"`
	TimeSlot      TimeSlot       `json:"timeSlot,omitempty"`
	CustomTime    string         `json:"customTime,omitempty"` // "HH:MM"
	TrainingItems []TrainingItem `json:"trainingItems"`
	Notes         string         `json:"notes,omitempty"`
}

// WeekTraining always carries exactly 7 days, one per dayOfWeek value.
type WeekTraining struct {
	ID         string        `json:"id"`
	WeekNumber int           `json:"weekNumber"`
	Title      string        `json:"title,omitempty"`
	Days       []DayTraining `json:"days"`
	Notes      string        `json:"notes,omitempty"`
}

type AuxiliaryTraining struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	Category    string `json:"category"`
}

type CustomTimes struct {
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

type EstimatedDuration struct {
	Warmup   int `json:"warmup"`
	Main     int `json:"main"`
	Cooldown int `json:"cooldown"`
}

type TimePreferences struct {
	DefaultTimeSlot   TimeSlot          `json:"defaultTimeSlot"`
	CustomTimes       CustomTimes       `json:"customTimes"`
	DaySpecificTimes  map[int]string    `json:"daySpecificTimes,omitempty"`
	EstimatedDuration EstimatedDuration `json:"estimatedDuration"`
}

// SyncStatus records per-week calendar sync bookkeeping for a season.
type SyncStatus struct {
	LastSyncDate *time.Time `json:"lastSyncDate,omitempty"`
	SyncedWeeks  []int      `json:"syncedWeeks"`
	PendingWeeks []int      `json:"pendingWeeks"`
	FailedWeeks  []int      `json:"failedWeeks"`
	IsSyncing    bool       `json:"isSyncing"`
}

// Season is the top-level entity: a multi-week training program. Weeks are
// created eagerly at construction, numbered 1..TotalWeeks.
type Season struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	StartDate          time.Time           `json:"startDate"`
	TotalWeeks         int                 `json:"totalWeeks"`
	GoogleCalendarID   string              `json:"googleCalendarId,omitempty"`
	Weeks              []WeekTraining      `json:"weeks"`
	AuxiliaryTrainings []AuxiliaryTraining `json:"auxiliaryTrainings"`
	TimePreferences    TimePreferences     `json:"timePreferences"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	SyncStatus         *SyncStatus         `json:"syncStatus,omitempty"`
}

type AppSettings struct {
	Theme            Theme  `json:"theme"`
	DefaultSeason    string `json:"defaultSeason,omitempty"`
	AutoSave         bool   `json:"autoSave"`
	SyncConfirmation bool   `json:"syncConfirmation"`
}

// ParsedDayData and ParsedWeekData carry text-parser output toward a season:
// items have no ids yet, those are assigned when the import is committed.
type ParsedDayData struct {
	DayOfWeek     int            `json:"dayOfWeek"`
	TrainingItems []TrainingItem `json:"trainingItems"`
}

type ParsedWeekData struct {
	WeekNumber int             `json:"weekNumber"`
	Days       []ParsedDayData `json:"days"`
}
