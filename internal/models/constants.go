// internal/models/constants.go
package models

// DefaultTotalWeeks is used when a season is created without a week count.
const DefaultTotalWeeks = 12

type DayOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Short string `json:"short"`
}

var DaysOfWeek = []DayOption{
	{Value: 0, Label: "週日", Short: "日"},
	{Value: 1, Label: "週一", Short: "一"},
	{Value: 2, Label: "週二", Short: "二"},
	{Value: 3, Label: "週三", Short: "三"},
	{Value: 4, Label: "週四", Short: "四"},
	{Value: 5, Label: "週五", Short: "五"},
	{Value: 6, Label: "週六", Short: "六"},
}

type TimeSlotOption struct {
	Value       TimeSlot `json:"value"`
	Label       string   `json:"label"`
	DefaultTime string   `json:"defaultTime"`
}

var TimeSlots = []TimeSlotOption{
	{Value: SlotMorning, Label: "早上", DefaultTime: "07:00"},
	{Value: SlotAfternoon, Label: "下午", DefaultTime: "14:00"},
	{Value: SlotEvening, Label: "晚上", DefaultTime: "18:00"},
}

type TrainingTypeOption struct {
	Value TrainingType `json:"value"`
	Label string       `json:"label"`
	Color string       `json:"color"`
}

var TrainingTypes = []TrainingTypeOption{
	{Value: TrainingWarmup, Label: "暖身", Color: "#4CAF50"},
	{Value: TrainingMain, Label: "主訓練", Color: "#2196F3"},
	{Value: TrainingCooldown, Label: "收操", Color: "#FF9800"},
}

// PaceZone is a named training-intensity label. It is a free-text tag on
// training items, not a computed value.
type PaceZone struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var PaceZones = []PaceZone{
	{Name: "E配速", Description: "輕鬆跑", Color: "#4CAF50"},
	{Name: "M配速", Description: "馬拉松配速", Color: "#2196F3"},
	{Name: "T配速", Description: "節奏跑", Color: "#FF9800"},
	{Name: "I配速", Description: "間歇跑", Color: "#F44336"},
	{Name: "R配速", Description: "重複跑", Color: "#9C27B0"},
}

// CommonTrainingTemplates are starting points offered when adding an item.
// They carry no ids; a fresh id is assigned when one lands in a day.
var CommonTrainingTemplates = []TrainingItem{
	{Type: TrainingWarmup, Title: "標準暖身", Description: "輕鬆跑 + 動態熱身", Distance: 1.5, Duration: 15},
	{Type: TrainingMain, Title: "輕鬆跑", Description: "E配速持續跑", Pace: "E配速"},
	{Type: TrainingMain, Title: "節奏跑", Description: "T配速訓練", Pace: "T配速"},
	{Type: TrainingMain, Title: "間歇訓練", Description: "I配速間歇跑", Pace: "I配速", Sets: 6, Rest: 90},
	{Type: TrainingCooldown, Title: "標準收操", Description: "輕鬆跑 + 伸展", Distance: 1, Duration: 10},
}

// DefaultTimePreferences returns the time preferences a new season starts with.
func DefaultTimePreferences() TimePreferences {
	return TimePreferences{
		DefaultTimeSlot: SlotMorning,
		CustomTimes: CustomTimes{
			Morning:   "07:00",
			Afternoon: "14:00",
			Evening:   "18:00",
		},
		EstimatedDuration: EstimatedDuration{
			Warmup:   15,
			Main:     60,
			Cooldown: 10,
		},
	}
}

// DefaultSettings returns the process-wide settings used until the user
// changes them, and after a full data reset.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:            ThemeLight,
		AutoSave:         true,
		SyncConfirmation: true,
	}
}
