package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Yizi-Yeh/runschedule-manager/internal/models"
)

func TestParseTrainingText(t *testing.T) {
	text := "W1\n週一\n5公里輕鬆跑 E配速\n週二\n休息"

	got := ParseTrainingText(text)

	want := map[int]map[int][]models.TrainingItem{
		1: {
			1: {
				{
					Type:        models.TrainingMain,
					Title:       "5公里輕鬆跑 E配速",
					Description: "5公里輕鬆跑 E配速",
					Distance:    5,
					Pace:        "E配速",
				},
			},
			2: {
				{
					Type:        models.TrainingMain,
					Title:       "休息",
					Description: "休息",
				},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseTrainingText mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWeekMarkerVariants(t *testing.T) {
	for _, text := range []string{"W3\n週一\n慢跑", "w3\n週一\n慢跑", "第3週\n週一\n慢跑", "週3\n週一\n慢跑"} {
		got := ParseTrainingText(text)
		if _, ok := got[3]; !ok {
			t.Errorf("week 3 not recognized in %q, got %v", text, got)
		}
	}
}

func TestParseDayMarkerVariants(t *testing.T) {
	got := ParseTrainingText("W1\n週一\n慢跑\n星期三\n慢跑\n日\n慢跑")

	for _, day := range []int{1, 3, 0} {
		if len(got[1][day]) != 1 {
			t.Errorf("day %d: want 1 item, got %v", day, got[1][day])
		}
	}
}

func TestParseEmptyAndUnstructuredInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n  ", "random notes\nmore notes"} {
		got := ParseTrainingText(text)
		if len(got) != 0 {
			t.Errorf("ParseTrainingText(%q) = %v, want empty", text, got)
		}
	}
}

func TestParseIgnoresLinesBeforeWeekMarker(t *testing.T) {
	got := ParseTrainingText("教練備註\n週一\n慢跑\nW1\n週二\n慢跑")

	if len(got) != 1 {
		t.Fatalf("want 1 week, got %v", got)
	}
	if len(got[1]) != 1 || len(got[1][2]) != 1 {
		t.Errorf("want only week 1 day 2, got %v", got[1])
	}
}

func TestParseIgnoresTrainingLinesBeforeDayMarker(t *testing.T) {
	got := ParseTrainingText("W1\n慢跑 without a day\n週五\n慢跑")

	if len(got[1]) != 1 {
		t.Fatalf("want only day 5, got %v", got[1])
	}
	if len(got[1][5]) != 1 {
		t.Errorf("want 1 item on day 5, got %v", got[1][5])
	}
}

func TestParseDeterministic(t *testing.T) {
	text := "W1\n週一\n暖身慢跑10分鐘\n間歇訓練 400公尺 8趟\n週六\n長距離20公里"

	first := ParseTrainingText(text)
	second := ParseTrainingText(text)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated parse differs (-first +second):\n%s", diff)
	}
}

func TestParseTrainingLineFields(t *testing.T) {
	tests := []struct {
		line string
		want models.TrainingItem
	}{
		{
			line: "暖身慢跑10分鐘",
			want: models.TrainingItem{Type: models.TrainingWarmup, Duration: 10},
		},
		{
			line: "伸展放鬆15分",
			want: models.TrainingItem{Type: models.TrainingCooldown, Duration: 15},
		},
		{
			line: "10.5km 節奏跑",
			want: models.TrainingItem{Type: models.TrainingMain, Distance: 10.5, Pace: "節奏"},
		},
		{
			line: "I配速 1公里 6趟",
			want: models.TrainingItem{Type: models.TrainingMain, Distance: 1, Pace: "I配速", Sets: 6},
		},
		{
			line: "核心訓練 3組",
			want: models.TrainingItem{Type: models.TrainingMain, Sets: 3},
		},
	}

	for _, tt := range tests {
		got := parseTrainingLine(tt.line)
		tt.want.Title = tt.line
		tt.want.Description = tt.line
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseTrainingLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestParseWarmupBeatsCooldownKeywords(t *testing.T) {
	got := parseTrainingLine("暖身後伸展")
	if got.Type != models.TrainingWarmup {
		t.Errorf("type = %s, want warmup", got.Type)
	}
}

func TestParsePaceZoneBeatsDescriptiveWord(t *testing.T) {
	got := parseTrainingLine("5公里輕鬆跑 E配速")
	if got.Pace != "E配速" {
		t.Errorf("pace = %q, want E配速", got.Pace)
	}
}

func TestParseTitleTruncation(t *testing.T) {
	line := strings.Repeat("跑", 25)
	got := parseTrainingLine(line)

	if want := strings.Repeat("跑", 20) + "..."; got.Title != want {
		t.Errorf("title = %q, want %q", got.Title, want)
	}
	if got.Description != line {
		t.Errorf("description should keep the full line")
	}
}

func TestParseUnmatchedLineStillProducesItem(t *testing.T) {
	got := ParseTrainingText("W1\n週一\nabc")

	items := got[1][1]
	if len(items) != 1 {
		t.Fatalf("want 1 item, got %v", items)
	}
	item := items[0]
	if item.Type != models.TrainingMain || item.Title != "abc" || item.Description != "abc" {
		t.Errorf("unexpected item %+v", item)
	}
	if item.Distance != 0 || item.Duration != 0 || item.Pace != "" || item.Sets != 0 {
		t.Errorf("optional fields should stay empty, got %+v", item)
	}
}

func TestToWeekDataOrdering(t *testing.T) {
	parsed := ParseTrainingText("W2\n週三\n慢跑\n週一\n慢跑\nW1\n週日\n慢跑")

	weeks := ToWeekData(parsed)

	if len(weeks) != 2 || weeks[0].WeekNumber != 1 || weeks[1].WeekNumber != 2 {
		t.Fatalf("unexpected week ordering: %+v", weeks)
	}
	days := weeks[1].Days
	if len(days) != 2 || days[0].DayOfWeek != 1 || days[1].DayOfWeek != 3 {
		t.Errorf("unexpected day ordering: %+v", days)
	}
}
