// internal/parser/parser.go
package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Yizi-Yeh/runschedule-manager/internal/models"
)

// Line classification happens in priority order: week marker, then day
// marker, then training line. A line consumed as a marker is never also
// parsed as a training line.
var (
	weekRe     = regexp.MustCompile(`[Ww](\d+)|第(\d+)週|週(\d+)`)
	dayRe      = regexp.MustCompile(`週[一二三四五六日]|星期[一二三四五六日]|[一二三四五六日]`)
	distanceRe = regexp.MustCompile(`(\d+\.?\d*)[公里kmKM]`)
	durationRe = regexp.MustCompile(`(\d+)分鐘?`)
	paceZoneRe = regexp.MustCompile(`[EMTIR]配速`)
	paceWordRe = regexp.MustCompile(`輕鬆|節奏|間歇`)
	setsRe     = regexp.MustCompile(`(\d+)(?:組|次|趟)`)
)

var dayOfWeekByChar = map[rune]int{
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5, '六': 6, '日': 0,
}

// ParseTrainingText extracts a week -> dayOfWeek -> training items structure
// from free-form schedule text. Items carry no ids. Lines before the first
// week marker, and lines between a week marker and its first day marker, are
// skipped. Unrecognizable input yields an empty map, never an error.
func ParseTrainingText(text string) map[int]map[int][]models.TrainingItem {
	result := make(map[int]map[int][]models.TrainingItem)

	currentWeek := 0
	currentDay := -1
	haveWeek := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := weekRe.FindStringSubmatch(line); m != nil {
			for _, group := range m[1:] {
				if group != "" {
					currentWeek, _ = strconv.Atoi(group)
					break
				}
			}
			haveWeek = true
			currentDay = -1
			result[currentWeek] = make(map[int][]models.TrainingItem)
			continue
		}

		if m := dayRe.FindString(line); m != "" && haveWeek {
			runes := []rune(m)
			day, ok := dayOfWeekByChar[runes[len(runes)-1]]
			if ok {
				currentDay = day
				result[currentWeek][currentDay] = []models.TrainingItem{}
			}
			continue
		}

		if haveWeek && currentDay >= 0 {
			item := parseTrainingLine(line)
			result[currentWeek][currentDay] = append(result[currentWeek][currentDay], item)
		}
	}

	return result
}

// parseTrainingLine extracts best-effort metrics from one schedule line.
// Type, title and description are always populated; everything else only
// when a matching token appears.
func parseTrainingLine(line string) models.TrainingItem {
	item := models.TrainingItem{
		Type:        models.TrainingMain,
		Title:       truncateTitle(line),
		Description: line,
	}

	if m := distanceRe.FindStringSubmatch(line); m != nil {
		item.Distance, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := durationRe.FindStringSubmatch(line); m != nil {
		item.Duration, _ = strconv.Atoi(m[1])
	}
	// Pace-zone labels (E/M/T/I/R配速) win over loose descriptive words.
	if m := paceZoneRe.FindString(line); m != "" {
		item.Pace = m
	} else if m := paceWordRe.FindString(line); m != "" {
		item.Pace = m
	}
	if m := setsRe.FindStringSubmatch(line); m != nil {
		item.Sets, _ = strconv.Atoi(m[1])
	}

	// Warm-up keywords take precedence over cool-down keywords.
	if strings.Contains(line, "暖身") || strings.Contains(line, "熱身") {
		item.Type = models.TrainingWarmup
	} else if strings.Contains(line, "收操") || strings.Contains(line, "伸展") || strings.Contains(line, "放鬆") {
		item.Type = models.TrainingCooldown
	}

	return item
}

func truncateTitle(line string) string {
	runes := []rune(line)
	if len(runes) > 20 {
		return string(runes[:20]) + "..."
	}
	return line
}

// ToWeekData flattens a parse result into week records ordered by week
// number, days ordered by dayOfWeek. This is the shape the store consumes
// when committing a text import.
func ToWeekData(parsed map[int]map[int][]models.TrainingItem) []models.ParsedWeekData {
	weeks := make([]models.ParsedWeekData, 0, len(parsed))
	for weekNumber, dayMap := range parsed {
		days := make([]models.ParsedDayData, 0, len(dayMap))
		for dayOfWeek, items := range dayMap {
			days = append(days, models.ParsedDayData{
				DayOfWeek:     dayOfWeek,
				TrainingItems: items,
			})
		}
		sort.Slice(days, func(i, j int) bool { return days[i].DayOfWeek < days[j].DayOfWeek })
		weeks = append(weeks, models.ParsedWeekData{
			WeekNumber: weekNumber,
			Days:       days,
		})
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].WeekNumber < weeks[j].WeekNumber })
	return weeks
}
