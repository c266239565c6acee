package services

import (
	"sort"
	"strings"
	"time"

	"github.com/annavey/moodwell/internal/models"
)

const (
	DefaultTrendWindowDays  = 30
	DefaultCorrelationLimit = 30
	SymptomAnalysisWeek     = "week"
	SymptomAnalysisMonth    = "month"

	minSymptomTokenLength   = 4
	symptomAnalysisWeekDays = 7
)

// AnalyticsReadRepository is the slice of the daily-log store the aggregation
// engine reads through.
type AnalyticsReadRepository interface {
	ListByUser(userID uint) ([]models.DailyLog, error)
	ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.DailyLog, error)
	ListByUserSince(userID uint, since time.Time) ([]models.DailyLog, error)
	ListRecent(userID uint, limit int) ([]models.DailyLog, error)
	GroupBySleepQuality(userID uint) ([]models.SleepQualityStat, error)
}

// WeeklyAverage holds the arithmetic means of one Sunday-keyed week that has
// at least one log.
type WeeklyAverage struct {
	Week         time.Time `json:"week"`
	MoodLevel    float64   `json:"moodLevel"`
	AnxietyLevel float64   `json:"anxietyLevel"`
	StressLevel  float64   `json:"stressLevel"`
	SleepHours   float64   `json:"sleepHours"`
}

type TrendPoint struct {
	CreatedAt    time.Time `json:"createdAt"`
	MoodLevel    int       `json:"moodLevel"`
	AnxietyLevel int       `json:"anxietyLevel"`
	StressLevel  int       `json:"stressLevel"`
}

type CorrelationPoint struct {
	CreatedAt    time.Time `json:"createdAt"`
	SleepHours   float64   `json:"sleepHours"`
	SleepQuality int       `json:"sleepQuality"`
	MoodLevel    int       `json:"moodLevel"`
	AnxietyLevel int       `json:"anxietyLevel"`
	StressLevel  int       `json:"stressLevel"`
}

type SymptomLogPoint struct {
	Date         time.Time `json:"date"`
	MoodLevel    int       `json:"moodLevel"`
	AnxietyLevel int       `json:"anxietyLevel"`
}

type SymptomAnalysis struct {
	Period        string            `json:"period"`
	TotalLogs     int               `json:"totalLogs"`
	CommonPhrases map[string]int    `json:"commonPhrases"`
	Logs          []SymptomLogPoint `json:"logs"`
}

// AnalyticsService answers read-only queries over a user's own logs. Every
// call is a pure transform of the current store snapshot.
type AnalyticsService struct {
	logs     AnalyticsReadRepository
	location *time.Location
	clock    func() time.Time
}

func NewAnalyticsService(logs AnalyticsReadRepository, location *time.Location) *AnalyticsService {
	if location == nil {
		location = time.UTC
	}
	return &AnalyticsService{
		logs:     logs,
		location: location,
		clock:    time.Now,
	}
}

// LogsInRange returns logs whose effective timestamp falls within the
// inclusive [start, end] window, newest first.
func (service *AnalyticsService) LogsInRange(userID uint, start time.Time, end time.Time) ([]models.DailyLog, error) {
	return service.logs.ListByUserRange(userID, start, end)
}

func (service *AnalyticsService) AllLogs(userID uint) ([]models.DailyLog, error) {
	return service.logs.ListByUser(userID)
}

// WeeklyAverages partitions the user's logs into weeks keyed by each week's
// Sunday and averages mood, anxiety, stress and sleep hours per week. Weeks
// without logs are never emitted; results run newest week first.
func (service *AnalyticsService) WeeklyAverages(userID uint) ([]WeeklyAverage, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	type weekSums struct {
		mood    float64
		anxiety float64
		stress  float64
		sleep   float64
		count   int
	}

	sums := make(map[time.Time]*weekSums)
	for _, entry := range logs {
		week := WeekStart(entry.CreatedAt, service.location)
		bucket := sums[week]
		if bucket == nil {
			bucket = &weekSums{}
			sums[week] = bucket
		}
		bucket.mood += float64(entry.MoodLevel)
		bucket.anxiety += float64(entry.AnxietyLevel)
		bucket.stress += float64(entry.StressLevel)
		bucket.sleep += entry.SleepHours
		bucket.count++
	}

	averages := make([]WeeklyAverage, 0, len(sums))
	for week, bucket := range sums {
		count := float64(bucket.count)
		averages = append(averages, WeeklyAverage{
			Week:         week,
			MoodLevel:    bucket.mood / count,
			AnxietyLevel: bucket.anxiety / count,
			StressLevel:  bucket.stress / count,
			SleepHours:   bucket.sleep / count,
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		return averages[i].Week.After(averages[j].Week)
	})
	return averages, nil
}

// MoodTrend returns mood/anxiety/stress points for logs within the trailing
// window, oldest first.
func (service *AnalyticsService) MoodTrend(userID uint, windowDays int) ([]TrendPoint, error) {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}

	since := service.clock().Add(-time.Duration(windowDays) * 24 * time.Hour)
	logs, err := service.logs.ListByUserSince(userID, since)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(logs))
	for _, entry := range logs {
		points = append(points, TrendPoint{
			CreatedAt:    entry.CreatedAt,
			MoodLevel:    entry.MoodLevel,
			AnxietyLevel: entry.AnxietyLevel,
			StressLevel:  entry.StressLevel,
		})
	}
	return points, nil
}

// SleepStats groups all of the user's logs by sleep quality, with the count
// and mean sleep hours of each group.
func (service *AnalyticsService) SleepStats(userID uint) ([]models.SleepQualityStat, error) {
	return service.logs.GroupBySleepQuality(userID)
}

// CorrelationSnapshot returns the most recent logs as a raw feature matrix,
// newest first. Correlation itself is left to the client.
func (service *AnalyticsService) CorrelationSnapshot(userID uint, limit int) ([]CorrelationPoint, error) {
	if limit <= 0 {
		limit = DefaultCorrelationLimit
	}

	logs, err := service.logs.ListRecent(userID, limit)
	if err != nil {
		return nil, err
	}

	points := make([]CorrelationPoint, 0, len(logs))
	for _, entry := range logs {
		points = append(points, CorrelationPoint{
			CreatedAt:    entry.CreatedAt,
			SleepHours:   entry.SleepHours,
			SleepQuality: entry.SleepQuality,
			MoodLevel:    entry.MoodLevel,
			AnxietyLevel: entry.AnxietyLevel,
			StressLevel:  entry.StressLevel,
		})
	}
	return points, nil
}

// SymptomAnalysis tokenizes symptom text across logs in the requested window
// ("week" for the trailing 7 days, "month" for the trailing month, anything
// else for all time) into a word-frequency map.
func (service *AnalyticsService) SymptomAnalysis(userID uint, period string) (SymptomAnalysis, error) {
	now := service.clock()

	var logs []models.DailyLog
	var err error
	switch period {
	case SymptomAnalysisWeek:
		logs, err = service.logs.ListByUserRange(userID, now.AddDate(0, 0, -symptomAnalysisWeekDays), now)
	case SymptomAnalysisMonth:
		logs, err = service.logs.ListByUserRange(userID, now.AddDate(0, -1, 0), now)
	default:
		logs, err = service.logs.ListByUser(userID)
	}
	if err != nil {
		return SymptomAnalysis{}, err
	}

	analysis := SymptomAnalysis{
		Period:        period,
		TotalLogs:     len(logs),
		CommonPhrases: make(map[string]int),
		Logs:          make([]SymptomLogPoint, 0, len(logs)),
	}
	for _, entry := range logs {
		for _, token := range TokenizeSymptoms(entry.Symptoms) {
			analysis.CommonPhrases[token]++
		}
		analysis.Logs = append(analysis.Logs, SymptomLogPoint{
			Date:         entry.CreatedAt,
			MoodLevel:    entry.MoodLevel,
			AnxietyLevel: entry.AnxietyLevel,
		})
	}
	return analysis, nil
}

// TokenizeSymptoms lower-cases free-form symptom text, splits it on
// whitespace and drops tokens of three characters or fewer. A heuristic, not
// a linguistic analysis.
func TokenizeSymptoms(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) < minSymptomTokenLength {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
