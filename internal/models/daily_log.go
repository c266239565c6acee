package models

import "time"

const (
	OrdinalScaleMin = 1
	OrdinalScaleMax = 5

	SleepHoursMin = 0.0
	SleepHoursMax = 24.0
)

// SleepQualityStat is one row of the sleep-quality group-by aggregation.
type SleepQualityStat struct {
	SleepQuality  int     `gorm:"column:sleep_quality" json:"sleepQuality"`
	Count         int64   `gorm:"column:count" json:"count"`
	AvgSleepHours float64 `gorm:"column:avg_sleep_hours" json:"avgSleepHours"`
}

// DailyLog is one wellness entry per user per calendar day. CreatedAt carries
// the effective date of the entry, not just the insertion instant.
type DailyLog struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index:idx_daily_logs_user_created" json:"userId"`
	CreatedAt          time.Time `gorm:"not null;index:idx_daily_logs_user_created" json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	MoodLevel          int       `gorm:"not null" json:"moodLevel"`
	AnxietyLevel       int       `gorm:"not null" json:"anxietyLevel"`
	StressLevel        int       `gorm:"not null" json:"stressLevel"`
	SleepQuality       int       `gorm:"not null" json:"sleepQuality"`
	SleepHours         float64   `gorm:"not null" json:"sleepHours"`
	PhysicalActivity   string    `gorm:"not null" json:"physicalActivity"`
	SocialInteractions string    `gorm:"not null" json:"socialInteractions"`
	Symptoms           string    `json:"symptoms"`
	PrimarySymptom     string    `json:"primarySymptom"`
	SymptomSeverity    *int      `json:"symptomSeverity"`
}
