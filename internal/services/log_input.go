package services

import (
	"fmt"
	"strings"

	"github.com/annavey/moodwell/internal/models"
)

// ValidationError reports a field whose value falls outside its declared
// range or type.
type ValidationError struct {
	Field   string
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

func newRangeError(field string, label string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s must be between %d and %d", label, models.OrdinalScaleMin, models.OrdinalScaleMax),
	}
}

// LogEntryInput carries the writable fields of a daily log.
type LogEntryInput struct {
	MoodLevel          int
	AnxietyLevel       int
	StressLevel        int
	SleepQuality       int
	SleepHours         float64
	PhysicalActivity   string
	SocialInteractions string
	Symptoms           string
	PrimarySymptom     string
	SymptomSeverity    *int
}

func (input LogEntryInput) Validate() error {
	if !ordinalInRange(input.MoodLevel) {
		return newRangeError("moodLevel", "Mood level")
	}
	if !ordinalInRange(input.AnxietyLevel) {
		return newRangeError("anxietyLevel", "Anxiety level")
	}
	if !ordinalInRange(input.StressLevel) {
		return newRangeError("stressLevel", "Stress level")
	}
	if !ordinalInRange(input.SleepQuality) {
		return newRangeError("sleepQuality", "Sleep quality")
	}
	if input.SleepHours < models.SleepHoursMin || input.SleepHours > models.SleepHoursMax {
		return &ValidationError{
			Field:   "sleepHours",
			Message: "Sleep hours must be between 0 and 24",
		}
	}
	if strings.TrimSpace(input.PhysicalActivity) == "" {
		return &ValidationError{
			Field:   "physicalActivity",
			Message: "Physical activity must be a non-empty string",
		}
	}
	if strings.TrimSpace(input.SocialInteractions) == "" {
		return &ValidationError{
			Field:   "socialInteractions",
			Message: "Social interactions must be a non-empty string",
		}
	}
	if input.SymptomSeverity != nil {
		if !ordinalInRange(*input.SymptomSeverity) {
			return newRangeError("symptomSeverity", "Symptom severity")
		}
		if strings.TrimSpace(input.Symptoms) == "" {
			return &ValidationError{
				Field:   "symptomSeverity",
				Message: "Symptom severity requires symptoms to be present",
			}
		}
	}
	return nil
}

func (input LogEntryInput) apply(entry *models.DailyLog) {
	entry.MoodLevel = input.MoodLevel
	entry.AnxietyLevel = input.AnxietyLevel
	entry.StressLevel = input.StressLevel
	entry.SleepQuality = input.SleepQuality
	entry.SleepHours = input.SleepHours
	entry.PhysicalActivity = input.PhysicalActivity
	entry.SocialInteractions = input.SocialInteractions
	entry.Symptoms = input.Symptoms
	entry.PrimarySymptom = input.PrimarySymptom
	entry.SymptomSeverity = input.SymptomSeverity
}

func ordinalInRange(value int) bool {
	return value >= models.OrdinalScaleMin && value <= models.OrdinalScaleMax
}
