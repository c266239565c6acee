package services

import (
	"errors"
	"testing"
)

func validLogInput() LogEntryInput {
	return LogEntryInput{
		MoodLevel:          4,
		AnxietyLevel:       2,
		StressLevel:        3,
		SleepQuality:       4,
		SleepHours:         7.5,
		PhysicalActivity:   "Morning jog",
		SocialInteractions: "Coffee with friends",
		Symptoms:           "",
	}
}

func intPtr(value int) *int {
	return &value
}

func TestLogEntryInputValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*LogEntryInput)
		wantField string
	}{
		{
			name:   "valid input",
			mutate: func(*LogEntryInput) {},
		},
		{
			name:   "valid input with symptoms and severity",
			mutate: func(input *LogEntryInput) { input.Symptoms = "Mild headache"; input.SymptomSeverity = intPtr(2) },
		},
		{
			name:      "mood level above scale",
			mutate:    func(input *LogEntryInput) { input.MoodLevel = 6 },
			wantField: "moodLevel",
		},
		{
			name:      "mood level below scale",
			mutate:    func(input *LogEntryInput) { input.MoodLevel = 0 },
			wantField: "moodLevel",
		},
		{
			name:      "anxiety level out of range",
			mutate:    func(input *LogEntryInput) { input.AnxietyLevel = -1 },
			wantField: "anxietyLevel",
		},
		{
			name:      "stress level out of range",
			mutate:    func(input *LogEntryInput) { input.StressLevel = 9 },
			wantField: "stressLevel",
		},
		{
			name:      "sleep quality out of range",
			mutate:    func(input *LogEntryInput) { input.SleepQuality = 0 },
			wantField: "sleepQuality",
		},
		{
			name:      "negative sleep hours",
			mutate:    func(input *LogEntryInput) { input.SleepHours = -0.5 },
			wantField: "sleepHours",
		},
		{
			name:      "sleep hours above a day",
			mutate:    func(input *LogEntryInput) { input.SleepHours = 24.5 },
			wantField: "sleepHours",
		},
		{
			name:      "blank physical activity",
			mutate:    func(input *LogEntryInput) { input.PhysicalActivity = "   " },
			wantField: "physicalActivity",
		},
		{
			name:      "blank social interactions",
			mutate:    func(input *LogEntryInput) { input.SocialInteractions = "" },
			wantField: "socialInteractions",
		},
		{
			name:      "severity out of range",
			mutate:    func(input *LogEntryInput) { input.Symptoms = "headache"; input.SymptomSeverity = intPtr(6) },
			wantField: "symptomSeverity",
		},
		{
			name:      "severity without symptoms",
			mutate:    func(input *LogEntryInput) { input.SymptomSeverity = intPtr(3) },
			wantField: "symptomSeverity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validLogInput()
			tt.mutate(&input)

			err := input.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Fatalf("offending field = %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestLogEntryInputValidateBoundaries(t *testing.T) {
	input := validLogInput()
	input.SleepHours = 24
	input.MoodLevel = 5
	input.AnxietyLevel = 1
	if err := input.Validate(); err != nil {
		t.Fatalf("boundary values should pass, got %v", err)
	}

	input.SleepHours = 0
	if err := input.Validate(); err != nil {
		t.Fatalf("zero sleep hours should pass, got %v", err)
	}
}
