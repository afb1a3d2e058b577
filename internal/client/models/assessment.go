package models

import (
	"fmt"
	"unicode/utf8"

	"github.com/lifementor/lifementor-cli/internal/common"
)

// ExerciseFrequency classifies how often the user exercises.
type ExerciseFrequency string

const (
	ExerciseNone     ExerciseFrequency = "NONE"
	ExerciseLow      ExerciseFrequency = "LOW"
	ExerciseModerate ExerciseFrequency = "MODERATE"
	ExerciseHigh     ExerciseFrequency = "HIGH"
)

// Valid reports whether f is one of the known enum values.
func (f ExerciseFrequency) Valid() bool {
	switch f {
	case ExerciseNone, ExerciseLow, ExerciseModerate, ExerciseHigh:
		return true
	}
	return false
}

// MaxWellbeingNoteLen bounds the free-text note, matching the backend column.
const MaxWellbeingNoteLen = 1000

// LifestyleAssessment is the server-owned assessment record. Times use
// "HH:mm:ss"; id and timestamps are assigned by the backend.
type LifestyleAssessment struct {
	ID                  int64             `json:"id"`
	SleepTime           string            `json:"sleepTime"`
	WakeUpTime          string            `json:"wakeUpTime"`
	MealsPerDay         int               `json:"mealsPerDay"`
	ExerciseFrequency   ExerciseFrequency `json:"exerciseFrequency"`
	StudyWorkHours      float64           `json:"studyWorkHours"`
	ScreenTimeHours     float64           `json:"screenTimeHours"`
	MoodLevel           int               `json:"moodLevel"`
	MentalWellbeingNote string            `json:"mentalWellbeingNote,omitempty"`
	CreatedAt           string            `json:"createdAt,omitempty"`
	UpdatedAt           string            `json:"updatedAt,omitempty"`
}

// AssessmentInput is the client-side form for creating or replacing an
// assessment. Times may be "HH:mm" or "HH:mm:ss"; the service layer
// normalizes them before transmission.
type AssessmentInput struct {
	SleepTime           string            `json:"sleepTime"`
	WakeUpTime          string            `json:"wakeUpTime"`
	MealsPerDay         int               `json:"mealsPerDay"`
	ExerciseFrequency   ExerciseFrequency `json:"exerciseFrequency"`
	StudyWorkHours      float64           `json:"studyWorkHours"`
	ScreenTimeHours     float64           `json:"screenTimeHours"`
	MoodLevel           int               `json:"moodLevel"`
	MentalWellbeingNote string            `json:"mentalWellbeingNote,omitempty"`
}

// Validate mirrors the form-level checks: these errors stay local and are
// never sent to the network.
func (a *AssessmentInput) Validate() error {
	if a.SleepTime == "" {
		return fmt.Errorf("%w: sleep time is required", common.ErrorValidation)
	}
	if a.WakeUpTime == "" {
		return fmt.Errorf("%w: wake up time is required", common.ErrorValidation)
	}
	if a.MealsPerDay < 1 || a.MealsPerDay > 10 {
		return fmt.Errorf("%w: meals per day must be between 1 and 10", common.ErrorValidation)
	}
	if !a.ExerciseFrequency.Valid() {
		return fmt.Errorf("%w: exercise frequency must be NONE, LOW, MODERATE or HIGH", common.ErrorValidation)
	}
	if a.StudyWorkHours < 0 || a.StudyWorkHours > 24 {
		return fmt.Errorf("%w: study/work hours must be between 0 and 24", common.ErrorValidation)
	}
	if a.ScreenTimeHours < 0 || a.ScreenTimeHours > 24 {
		return fmt.Errorf("%w: screen time hours must be between 0 and 24", common.ErrorValidation)
	}
	if a.StudyWorkHours+a.ScreenTimeHours > 24 {
		return fmt.Errorf("%w: study/work and screen time cannot exceed 24 hours combined", common.ErrorValidation)
	}
	if a.MoodLevel < 1 || a.MoodLevel > 5 {
		return fmt.Errorf("%w: mood level must be between 1 and 5", common.ErrorValidation)
	}
	if utf8.RuneCountInString(a.MentalWellbeingNote) > MaxWellbeingNoteLen {
		return fmt.Errorf("%w: wellbeing note must be at most %d characters", common.ErrorValidation, MaxWellbeingNoteLen)
	}
	return nil
}
