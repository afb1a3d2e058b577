package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lifementor/lifementor-cli/internal/client/models"
)

// CheckIn collects the full lifestyle form and creates (or replaces) the
// stored assessment. Times accept "HH:mm" or "HH:mm:ss".
func (a *App) CheckIn(ctx context.Context) error {
	input := models.AssessmentInput{}

	var err error
	if input.SleepTime, err = getSimpleText(a.reader, "Sleep time (HH:mm)", os.Stdout); err != nil {
		return err
	}
	if input.WakeUpTime, err = getSimpleText(a.reader, "Wake up time (HH:mm)", os.Stdout); err != nil {
		return err
	}

	meals, _, err := GetInt(a.reader, "Meals per day (1-10)", os.Stdout)
	if err != nil {
		reportErr(err)
		return err
	}
	input.MealsPerDay = meals

	freq, err := getSimpleText(a.reader, "Exercise frequency (none/low/moderate/high)", os.Stdout)
	if err != nil {
		return err
	}
	input.ExerciseFrequency = models.ExerciseFrequency(strings.ToUpper(freq))

	study, _, err := GetFloat(a.reader, "Study/work hours per day", os.Stdout)
	if err != nil {
		reportErr(err)
		return err
	}
	input.StudyWorkHours = study

	screen, _, err := GetFloat(a.reader, "Screen time hours per day", os.Stdout)
	if err != nil {
		reportErr(err)
		return err
	}
	input.ScreenTimeHours = screen

	mood, _, err := GetInt(a.reader, "Mood level (1-5)", os.Stdout)
	if err != nil {
		reportErr(err)
		return err
	}
	input.MoodLevel = mood

	note, err := getMultiline(a.reader, "How are you feeling? (optional):", os.Stdout)
	if err != nil {
		return err
	}
	input.MentalWellbeingNote = note

	saved, err := a.assessment.CreateOrUpdate(ctx, input)
	if err != nil {
		reportErr(err)
		return err
	}

	printlnFn("Check-in saved.")
	printAssessment(saved)
	return nil
}

// Assessment shows the stored lifestyle check-in, if any.
func (a *App) Assessment(ctx context.Context) error {
	ok, err := a.assessment.HasAssessment(ctx)
	if err != nil {
		reportErr(err)
		return err
	}
	if !ok {
		printlnFn("No check-in yet. Run 'checkin' to create one.")
		return nil
	}

	stored, err := a.assessment.Get(ctx)
	if err != nil {
		reportErr(err)
		return err
	}

	printAssessment(stored)
	return nil
}

// EditAssessment prompts for each field and submits only the ones the user
// filled in; empty answers leave the field unchanged.
func (a *App) EditAssessment(ctx context.Context) error {
	updates := map[string]any{}

	sleep, err := getSimpleText(a.reader, "Sleep time, HH:mm (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if sleep != "" {
		updates["sleepTime"] = sleep
	}

	wake, err := getSimpleText(a.reader, "Wake up time, HH:mm (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if wake != "" {
		updates["wakeUpTime"] = wake
	}

	meals, ok, err := GetInt(a.reader, "Meals per day (empty to keep)", os.Stdout)
	if err != nil {
		reportErr(err)
		return err
	}
	if ok {
		updates["mealsPerDay"] = meals
	}

	freq, err := getSimpleText(a.reader, "Exercise frequency (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if freq != "" {
		updates["exerciseFrequency"] = strings.ToUpper(freq)
	}

	study, ok, err := GetFloat(a.reader, "Study/work hours (empty to keep)", os.Stdout)
	if err != nil {
		reportErr(err)
		return err
	}
	if ok {
		updates["studyWorkHours"] = study
	}

	screen, ok, err := GetFloat(a.reader, "Screen time hours (empty to keep)", os.Stdout)
	if err != nil {
		reportErr(err)
		return err
	}
	if ok {
		updates["screenTimeHours"] = screen
	}

	mood, ok, err := GetInt(a.reader, "Mood level (empty to keep)", os.Stdout)
	if err != nil {
		reportErr(err)
		return err
	}
	if ok {
		updates["moodLevel"] = mood
	}

	note, err := getMultiline(a.reader, "Wellbeing note (empty to keep):", os.Stdout)
	if err != nil {
		return err
	}
	if note != "" {
		updates["mentalWellbeingNote"] = note
	}

	if len(updates) == 0 {
		printlnFn("Nothing to update.")
		return nil
	}

	saved, err := a.assessment.Update(ctx, updates)
	if err != nil {
		reportErr(err)
		return err
	}

	printlnFn("Check-in updated.")
	printAssessment(saved)
	return nil
}

// DeleteAssessment removes the stored check-in after confirmation.
func (a *App) DeleteAssessment(ctx context.Context) error {
	confirm, err := getSimpleText(a.reader, "Type 'yes' to delete your check-in", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled.")
		return nil
	}

	msg, err := a.assessment.Delete(ctx)
	if err != nil {
		reportErr(err)
		return err
	}

	if msg == "" {
		msg = "Check-in deleted."
	}
	printlnFn(msg)
	return nil
}

func printAssessment(s *models.LifestyleAssessment) {
	printlnFn("Sleep time:        ", s.SleepTime)
	printlnFn("Wake up time:      ", s.WakeUpTime)
	printlnFn("Meals per day:     ", s.MealsPerDay)
	printlnFn("Exercise:          ", string(s.ExerciseFrequency))
	printlnFn("Study/work hours:  ", s.StudyWorkHours)
	printlnFn("Screen time hours: ", s.ScreenTimeHours)
	printlnFn("Mood level:        ", fmt.Sprintf("%d/5", s.MoodLevel))
	if s.MentalWellbeingNote != "" {
		printlnFn("Note:              ", s.MentalWellbeingNote)
	}
	if s.UpdatedAt != "" {
		printlnFn("Updated:           ", s.UpdatedAt)
	}
}
