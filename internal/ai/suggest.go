// ABOUTME: Exercise lookup, workout generation, and next-exercise
// ABOUTME: recommendation over the Gemini client, with schema validation.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harperreed/irontrack/internal/models"
)

// ExerciseDetails is the classifier result for a named exercise.
type ExerciseDetails struct {
	Type         models.ExerciseType `json:"type"`
	Target       string              `json:"target"`
	Description  string              `json:"description"`
	TrackingMode models.TrackingMode `json:"trackingMode"`
}

// SuggestedExercise is one exercise in a generated workout.
type SuggestedExercise struct {
	Name          string              `json:"name"`
	Type          models.ExerciseType `json:"type"`
	Target        string              `json:"target"`
	Description   string              `json:"description,omitempty"`
	SuggestedSets int                 `json:"suggestedSets,omitempty"`
	SuggestedReps int                 `json:"suggestedReps,omitempty"`
}

// WorkoutPlan is a generated workout.
type WorkoutPlan struct {
	WorkoutName string              `json:"workoutName"`
	Rationale   string              `json:"rationale,omitempty"`
	Exercises   []SuggestedExercise `json:"exercises"`
}

// Recommendation is a suggested next exercise with the model's reasoning.
type Recommendation struct {
	Name      string              `json:"name"`
	Type      models.ExerciseType `json:"type"`
	Target    string              `json:"target"`
	Rationale string              `json:"rationale"`
}

var exerciseTypeEnum = []string{
	string(models.ExerciseWeight),
	string(models.ExerciseCardio),
	string(models.ExerciseBodyweight),
}

var exerciseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"name":          map[string]any{"type": "STRING"},
		"type":          map[string]any{"type": "STRING", "enum": exerciseTypeEnum},
		"target":        map[string]any{"type": "STRING"},
		"description":   map[string]any{"type": "STRING"},
		"suggestedSets": map[string]any{"type": "INTEGER"},
		"suggestedReps": map[string]any{"type": "INTEGER"},
	},
	"required": []string{"name", "type", "target"},
}

var workoutSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"workoutName": map[string]any{"type": "STRING"},
		"rationale":   map[string]any{"type": "STRING"},
		"exercises":   map[string]any{"type": "ARRAY", "items": exerciseSchema},
	},
	"required": []string{"workoutName", "exercises"},
}

var exerciseDetailSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"type":        map[string]any{"type": "STRING", "enum": exerciseTypeEnum},
		"target":      map[string]any{"type": "STRING"},
		"description": map[string]any{"type": "STRING"},
		"trackingMode": map[string]any{
			"type": "STRING",
			"enum": []string{"weight_reps", "reps_only", "time_distance", "time_only"},
		},
	},
	"required": []string{"type", "target", "trackingMode"},
}

var recommendationSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"name":      map[string]any{"type": "STRING"},
			"type":      map[string]any{"type": "STRING", "enum": exerciseTypeEnum},
			"target":    map[string]any{"type": "STRING"},
			"rationale": map[string]any{"type": "STRING"},
		},
		"required": []string{"name", "type", "target", "rationale"},
	},
}

// ExerciseDetails classifies a named exercise: its type, target muscles,
// form description, and tracking mode.
func (c *Client) ExerciseDetails(ctx context.Context, name string) (*ExerciseDetails, error) {
	prompt := fmt.Sprintf(`Provide technical details for the exercise: %q.
Classify the type carefully.
- Weight Training: uses external weights (barbell, dumbbell, machine, kettlebell).
- Cardio: steady state or intervals (running, rowing, cycling).
- Bodyweight: calisthenics (pushups, pullups).`, name)

	text, err := c.generate(ctx, "You are a fitness database. Accurately classify exercises.", prompt, exerciseDetailSchema)
	if err != nil {
		return nil, err
	}

	var details ExerciseDetails
	if err := json.Unmarshal([]byte(stripFences(text)), &details); err != nil {
		return nil, fmt.Errorf("invalid exercise details: %w", err)
	}
	if !models.IsValidExerciseType(string(details.Type)) {
		return nil, fmt.Errorf("invalid exercise type: %q", details.Type)
	}
	if !models.IsValidTrackingMode(string(details.TrackingMode)) {
		details.TrackingMode = models.DefaultTrackingMode(details.Type)
	}
	return &details, nil
}

// GenerateWorkout builds a full workout for the given goals, limitations,
// and desired duration.
func (c *Client) GenerateWorkout(ctx context.Context, goals, limitations, duration string) (*WorkoutPlan, error) {
	prompt := fmt.Sprintf(`Generate a gym workout based on the following parameters:
User Goals: %s
Limitations/Injuries: %s
Desired Duration: %s

Provide a list of exercises. For each exercise, specify if it is Weight Training, Cardio, or Bodyweight.`,
		goals, limitations, duration)

	text, err := c.generate(ctx, "You are an expert fitness coach. Create safe, effective, and balanced workouts.", prompt, workoutSchema)
	if err != nil {
		return nil, err
	}

	var plan WorkoutPlan
	if err := json.Unmarshal([]byte(stripFences(text)), &plan); err != nil {
		return nil, fmt.Errorf("invalid workout plan: %w", err)
	}
	if plan.WorkoutName == "" || len(plan.Exercises) == 0 {
		return nil, fmt.Errorf("workout plan is empty")
	}
	for i := range plan.Exercises {
		if !models.IsValidExerciseType(string(plan.Exercises[i].Type)) {
			plan.Exercises[i].Type = models.ExerciseWeight
		}
	}
	return &plan, nil
}

// RecommendNext suggests up to three exercises to add, given the exercises
// already in the workout.
func (c *Client) RecommendNext(ctx context.Context, current []models.Exercise, goal, limitations string) ([]Recommendation, error) {
	var list strings.Builder
	for _, e := range current {
		fmt.Fprintf(&list, "- %s (%s) - Target: %s\n", e.Name, e.Type, e.Target)
	}

	prompt := fmt.Sprintf(`The workout so far contains:
%s
User Goal: %s
Limitations/Injuries: %s

Recommend at most 3 exercises to add next. Avoid duplicating what is already in the workout, and balance the muscle groups covered. For each, explain briefly why it fits.`,
		list.String(), goal, limitations)

	text, err := c.generate(ctx, "You are an expert fitness coach. Recommend complementary exercises.", prompt, recommendationSchema)
	if err != nil {
		return nil, err
	}

	var recs []Recommendation
	if err := json.Unmarshal([]byte(stripFences(text)), &recs); err != nil {
		return nil, fmt.Errorf("invalid recommendations: %w", err)
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	for i := range recs {
		if !models.IsValidExerciseType(string(recs[i].Type)) {
			recs[i].Type = models.ExerciseWeight
		}
	}
	return recs, nil
}

// AnalyzeTemplate critiques a workout routine against the user's goals and
// returns free-text recommendations.
func (c *Client) AnalyzeTemplate(ctx context.Context, exercises []models.Exercise, goals string) (string, error) {
	var list strings.Builder
	for _, e := range exercises {
		fmt.Fprintf(&list, "%s (%s) - Target: %s\n", e.Name, e.Type, e.Target)
	}

	prompt := fmt.Sprintf(`Analyze this workout routine:
%s
User Goals: %s

Provide specific recommendations to improve this workout. Suggest adding missing movements, removing redundant ones, or modifying volume/intensity. Keep it concise.`,
		list.String(), goals)

	return c.generate(ctx, "You are a critical biomechanics and hypertrophy expert.", prompt, nil)
}
