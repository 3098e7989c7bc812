// ABOUTME: MCP tool implementations for the workout tracker.
// ABOUTME: Covers the workout lifecycle, templates, and custom exercises.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/irontrack/internal/models"
)

func (s *Server) registerTools() {
	// start_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a new workout, optionally seeded from a template",
	}, s.handleStartWorkout)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Log a set for an exercise in the active workout",
	}, s.handleLogSet)

	// get_active_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_active_workout",
		Description: "Get the in-progress workout, if any",
	}, s.handleGetActiveWorkout)

	// finish_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_workout",
		Description: "Finish the active workout and move it to history",
	}, s.handleFinishWorkout)

	// cancel_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "cancel_workout",
		Description: "Discard the active workout",
	}, s.handleCancelWorkout)

	// list_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List completed workouts, most recent first",
	}, s.handleListHistory)

	// list_templates
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_templates",
		Description: "List workout templates",
	}, s.handleListTemplates)

	// save_template
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_template",
		Description: "Create a workout template from catalog exercise names",
	}, s.handleSaveTemplate)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise catalog (built-ins plus the user's custom exercises)",
	}, s.handleListExercises)

	// add_custom_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_custom_exercise",
		Description: "Add a custom exercise definition to the user's catalog",
	}, s.handleAddCustomExercise)
}

// Tool input/output types

type startWorkoutInput struct {
	TemplateID string `json:"template_id,omitempty" jsonschema:"Template id to seed the workout from"`
	Name       string `json:"name,omitempty" jsonschema:"Workout name when starting without a template"`
	Replace    bool   `json:"replace,omitempty" jsonschema:"Replace an in-progress workout instead of failing"`
}

type workoutOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type logSetInput struct {
	Exercise string  `json:"exercise" jsonschema:"Exercise name (added to the workout if missing)"`
	Weight   float64 `json:"weight,omitempty" jsonschema:"Weight lifted"`
	Reps     int     `json:"reps,omitempty" jsonschema:"Reps performed"`
	Distance float64 `json:"distance,omitempty" jsonschema:"Distance covered"`
	Time     float64 `json:"time,omitempty" jsonschema:"Time in minutes"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type saveTemplateInput struct {
	Name      string   `json:"name" jsonschema:"Template name"`
	Exercises []string `json:"exercises" jsonschema:"Catalog exercise names in order"`
}

type addCustomExerciseInput struct {
	Name         string `json:"name" jsonschema:"Exercise name"`
	Type         string `json:"type" jsonschema:"Weight Training | Cardio | Bodyweight"`
	Target       string `json:"target" jsonschema:"Target muscles"`
	Description  string `json:"description,omitempty" jsonschema:"Form notes"`
	TrackingMode string `json:"tracking_mode,omitempty" jsonschema:"weight_reps | reps_only | time_distance | time_only"`
}

// Tool handlers

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	var source *models.WorkoutSource
	if input.TemplateID != "" {
		t, ok := s.session.Template(input.TemplateID)
		if !ok {
			return nil, workoutOutput{}, fmt.Errorf("template not found: %s", input.TemplateID)
		}
		source = models.TemplateSource(t)
	}

	w, err := s.session.StartWorkout(source, input.Replace)
	if err != nil {
		return nil, workoutOutput{}, err
	}
	if input.Name != "" && source == nil {
		w.Name = input.Name
		if err := s.session.UpdateActiveWorkout(w); err != nil {
			return nil, workoutOutput{}, err
		}
	}

	return nil, workoutOutput{
		ID:      w.ID,
		Name:    w.Name,
		Message: fmt.Sprintf("Started workout %q (ID: %s)", w.Name, w.ID[:8]),
	}, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	w := s.session.ActiveWorkout()
	if w == nil {
		return nil, simpleOutput{}, fmt.Errorf("no workout in progress; use start_workout first")
	}

	set := models.NewSet()
	set.Completed = true
	if input.Weight > 0 {
		set = set.WithWeight(input.Weight)
	}
	if input.Reps > 0 {
		set = set.WithReps(input.Reps)
	}
	if input.Distance > 0 {
		set = set.WithDistance(input.Distance)
	}
	if input.Time > 0 {
		set = set.WithTime(input.Time)
	}

	found := false
	for i := range w.Exercises {
		if strings.EqualFold(w.Exercises[i].Name, input.Exercise) {
			w.Exercises[i].Sets = append(w.Exercises[i].Sets, set)
			found = true
			break
		}
	}
	if !found {
		def, ok := models.LookupExercise(s.session.CustomExercises(), input.Exercise)
		if !ok {
			def = models.ExerciseDefinition{Name: input.Exercise, Type: models.ExerciseWeight}
		}
		e := models.NewExercise(def)
		e.Sets = append(e.Sets, set)
		w.Exercises = append(w.Exercises, e)
	}

	if err := s.session.UpdateActiveWorkout(w); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged set for %s", input.Exercise),
	}, nil
}

func (s *Server) handleGetActiveWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	w := s.session.ActiveWorkout()
	if w == nil {
		return nil, map[string]any{"message": "No workout in progress."}, nil
	}
	return nil, w, nil
}

func (s *Server) handleFinishWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, workoutOutput, error) {
	w, err := s.session.FinishWorkout(nil)
	if err != nil {
		return nil, workoutOutput{}, err
	}
	return nil, workoutOutput{
		ID:      w.ID,
		Name:    w.Name,
		Message: fmt.Sprintf("Finished %q after %s", w.Name, w.Duration().Round(time.Second)),
	}, nil
}

func (s *Server) handleCancelWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.session.CancelWorkout(); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: "Workout discarded."}, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts := s.session.Workouts()
	if len(workouts) > input.Limit {
		workouts = workouts[:input.Limit]
	}
	if len(workouts) == 0 {
		return nil, map[string]any{"message": "No workouts logged yet."}, nil
	}
	return nil, workouts, nil
}

func (s *Server) handleListTemplates(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	templates := s.session.Templates()
	if len(templates) == 0 {
		return nil, map[string]any{"message": "No templates."}, nil
	}
	return nil, templates, nil
}

func (s *Server) handleSaveTemplate(ctx context.Context, req *mcp.CallToolRequest, input saveTemplateInput) (*mcp.CallToolResult, workoutOutput, error) {
	if input.Name == "" {
		return nil, workoutOutput{}, fmt.Errorf("template name is required")
	}

	t := models.NewWorkoutTemplate(input.Name)
	for _, name := range input.Exercises {
		def, ok := models.LookupExercise(s.session.CustomExercises(), name)
		if !ok {
			return nil, workoutOutput{}, fmt.Errorf("exercise not in catalog: %s", name)
		}
		t.Exercises = append(t.Exercises, models.NewExercise(def))
	}

	if err := s.session.SaveTemplate(*t); err != nil {
		return nil, workoutOutput{}, err
	}
	return nil, workoutOutput{
		ID:      t.ID,
		Name:    t.Name,
		Message: fmt.Sprintf("Saved template %q with %d exercises", t.Name, len(t.Exercises)),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.session.Catalog(), nil
}

func (s *Server) handleAddCustomExercise(ctx context.Context, req *mcp.CallToolRequest, input addCustomExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidExerciseType(input.Type) {
		return nil, simpleOutput{}, fmt.Errorf("unknown exercise type: %s", input.Type)
	}
	if input.TrackingMode != "" && !models.IsValidTrackingMode(input.TrackingMode) {
		return nil, simpleOutput{}, fmt.Errorf("unknown tracking mode: %s", input.TrackingMode)
	}

	def := models.ExerciseDefinition{
		Name:         input.Name,
		Type:         models.ExerciseType(input.Type),
		Target:       input.Target,
		Description:  input.Description,
		TrackingMode: models.TrackingMode(input.TrackingMode),
	}
	if err := s.session.UpdateCustomExercise(def); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved custom exercise %q", input.Name),
	}, nil
}
