// ABOUTME: Built-in exercise catalog and starter templates for new users.
// ABOUTME: Custom definitions shadow built-ins by lowercased name.
package models

import "strings"

// BuiltinExercises is the immutable built-in exercise catalog.
var BuiltinExercises = []ExerciseDefinition{
	{
		Name:        "Bench Press (Barbell)",
		Type:        ExerciseWeight,
		Target:      "Chest, Anterior Deltoids, Triceps",
		Description: "Keep feet flat, maintain a slight arch in the lower back. Control the descent.",
	},
	{
		Name:        "Squat (Barbell)",
		Type:        ExerciseWeight,
		Target:      "Quadriceps, Hamstrings, Glutes, Core",
		Description: "Keep chest up, maintain a neutral spine. Push knees out over the toes.",
	},
	{
		Name:        "Deadlift (Barbell)",
		Type:        ExerciseWeight,
		Target:      "Hamstrings, Glutes, Back, Traps",
		Description: "Keep the back flat (neutral spine). Lift by driving the hips forward.",
	},
	{
		Name:        "Overhead Press (Dumbbell)",
		Type:        ExerciseWeight,
		Target:      "Shoulders (Deltoids), Triceps",
		Description: "Keep core tight to prevent excessive back arch. Press straight overhead.",
	},
	{
		Name:        "Kettlebell Swing",
		Type:        ExerciseWeight,
		Target:      "Hamstrings, Glutes, Core, Back",
		Description: "The movement is a hip hinge, not a squat. Drive explosively with the hips.",
	},
	{
		Name:        "Goblet Squat",
		Type:        ExerciseWeight,
		Target:      "Quadriceps, Glutes, Core",
		Description: "Hold weight vertically against your chest. Keep chest tall and back straight.",
	},
	{
		Name:         "Treadmill Running",
		Type:         ExerciseCardio,
		Target:       "Cardiovascular System, Legs",
		Description:  "Maintain a consistent, natural stride. Look straight ahead.",
		TrackingMode: TrackTimeDistance,
	},
	{
		Name:         "Treadmill Walking",
		Type:         ExerciseCardio,
		Target:       "Cardiovascular System, Legs",
		Description:  "Hold the rails only for balance; do not lean on them.",
		TrackingMode: TrackTimeDistance,
	},
	{
		Name:         "Elliptical Trainer",
		Type:         ExerciseCardio,
		Target:       "Cardiovascular System, Legs, Glutes",
		Description:  "Use the handles to engage the upper body. Avoid leaning heavily.",
		TrackingMode: TrackTimeDistance,
	},
	{
		Name:         "Rowing Machine",
		Type:         ExerciseCardio,
		Target:       "Cardiovascular System, Legs, Back, Arms",
		Description:  "Sequence: Legs -> Hips -> Arms. Smooth, powerful rhythm.",
		TrackingMode: TrackTimeDistance,
	},
	{
		Name:         "Stationary Bike",
		Type:         ExerciseCardio,
		Target:       "Cardiovascular System, Legs",
		Description:  "Adjust the seat height for a slight knee bend. Maintain a smooth motion.",
		TrackingMode: TrackTimeDistance,
	},
	{
		Name:         "Push-Up",
		Type:         ExerciseBodyweight,
		Target:       "Chest, Shoulders, Triceps, Core",
		Description:  "Maintain a straight line from head to heels. Keep elbows tucked (about 45 degrees).",
		TrackingMode: TrackRepsOnly,
	},
	{
		Name:         "Pull-Up/Chin-Up",
		Type:         ExerciseBodyweight,
		Target:       "Back (Lats), Biceps",
		Description:  "Initiate the pull by depressing the shoulder blades. Avoid swinging.",
		TrackingMode: TrackRepsOnly,
	},
	{
		Name:         "Planks",
		Type:         ExerciseBodyweight,
		Target:       "Core (Abs, Obliques, Lower Back)",
		Description:  "Keep your body in a straight line; brace your core tightly.",
		TrackingMode: TrackTimeOnly,
	},
	{
		Name:        "Leg Press Machine",
		Type:        ExerciseWeight,
		Target:      "Quadriceps, Hamstrings, Glutes",
		Description: "NEVER lock out your knees. Do not let your lower back curl off the pad.",
	},
	{
		Name:        "Lat Pulldown",
		Type:        ExerciseWeight,
		Target:      "Back (Lats), Biceps",
		Description: "Pull the bar to your upper chest. Focus on pulling with your elbows.",
	},
	{
		Name:        "Dumbbell Bicep Curl",
		Type:        ExerciseWeight,
		Target:      "Biceps",
		Description: "Keep your elbows pinned at your sides. Avoid swinging. Lower slowly.",
	},
	{
		Name:        "Dumbbell Row (Single-Arm)",
		Type:        ExerciseWeight,
		Target:      "Back (Lats), Biceps",
		Description: "Keep your back flat. Pull the dumbbell to your hip/waist area.",
	},
	{
		Name:        "Chest Press Machine",
		Type:        ExerciseWeight,
		Target:      "Chest, Anterior Deltoids, Triceps",
		Description: "Adjust the seat so the handles are in line with your mid-chest.",
	},
	{
		Name:        "Leg Extension Machine",
		Type:        ExerciseWeight,
		Target:      "Quadriceps",
		Description: "Ensure knees align with the machine's pivot point. Hold the contraction at the top.",
	},
	{
		Name:        "Back Extension",
		Type:        ExerciseWeight,
		Target:      "Back (Erector Spinae), Glutes, Hamstrings",
		Description: "Do not arch excessively high. Perform the movement slowly.",
	},
	{
		Name:        "Cable Triceps Pushdown",
		Type:        ExerciseWeight,
		Target:      "Triceps",
		Description: "Keep elbows pinned to your sides. Press down using only your triceps.",
	},
	{
		Name:        "Cable Face Pull",
		Type:        ExerciseWeight,
		Target:      "Upper Back, Rear Deltoids, Rotator Cuff",
		Description: "Pull the rope toward your face, externally rotating your shoulders.",
	},
	{
		Name:        "Kettlebell Turkish Get-Up",
		Type:        ExerciseWeight,
		Target:      "Full Body, Core Stability, Shoulders",
		Description: "Perform the movement slowly and deliberately. Keep eyes on the bell.",
	},
	{
		Name:        "Kettlebell Farmers Carry",
		Type:        ExerciseWeight,
		Target:      "Forearms (Grip), Core Stability, Traps",
		Description: "Use heavy weight and brace the core to resist leaning.",
	},
	{
		Name:         "Medicine Ball Slam",
		Type:         ExerciseWeight,
		Target:       "Full Body, Core, Shoulders, Back",
		Description:  "Lift the ball overhead, then forcefully slam it down by hinging at the hips.",
		TrackingMode: TrackRepsOnly,
	},
	{
		Name:         "Band Pull-Apart",
		Type:         ExerciseWeight,
		Target:       "Upper Back (Rhomboids), Rear Deltoids",
		Description:  "Keep arms straight and pull the band apart, squeezing your shoulder blades.",
		TrackingMode: TrackRepsOnly,
	},
}

// MergedCatalog overlays custom definitions onto the built-in catalog.
// Customs replace built-ins with the same lowercased name and otherwise
// append, preserving built-in order first.
func MergedCatalog(customs []ExerciseDefinition) []ExerciseDefinition {
	overlay := make(map[string]ExerciseDefinition, len(customs))
	for _, c := range customs {
		overlay[strings.ToLower(c.Name)] = c
	}

	out := make([]ExerciseDefinition, 0, len(BuiltinExercises)+len(customs))
	seen := make(map[string]bool, len(BuiltinExercises))
	for _, b := range BuiltinExercises {
		key := strings.ToLower(b.Name)
		seen[key] = true
		if c, ok := overlay[key]; ok {
			out = append(out, c)
			continue
		}
		out = append(out, b)
	}
	for _, c := range customs {
		if !seen[strings.ToLower(c.Name)] {
			out = append(out, c)
		}
	}
	return out
}

// LookupExercise finds a definition by case-insensitive name in the merged
// catalog.
func LookupExercise(customs []ExerciseDefinition, name string) (ExerciseDefinition, bool) {
	key := strings.ToLower(name)
	for _, c := range customs {
		if strings.ToLower(c.Name) == key {
			return c, true
		}
	}
	for _, b := range BuiltinExercises {
		if strings.ToLower(b.Name) == key {
			return b, true
		}
	}
	return ExerciseDefinition{}, false
}

// StarterTemplates returns the default template set given to new profiles.
// Each call instantiates fresh template and exercise ids.
func StarterTemplates() []WorkoutTemplate {
	upper := NewWorkoutTemplate("Upper Body Power")
	for _, name := range []string{"Bench Press (Barbell)", "Pull-Up/Chin-Up", "Overhead Press (Dumbbell)"} {
		def, ok := LookupExercise(nil, name)
		if !ok {
			continue
		}
		upper.Exercises = append(upper.Exercises, NewExercise(def))
	}
	return []WorkoutTemplate{*upper}
}
