package store

// DefaultExercises is the catalog every new store starts with.
func DefaultExercises() []Exercise {
	return []Exercise{
		catalogEntry("Bench Press", "Barbell", "Chest", "Lie on a flat bench, grip the barbell with hands slightly wider than shoulder-width, lower the bar to your chest, then push it back up."),
		catalogEntry("Squat", "Barbell", "Legs", "Stand with feet shoulder-width apart, barbell on your upper back, bend knees to lower your body, then return to standing position."),
		catalogEntry("Deadlift", "Barbell", "Back", "Stand with feet hip-width apart, bend to grip the barbell, keeping back straight, lift the bar by extending hips and knees."),
		catalogEntry("Pull-Ups", "Bodyweight", "Back", "Hang from a bar with palms facing away, pull your body up until chin is over the bar, then lower back down with control."),
		catalogEntry("Push-Ups", "Bodyweight", "Chest", "Start in plank position with hands slightly wider than shoulders, lower your body until chest nearly touches the floor, then push back up."),
		catalogEntry("Shoulder Press", "Dumbbell", "Shoulders", "Sit or stand with dumbbells at shoulder height, palms facing forward, press weights overhead, then lower them back down."),
		catalogEntry("Bicep Curls", "Dumbbell", "Arms", "Stand with dumbbells at your sides, palms facing forward, curl the weights toward your shoulders, then lower back down."),
		catalogEntry("Tricep Dips", "Bodyweight", "Arms", "Grip parallel bars with straight arms, lower your body by bending your elbows, then push back up."),
		catalogEntry("Leg Press", "Machine", "Legs", "Sit in the leg press machine, press the platform away by extending your knees, then return to starting position."),
		catalogEntry("Plank", "Bodyweight", "Core", "Hold a position similar to a push-up but with weight on forearms, keeping body in a straight line from head to heels."),
		catalogEntry("Lat Pulldown", "Machine", "Back", "Sit at a lat pulldown machine, grip the bar with hands wider than shoulders, pull the bar down to your chest, then slowly release."),
		catalogEntry("Lunges", "Bodyweight", "Legs", "Step forward with one leg, lowering your hips until both knees are bent at about 90 degrees, then push back to the starting position."),
	}
}

func catalogEntry(name, equipment, muscleGroup, description string) Exercise {
	return Exercise{
		Name:        name,
		Type:        "strength",
		Equipment:   StrPtr(equipment),
		MuscleGroup: StrPtr(muscleGroup),
		Description: StrPtr(description),
	}
}
