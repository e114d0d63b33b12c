package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/store"
)

const (
	WelcomeMessage      = "Hello! I'm your AI workout coach. How can I help you with your fitness journey today? You can ask me about workout routines, exercise form, nutrition or recovery."
	WelcomeBackMessage  = "Hello again! I'm your AI workout coach. How can I help you with your fitness journey today?"
	workoutRequestMatch = "workout for"
)

// Responder produces the coach's answer to a user message. recent holds the user's latest workouts, newest first.
type Responder interface {
	Reply(ctx context.Context, prompt string, recent []store.Workout) (string, error)
}

type topic struct {
	keywords []string
	reply    string
}

var workoutTopics = []topic{
	{
		keywords: []string{"leg", "lower body"},
		reply: "Here's a leg routine to try:\n\n" +
			"1. Barbell Squats: 4 sets of 8-10 reps\n" +
			"2. Romanian Deadlifts: 3 sets of 10-12 reps\n" +
			"3. Bulgarian Split Squats: 3 sets of 10 reps per leg\n" +
			"4. Leg Press: 3 sets of 12-15 reps\n" +
			"5. Standing Calf Raises: 4 sets of 15-20 reps\n\n" +
			"Warm up first and keep the form clean before going heavy.",
	},
	{
		keywords: []string{"chest", "upper body"},
		reply: "Here's a chest focused upper body session:\n\n" +
			"1. Bench Press: 4 sets of 6-8 reps\n" +
			"2. Incline Dumbbell Press: 3 sets of 8-10 reps\n" +
			"3. Chest Flyes: 3 sets of 10-12 reps\n" +
			"4. Push-Ups: 3 sets to failure\n" +
			"5. Lateral Raises: 3 sets of 15 reps\n\n" +
			"Do the heavy compound lifts first while you are fresh.",
	},
	{
		keywords: []string{"back"},
		reply: "Here's a back workout:\n\n" +
			"1. Pull-Ups or Lat Pulldowns: 4 sets of 8-10 reps\n" +
			"2. Bent-Over Rows: 4 sets of 8-10 reps\n" +
			"3. Seated Cable Rows: 3 sets of 10-12 reps\n" +
			"4. Face Pulls: 3 sets of 12-15 reps\n" +
			"5. Shrugs: 3 sets of 15 reps\n\n" +
			"Squeeze the shoulder blades at the top of every pull.",
	},
}

const unspecifiedWorkoutReply = "Happy to suggest a routine. Which muscle group or kind of workout are you after (legs, upper body, back, full body)?"

var generalTopics = []topic{
	{
		keywords: []string{"diet", "nutrition"},
		reply: "Nutrition carries a big part of your progress:\n\n" +
			"1. Protein: 1.6-2.2g per kg of bodyweight a day.\n" +
			"2. Carbohydrates: whole grains, fruit and vegetables to fuel training.\n" +
			"3. Fats: olive oil, avocados and nuts.\n" +
			"4. Hydration: 3-4 liters of water a day, more on hard training days.\n\n" +
			"A meal with protein and carbs 1-2 hours before and after training helps both performance and recovery.",
	},
	{
		keywords: []string{"progress", "plateau"},
		reply: "To break through a plateau:\n\n" +
			"1. Progressive overload: add weight, reps or sets over time.\n" +
			"2. Switch rep ranges for a few weeks.\n" +
			"3. Rotate in new exercises.\n" +
			"4. Sleep and eat enough to recover.\n" +
			"5. Take a deload week every 6-8 weeks.\n" +
			"6. Revisit your form.",
	},
	{
		keywords: []string{"sore", "recovery"},
		reply: "For better recovery and less soreness:\n\n" +
			"1. Active recovery: walking or swimming on rest days.\n" +
			"2. Enough protein and calories.\n" +
			"3. Plenty of water.\n" +
			"4. 7-9 hours of sleep.\n" +
			"5. Stretching, mobility work and foam rolling.\n\n" +
			"Some soreness is normal after a new routine. If it gets in the way of daily life, take more rest.",
	},
}

// ScriptedResponder answers from a fixed set of replies picked by keywords in the prompt.
type ScriptedResponder struct{}

func (ScriptedResponder) Reply(_ context.Context, prompt string, recent []store.Workout) (string, error) {
	p := strings.ToLower(prompt)

	if strings.Contains(p, workoutRequestMatch) {
		if reply, ok := match(p, workoutTopics); ok {
			return reply, nil
		}
		return unspecifiedWorkoutReply, nil
	}
	if reply, ok := match(p, generalTopics); ok {
		return reply, nil
	}
	return defaultReply(recent), nil
}

func match(prompt string, topics []topic) (string, bool) {
	for _, t := range topics {
		for _, k := range t.keywords {
			if strings.Contains(prompt, k) {
				return t.reply, true
			}
		}
	}
	return "", false
}

func defaultReply(recent []store.Workout) string {
	var sb strings.Builder
	if len(recent) == 0 {
		sb.WriteString("You haven't logged any workouts yet, so start with three full body sessions a week and build from there. ")
	} else {
		fmt.Fprintf(&sb, "Looking at your last %d workouts, most recently %q, keep a balanced approach. ", len(recent), recent[0].Name)
	}
	sb.WriteString("Increase the weight or reps gradually, and leave enough time to recover between sessions.\n\n")
	sb.WriteString("Is there anything specific about your training you'd like advice on?")
	return sb.String()
}
