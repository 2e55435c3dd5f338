package services

import (
	"strings"
)

const simulatedNotice = "_(Simulated coach reply — the AI provider is unavailable right now.)_"

// onboardingRequestReply is returned verbatim when the member's message
// carries none of the onboarding signals below.
const onboardingRequestReply = simulatedNotice + `

Welcome to Sweat Fix! Before I build anything, I need four details:

- **Weight & height** (e.g. 170 lbs, 5'10")
- **Primary goal** (cut, bulk, or maintain)
- **Dietary restrictions** (vegetarian, allergies, none)
- **Available equipment** (full gym, dumbbells only, bodyweight)

Drop them all in one message and we'll get to work.`

// Coarse string-presence checks against the member's own message, used only
// to guess whether enough context exists to fabricate a plan.
var onboardingSignals = []string{
	"kg", "lbs", "lb", "weight", "height", "cm",
	"goal", "gym", "cut", "bulk", "maintain", "lose", "gain",
	"vegetarian", "vegan", "allergy", "allergies",
	"equipment", "dumbbell", "barbell", "bodyweight",
}

var cannedCoachReplies = []string{
	simulatedNotice + `

Locked in. Here's your day:

**Workout — Push Focus**
- Bench press: 4x8
- Overhead press: 3x10
- Incline dumbbell press: 3x12
- Triceps rope pushdown: 3x15

**Nutrition**
- Protein target: 1g per lb bodyweight
- Prioritize lean meat, eggs, greek yogurt
- 3L water minimum

` + "```json\n" + `{"workout_plan": "Push day: bench 4x8, OHP 3x10, incline DB press 3x12, triceps 3x15", "diet_plan": "High-protein cut: 1g/lb protein, lean meats, 3L water"}` + "\n```",

	simulatedNotice + `

Great base to work from. Today's targets:

**Workout — Pull Focus**
- Deadlift: 3x5
- Pull-ups: 4 sets to near-failure
- Barbell row: 3x10
- Face pulls: 3x15

**Nutrition**
- Slight calorie deficit, carbs around training
- Oats pre-workout, rice + chicken post-workout
- No liquid calories

` + "```json\n" + `{"workout_plan": "Pull day: deadlift 3x5, pull-ups 4 sets, rows 3x10, face pulls 3x15", "diet_plan": "Moderate deficit: carbs around training, chicken and rice, no liquid calories"}` + "\n```",

	simulatedNotice + `

Let's keep the momentum. Plan for today:

**Workout — Legs & Core**
- Back squat: 4x6
- Romanian deadlift: 3x10
- Walking lunges: 3x12 per leg
- Plank: 3x60s

**Nutrition**
- Protein every meal, veg with lunch and dinner
- Pre-bed casein or cottage cheese
- Electrolytes if training over an hour

` + "```json\n" + `{"workout_plan": "Leg day: squat 4x6, RDL 3x10, lunges 3x12/leg, planks 3x60s", "diet_plan": "Protein at every meal, veg twice daily, casein before bed"}` + "\n```",
}

// simulateReply fabricates a coach answer from the member's own message text.
// Provider errors never reach this path's decision — only the message does.
func (s *CoachService) simulateReply(message string) string {
	lower := strings.ToLower(message)
	for _, signal := range onboardingSignals {
		if strings.Contains(lower, signal) {
			return cannedCoachReplies[s.rng.Intn(len(cannedCoachReplies))]
		}
	}
	return onboardingRequestReply
}
