package services

import (
	"encoding/json"
	"strings"

	"sweatfix/utils"
)

const planSavedConfirmation = "I've saved this to your daily plan — open the Plans tab to check it off."

// ExtractedPlan carries the fields recovered from a coach reply's fenced
// block. A nil field was absent (or empty) in the block.
type ExtractedPlan struct {
	WorkoutPlan *string
	DietPlan    *string
}

// ScanPlanBlock runs a single pass over a coach reply looking for a fenced
// block tagged json. Only the first block counts; anything after its closing
// delimiter is left alone, and nested fences are not supported — the first
// closing delimiter ends the block. The return is the reply with the block
// removed plus the extracted fields, or the input unchanged when no usable
// block exists (missing fence, malformed JSON, or both fields empty).
func ScanPlanBlock(reply string) (string, *ExtractedPlan) {
	lines := strings.Split(reply, "\n")
	start, end := -1, -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if start == -1 {
			if trimmed == "```json" {
				start = i
			}
			continue
		}
		if trimmed == "```" {
			end = i
			break
		}
	}
	if start == -1 || end == -1 {
		return reply, nil
	}

	var block struct {
		WorkoutPlan string `json:"workout_plan"`
		DietPlan    string `json:"diet_plan"`
	}
	body := strings.Join(lines[start+1:end], "\n")
	if err := json.Unmarshal([]byte(body), &block); err != nil {
		// A malformed block is treated as if absent, never surfaced.
		return reply, nil
	}
	if block.WorkoutPlan == "" && block.DietPlan == "" {
		return reply, nil
	}

	stripped := make([]string, 0, len(lines)-(end-start+1))
	stripped = append(stripped, lines[:start]...)
	stripped = append(stripped, lines[end+1:]...)
	cleaned := strings.TrimRight(strings.Join(stripped, "\n"), " \n")

	plan := &ExtractedPlan{}
	if block.WorkoutPlan != "" {
		plan.WorkoutPlan = &block.WorkoutPlan
	}
	if block.DietPlan != "" {
		plan.DietPlan = &block.DietPlan
	}
	return cleaned, plan
}

// ReconcileCoachReply applies the chat-to-plan flow: scan the reply for a
// structured block, upsert it into today's plan, and return the displayable
// text with the block replaced by a readable summary and a confirmation.
// Replies without a usable block pass through byte-identical with no store
// write. The day label is always the server's "today", never a date parsed
// from the conversation.
func ReconcileCoachReply(userID uint, reply string) (string, error) {
	cleaned, plan := ScanPlanBlock(reply)
	if plan == nil {
		return reply, nil
	}

	if _, err := UpsertPlan(userID, utils.TodayLabel(), plan.WorkoutPlan, plan.DietPlan); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(cleaned)
	sb.WriteString("\n\n**Today's Plan**\n")
	if plan.WorkoutPlan != nil {
		sb.WriteString("- **Workout:** " + *plan.WorkoutPlan + "\n")
	}
	if plan.DietPlan != nil {
		sb.WriteString("- **Diet:** " + *plan.DietPlan + "\n")
	}
	sb.WriteString("\n" + planSavedConfirmation)
	return sb.String(), nil
}
