package services

import (
	"fmt"
	"testing"

	"sweatfix/config"
	"sweatfix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertPlanSecondWriteReplacesText(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "g-upsert")

	_, err := UpsertPlan(user.ID, "Aug 27", strptr("Pushups"), strptr("Chicken"))
	require.NoError(t, err)

	plan, err := UpsertPlan(user.ID, "Aug 27", strptr("Squats"), strptr("Fish"))
	require.NoError(t, err)
	assert.Equal(t, "Squats", plan.WorkoutPlan)
	assert.Equal(t, "Fish", plan.DietPlan)

	var count int64
	require.NoError(t, config.DB.Model(&models.DailyPlan{}).
		Where("user_id = ? AND date = ?", user.ID, "Aug 27").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertPlanKeepsCompletionAndOmittedField(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "g-keep")

	first, err := UpsertPlan(user.ID, "Aug 27", strptr("Pushups"), strptr("Chicken"))
	require.NoError(t, err)
	require.NoError(t, SetCompletion(user.ID, first.ID, true))

	// A workout-only upsert must not reset the flag or erase the diet text.
	_, err = UpsertPlan(user.ID, "Aug 27", strptr("Squats"), nil)
	require.NoError(t, err)

	var plan models.DailyPlan
	require.NoError(t, config.DB.First(&plan, first.ID).Error)
	assert.Equal(t, "Squats", plan.WorkoutPlan)
	assert.Equal(t, "Chicken", plan.DietPlan)
	assert.True(t, plan.Completed)
}

func TestSetCompletionOwnerMismatchIsSilentNoOp(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "g-owner")
	intruder := createTestUser(t, "g-intruder")

	plan, err := UpsertPlan(owner.ID, "Aug 27", strptr("Pushups"), strptr("Chicken"))
	require.NoError(t, err)

	// Success-shaped result, no visible difference from a real toggle.
	require.NoError(t, SetCompletion(intruder.ID, plan.ID, true))

	var reloaded models.DailyPlan
	require.NoError(t, config.DB.First(&reloaded, plan.ID).Error)
	assert.False(t, reloaded.Completed)
}

func TestListRecentPlansOrderLimitAndPruning(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "g-list")
	other := createTestUser(t, "g-other")

	var lastID uint
	for i := 0; i < 20; i++ {
		plan, err := UpsertPlan(user.ID, fmt.Sprintf("Day %02d", i), strptr("w"), strptr("d"))
		require.NoError(t, err)
		lastID = plan.ID
	}
	_, err := UpsertPlan(other.ID, "Day 00", strptr("theirs"), nil)
	require.NoError(t, err)

	plans, err := ListRecentPlans(user.ID, planRetentionWindow)
	require.NoError(t, err)
	require.Len(t, plans, planRetentionWindow)
	assert.Equal(t, lastID, plans[0].ID)

	// The read pruned everything past the retention window for this user only.
	var count int64
	require.NoError(t, config.DB.Model(&models.DailyPlan{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, planRetentionWindow, count)

	require.NoError(t, config.DB.Model(&models.DailyPlan{}).
		Where("user_id = ?", other.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListRecentPlansCompletionToggleDoesNotPromote(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "g-toggle-order")

	old, err := UpsertPlan(user.ID, "Aug 20", strptr("Pushups"), strptr("Chicken"))
	require.NoError(t, err)
	newer, err := UpsertPlan(user.ID, "Aug 27", strptr("Squats"), strptr("Fish"))
	require.NoError(t, err)

	// Checking off the older plan bumps its updated_at but must not move
	// it above the newer day.
	require.NoError(t, SetCompletion(user.ID, old.ID, true))

	plans, err := ListRecentPlans(user.ID, planRetentionWindow)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, newer.ID, plans[0].ID)
	assert.Equal(t, old.ID, plans[1].ID)
}
