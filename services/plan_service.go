package services

import (
	"errors"

	"sweatfix/config"
	"sweatfix/models"

	"gorm.io/gorm"
)

// The read path keeps this many plans per user and prunes the rest,
// regardless of completion state.
const planRetentionWindow = 14

// UpsertPlan inserts or updates the plan for (userID, day). A nil text field
// leaves the stored value untouched, so a partial extraction cannot erase the
// sibling field. Completed is never written by this path.
func UpsertPlan(userID uint, day string, workoutPlan, dietPlan *string) (*models.DailyPlan, error) {
	var plan models.DailyPlan
	err := config.DB.Where("user_id = ? AND date = ?", userID, day).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		plan = models.DailyPlan{UserID: userID, Date: day}
		if workoutPlan != nil {
			plan.WorkoutPlan = *workoutPlan
		}
		if dietPlan != nil {
			plan.DietPlan = *dietPlan
		}
		if err := config.DB.Create(&plan).Error; err != nil {
			return nil, err
		}
		EmitEvent(userID, "plan.saved", &plan)
		return &plan, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if workoutPlan != nil {
		updates["workout_plan"] = *workoutPlan
	}
	if dietPlan != nil {
		updates["diet_plan"] = *dietPlan
	}
	if len(updates) == 0 {
		return &plan, nil
	}
	if err := config.DB.Model(&plan).Updates(updates).Error; err != nil {
		return nil, err
	}
	EmitEvent(userID, "plan.saved", &plan)
	return &plan, nil
}

// SetCompletion flips the flag only when the plan belongs to userID. A
// mismatched owner is a silent no-op, indistinguishable from a real toggle,
// so plan ids cannot be probed across accounts.
func SetCompletion(userID, planID uint, completed bool) error {
	res := config.DB.Model(&models.DailyPlan{}).
		Where("id = ? AND user_id = ?", planID, userID).
		Update("completed", completed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		EmitEvent(userID, "plan.completed", map[string]any{"id": planID, "completed": completed})
	}
	return nil
}

// ListRecentPlans returns up to limit plans newest-first and prunes rows
// beyond the retention window. Day labels aren't sortable, so recency
// follows insertion order; checking off an old plan must not promote it.
func ListRecentPlans(userID uint, limit int) ([]models.DailyPlan, error) {
	if err := prunePlans(userID); err != nil {
		return nil, err
	}

	plans := make([]models.DailyPlan, 0, limit)
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&plans).Error
	return plans, err
}

func prunePlans(userID uint) error {
	var keep []uint
	err := config.DB.Model(&models.DailyPlan{}).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(planRetentionWindow).
		Pluck("id", &keep).Error
	if err != nil {
		return err
	}
	if len(keep) < planRetentionWindow {
		return nil
	}
	return config.DB.
		Where("user_id = ? AND id NOT IN ?", userID, keep).
		Delete(&models.DailyPlan{}).Error
}
