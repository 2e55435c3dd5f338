package models

import (
	"time"
)

// DailyPlan holds one workout/diet plan pair per user per day label.
// The (user_id, date) pair is unique; text upserts must leave Completed alone.
type DailyPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_plans_user_date" json:"user_id"`
	Date        string    `gorm:"not null;uniqueIndex:idx_plans_user_date" json:"date"`
	WorkoutPlan string    `gorm:"type:text" json:"workout_plan"`
	DietPlan    string    `gorm:"type:text" json:"diet_plan"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
