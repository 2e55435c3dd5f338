package models

import (
	"time"
)

// ProgressEntry is one workout/nutrition log line. Append-only; same-day
// entries are distinguished by insertion order, not by timestamp.
type ProgressEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Date        string    `gorm:"index;not null" json:"date"` // display day label, e.g. "Aug 28"
	WorkoutName string    `json:"workout_name"`
	Calories    int       `json:"calories"`
	Protein     int       `json:"protein"`
	Water       int       `json:"water"`
	Carbs       int       `gorm:"default:0" json:"carbs"`
	Fats        int       `gorm:"default:0" json:"fats"`
	CreatedAt   time.Time `json:"-"`
}
