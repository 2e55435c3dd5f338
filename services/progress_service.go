package services

import (
	"sweatfix/config"
	"sweatfix/models"
)

// AppendProgress inserts a log line unconditionally. Numeric coercion to 0
// happens at the controller; by the time an entry reaches here every field
// is a concrete non-negative value.
func AppendProgress(entry *models.ProgressEntry) error {
	if err := config.DB.Create(entry).Error; err != nil {
		return err
	}
	EmitEvent(entry.UserID, "progress.logged", entry)
	return nil
}

// ListRecentProgress returns up to limit entries, newest first. Day labels
// are display strings, so recency follows insertion order.
func ListRecentProgress(userID uint, limit int) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0, limit)
	err := config.DB.
		Where("user_id = ?", userID).
		Order("id desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
