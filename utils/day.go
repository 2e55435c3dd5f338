package utils

import (
	"time"
)

// DayLabelFormat is the display day label the dashboard uses, e.g. "Aug 28".
// Labels scope one DailyPlan per user per day; they are not sortable dates.
const DayLabelFormat = "Jan 02"

// TodayLabel returns the day label for "today" in server-local time.
func TodayLabel() string {
	return time.Now().Format(DayLabelFormat)
}
