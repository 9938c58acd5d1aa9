package models

import "time"

// Setting is a key/value row for runtime-tunable configuration, e.g. the
// report accuracy threshold. Absent keys are not an error; callers apply
// their configured default.
type Setting struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// SettingAccuracyThreshold is the integer percent below which a topic is
// flagged as needing attention.
const SettingAccuracyThreshold = "accuracy_threshold"
