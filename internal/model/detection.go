package model

import "time"

// Detection is one recorded emotion-detection event. UID is empty when the
// caller was anonymous.
type Detection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UID       string    `gorm:"size:128;index" json:"uid,omitempty"`
	Emotion   string    `gorm:"size:16;not null" json:"emotion"`
	CreatedAt time.Time `json:"created_at"`
}
