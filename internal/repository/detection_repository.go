package repository

import (
	"fmt"

	"gorm.io/gorm"

	"moodtunes/internal/model"
)

type DetectionRepository struct {
	db *gorm.DB
}

func NewDetectionRepository(db *gorm.DB) *DetectionRepository {
	return &DetectionRepository{db: db}
}

func (r *DetectionRepository) Create(detection *model.Detection) error {
	if err := r.db.Create(detection).Error; err != nil {
		return fmt.Errorf("create detection failed: %w", err)
	}
	return nil
}

// ListByUID returns the most recent detections for a user, newest first.
func (r *DetectionRepository) ListByUID(uid string, limit int) ([]model.Detection, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var detections []model.Detection
	if err := r.db.
		Where("uid = ?", uid).
		Order("created_at DESC").
		Limit(limit).
		Find(&detections).Error; err != nil {
		return nil, fmt.Errorf("query detections by uid failed: %w", err)
	}
	return detections, nil
}
