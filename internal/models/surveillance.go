package models

import (
	"time"
)

// SurveillanceStatus represents the status of a surveillance programme instance
type SurveillanceStatus string

const (
	SurveillanceActive    SurveillanceStatus = "active"
	SurveillanceCompleted SurveillanceStatus = "completed"
	SurveillanceCancelled SurveillanceStatus = "cancelled"
)

// Surveillance represents a recurring occupational health-monitoring
// programme instance linked to workplace exposure tracking. The numeric
// SurveillanceNo is what the pages forward as surveillance_id.
type Surveillance struct {
	BaseModel
	SurveillanceNo int                `gorm:"uniqueIndex" json:"surveillanceNo"`
	PatientID      string             `gorm:"size:36;index" json:"patientId"`
	ProgramName    string             `gorm:"size:255" json:"programName"`
	ExposureAgent  string             `gorm:"size:255" json:"exposureAgent,omitempty"`
	ExaminerName   string             `gorm:"size:255" json:"examinerName,omitempty"`
	StartedAt      *time.Time         `json:"startedAt,omitempty"`
	Status         SurveillanceStatus `gorm:"size:20;default:'active'" json:"status"`

	// Relation (not always preloaded)
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
