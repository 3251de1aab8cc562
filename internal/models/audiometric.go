package models

import (
	"time"
)

// AudiometricTest represents one recorded hearing assessment for a patient
// encounter. Historical rows are scanned for the employer's most recent
// regulatory approval number when prefilling a new test form.
type AudiometricTest struct {
	BaseModel
	PatientID       string     `gorm:"size:36;index" json:"patientId"`
	SurveillanceNo  int        `gorm:"index" json:"surveillanceNo"`
	ExaminationDate time.Time  `gorm:"index" json:"examinationDate"`
	ApprovalNumber  *string    `gorm:"size:100" json:"approvalNumber,omitempty"`
	ExaminerName    string     `gorm:"size:255" json:"examinerName,omitempty"`
	LeftEarAvgDB    *float64   `json:"leftEarAvgDb,omitempty"`
	RightEarAvgDB   *float64   `json:"rightEarAvgDb,omitempty"`
	Result          string     `gorm:"size:50" json:"result,omitempty"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`

	// Relation (not always preloaded)
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
