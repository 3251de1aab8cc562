package models

import (
	"time"
)

// Gender enum
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Patient represents a clinic patient. Patient records are created and owned
// by the patient-management module; the audiometry pages only read them.
type Patient struct {
	BaseModel
	PatientCode string     `gorm:"uniqueIndex;size:50" json:"patientCode"`
	FirstName   string     `gorm:"size:100" json:"firstName"`
	LastName    string     `gorm:"size:100" json:"lastName"`
	NationalID  string     `gorm:"size:50;index" json:"nationalId"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      Gender     `gorm:"size:10" json:"gender"`
	Phone       string     `gorm:"size:30" json:"phone,omitempty"`
	CompanyName string     `gorm:"size:255;index" json:"companyName,omitempty"`

	// Relations (not always preloaded)
	AudiometricTests      []AudiometricTest     `gorm:"foreignKey:PatientID" json:"-"`
	OccupationalHistories []OccupationalHistory `gorm:"foreignKey:PatientID" json:"-"`
}

// FullName joins the name parts the way the forms display them.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
