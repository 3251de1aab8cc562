package models

// OccupationalHistory represents one employment row for a patient. The
// patient list page joins on its CompanyName to scope listings by employer.
type OccupationalHistory struct {
	BaseModel
	PatientID    string `gorm:"size:36;index" json:"patientId"`
	CompanyName  string `gorm:"size:255;index" json:"companyName"`
	JobTitle     string `gorm:"size:255" json:"jobTitle,omitempty"`
	YearsExposed *int   `json:"yearsExposed,omitempty"`
	NoiseExposed bool   `gorm:"default:false" json:"noiseExposed"`

	// Relation (not always preloaded)
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
