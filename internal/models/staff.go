package models

// Staff represents a medical staff member (doctor, audiologist, nurse).
// Resolved either through the logged-in user's staff link or by exact
// first/last name match from a parsed examiner name.
type Staff struct {
	BaseModel
	FirstName      string  `gorm:"size:100;index:idx_staff_name" json:"firstName"`
	LastName       string  `gorm:"size:100;index:idx_staff_name" json:"lastName"`
	NationalID     *string `gorm:"size:50" json:"nationalId,omitempty"`
	Specialization *string `gorm:"size:255" json:"specialization,omitempty"`
	Qualification  *string `gorm:"size:255" json:"qualification,omitempty"`
	LicenseNumber  *string `gorm:"size:100" json:"licenseNumber,omitempty"`
	Email          *string `gorm:"size:255" json:"email,omitempty"`
	Phone          *string `gorm:"size:30" json:"phone,omitempty"`
	AltPhone       *string `gorm:"size:30" json:"altPhone,omitempty"`
	Address        *string `gorm:"size:255" json:"address,omitempty"`
	State          *string `gorm:"size:100" json:"state,omitempty"`
	District       *string `gorm:"size:100" json:"district,omitempty"`
	Postcode       *string `gorm:"size:20" json:"postcode,omitempty"`
	Position       *string `gorm:"size:100" json:"position,omitempty"`
	Department     *string `gorm:"size:100" json:"department,omitempty"`
}
