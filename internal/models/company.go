package models

// Company represents an employer registered with the clinic for occupational
// health programmes. Looked up read-only by name or identifier; nullable
// columns are pointers so an absent value stays distinguishable from "".
type Company struct {
	BaseModel
	CompanyNo          int     `gorm:"uniqueIndex" json:"companyNo"`
	Name               string  `gorm:"size:255;index;not null" json:"name"`
	Address            *string `gorm:"size:255" json:"address,omitempty"`
	District           *string `gorm:"size:100" json:"district,omitempty"`
	State              *string `gorm:"size:100" json:"state,omitempty"`
	Postcode           *string `gorm:"size:20" json:"postcode,omitempty"`
	Telephone          *string `gorm:"size:30" json:"telephone,omitempty"`
	Email              *string `gorm:"size:255" json:"email,omitempty"`
	Fax                *string `gorm:"size:30" json:"fax,omitempty"`
	RegistrationNumber *string `gorm:"size:100" json:"registrationNumber,omitempty"`
	TotalWorkers       *int    `json:"totalWorkers,omitempty"`
}
