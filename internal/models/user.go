package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	RoleNurse     Role = "nurse"
	RoleReception Role = "reception"
)

// User represents a clinic login account. A user may optionally be linked to
// a medical staff record, which the enrichment flow uses as the examiner of
// record when present.
type User struct {
	BaseModel
	Email     string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string  `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	FirstName string  `gorm:"size:100" json:"firstName"`
	LastName  string  `gorm:"size:100" json:"lastName"`
	Role      Role    `gorm:"size:20;default:'reception'" json:"role"`
	StaffID   *string `gorm:"size:36;index" json:"staffId,omitempty"`

	// Relation (not always preloaded)
	Staff *Staff `gorm:"foreignKey:StaffID" json:"-"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
