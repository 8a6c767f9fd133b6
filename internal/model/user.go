package model

import (
	"golang.org/x/crypto/bcrypt"
)

// User roles. A commercial manages the catalogue and the user accounts;
// a vendeur only records sales and returns.
const (
	RoleCommercial = "commercial"
	RoleVendeur    = "vendeur"
)

// User represents an authenticated user in the system
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username" validate:"required"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role     string `gorm:"type:varchar(20);not null" json:"role" validate:"required,oneof=commercial vendeur"`
	Nom      string `gorm:"type:varchar(255)" json:"nom"`
	Prenom   string `gorm:"type:varchar(255)" json:"prenom"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsCommercial reports whether the user holds the commercial role.
func (u *User) IsCommercial() bool {
	return u.Role == RoleCommercial
}
