package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	ROLE_RESIDENT = "Resident"
	ROLE_HELPER   = "Helper"
	ROLE_ADMIN    = "Admin"
)

// ValidRegistrationRole reports whether a role may be used for
// self-registration. Admin accounts are provisioned out of band.
func ValidRegistrationRole(role string) bool {
	return role == ROLE_RESIDENT || role == ROLE_HELPER
}

type User struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name              string     `json:"name"`
	ContactInfo       string     `json:"contact_info" gorm:"unique_index"`
	Location          string     `json:"location"`
	PasswordHash      string     `json:"-"`
	Role              string     `json:"role"`
	IsBlocked         bool       `json:"is_blocked" sql:"default:false"`
	ResetOTP          string     `json:"-"`
	ResetOTPExpiresAt *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
