package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/community-help/portal-api/schema"
)

var (
	ErrAccountNotFound = fmt.Errorf("account not found")
	ErrAccountTaken    = fmt.Errorf("an account with this contact info already exists")
)

// CreateAccount registers a user into the community help portal.
func (s *CommunityStore) CreateAccount(name, contactInfo, location, passwordHash, role string) (*schema.User, error) {
	u := schema.User{
		Name:         name,
		ContactInfo:  contactInfo,
		Location:     location,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &u, nil
}

// GetAccount returns the user of a given id
func (s *CommunityStore) GetAccount(id uuid.UUID) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetAccountByContact returns the user registered with a contact address
func (s *CommunityStore) GetAccountByContact(contactInfo string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("contact_info = ?", contactInfo).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListMembers returns all residents and helpers, newest first. Admin
// accounts are excluded from the member directory.
func (s *CommunityStore) ListMembers() ([]schema.User, error) {
	users := []schema.User{}

	if err := s.ormDB.
		Where("role IN (?)", []string{schema.ROLE_RESIDENT, schema.ROLE_HELPER}).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// SetAccountBlocked flips the moderation block flag for a member account.
func (s *CommunityStore) SetAccountBlocked(id uuid.UUID, blocked bool) error {
	result := s.ormDB.Model(schema.User{}).
		Where("id = ? AND role IN (?)", id, []string{schema.ROLE_RESIDENT, schema.ROLE_HELPER}).
		Update("is_blocked", blocked)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// SetResetOTP stores a password-reset one-time code with its expiry on the
// account row. The code is compared and the expiry checked at read time.
func (s *CommunityStore) SetResetOTP(contactInfo, otp string, expiresAt time.Time) error {
	result := s.ormDB.Model(schema.User{}).
		Where("contact_info = ?", contactInfo).
		Updates(map[string]interface{}{
			"reset_otp":            otp,
			"reset_otp_expires_at": expiresAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// ClearResetOTP removes any outstanding password-reset code.
func (s *CommunityStore) ClearResetOTP(contactInfo string) error {
	return s.ormDB.Model(schema.User{}).
		Where("contact_info = ?", contactInfo).
		Updates(map[string]interface{}{
			"reset_otp":            "",
			"reset_otp_expires_at": nil,
		}).Error
}

// UpdatePassword replaces the password hash and clears any reset code in
// the same write.
func (s *CommunityStore) UpdatePassword(contactInfo, passwordHash string) error {
	result := s.ormDB.Model(schema.User{}).
		Where("contact_info = ?", contactInfo).
		Updates(map[string]interface{}{
			"password_hash":        passwordHash,
			"reset_otp":            "",
			"reset_otp_expires_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// UserStats counts registered members per role.
func (s *CommunityStore) UserStats() (*UserStats, error) {
	var stats UserStats

	if err := s.ormDB.Raw(
		`SELECT
			COUNT(*) AS total_users,
			SUM(CASE WHEN role = ? THEN 1 ELSE 0 END) AS total_residents,
			SUM(CASE WHEN role = ? THEN 1 ELSE 0 END) AS total_helpers
		FROM users
		WHERE role IN (?, ?)`,
		schema.ROLE_RESIDENT,
		schema.ROLE_HELPER,
		schema.ROLE_RESIDENT,
		schema.ROLE_HELPER,
	).Scan(&stats).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
