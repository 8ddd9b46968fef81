package db

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// RoleUser is the default role for registered accounts.
	RoleUser = "user"
	// RoleAdmin grants access to aggregate statistics and branding settings.
	RoleAdmin = "admin"
)

// User is an authenticated account. IDs are UUID strings so the
// partnership tie-break can compare them lexically.
type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"size:16;not null;default:user"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (u *User) BeforeCreate(*gorm.DB) error {
	if strings.TrimSpace(u.ID) == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// EnsureAdmin promotes the account with the given email to admin,
// creating nothing. Empty email is a no-op.
func EnsureAdmin(email string) error {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	return DB.Model(&User{}).Where("email = ?", trimmed).Update("role", RoleAdmin).Error
}

// HashPassword wraps bcrypt with the default cost.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
