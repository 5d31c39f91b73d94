package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"user-seeder/pkg/utils"
)

var ErrInvalidUser = errors.New("invalid user")

var validate = validator.New(validator.WithRequiredStructEnabled())

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email" validate:"required,email,max=191"`
	Password     string    `gorm:"-" json:"-" validate:"required,min=8,max=72"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Verified     bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// Validate checks the fields the store requires before insert.
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	return nil
}

// BeforeCreate assigns the ID and turns the plaintext password into a bcrypt
// hash. The plaintext is cleared once hashed.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = utils.NewID()
	}
	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	u.PasswordHash = hash
	u.Password = ""
	return nil
}

// UserRepository is the persistence surface the seeder needs.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByVerified(ctx context.Context, verified bool) (int64, error)
}
