package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"user-seeder/pkg/utils"
)

func TestUser_Validate(t *testing.T) {
	cases := []struct {
		email string
		pw    string
		ok    bool
	}{
		{"admin@example.com", "AdminPassword123!", true},
		{"user+tag@example.com", "EdgeCase123!", true},
		{"user.with.dots@example.com", "EdgeCase123!", true},
		{"user_with_underscores@example.com", "EdgeCase123!", true},
		{"", "EdgeCase123!", false},
		{"plainaddress", "EdgeCase123!", false},
		{"a@example.com", "", false},
		{"a@example.com", "short", false},
	}
	for _, tc := range cases {
		u := &User{Email: tc.email, Password: tc.pw}
		err := u.Validate()
		if tc.ok {
			assert.NoError(t, err, tc.email)
		} else {
			assert.ErrorIs(t, err, ErrInvalidUser, "%q/%q", tc.email, tc.pw)
		}
	}
}

func TestUser_BeforeCreateHashes(t *testing.T) {
	utils.BcryptCost = bcrypt.MinCost
	u := &User{Email: "john.doe@example.com", Password: "TestPassword123!", Verified: true}

	require.NoError(t, u.BeforeCreate(nil))
	assert.NotEmpty(t, u.ID)
	assert.Empty(t, u.Password)
	assert.True(t, utils.CheckPassword("TestPassword123!", u.PasswordHash))
	assert.False(t, utils.CheckPassword("wrong", u.PasswordHash))
}

func TestUser_BeforeCreateKeepsID(t *testing.T) {
	utils.BcryptCost = bcrypt.MinCost
	u := &User{ID: "fixed-id", Email: "jane.smith@example.com", Password: "TestPassword123!"}
	require.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, "fixed-id", u.ID)
}
