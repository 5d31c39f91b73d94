// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"user-seeder/internal/core/database"
	"user-seeder/internal/domain"
	"user-seeder/pkg/utils"
)

// OpenDB returns a migrated in-memory SQLite database and drops bcrypt to
// its minimum cost so hashing does not dominate test time.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()
	utils.BcryptCost = bcrypt.MinCost

	db, err := database.NewGorm(database.Opts{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
