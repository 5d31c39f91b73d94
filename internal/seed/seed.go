// Package seed fills the users table with a known baseline for development
// and test databases. Every step checks for the email before creating, so a
// run can be repeated or resumed after a failure.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"user-seeder/internal/core/logger"
	"user-seeder/internal/core/metrics"
	"user-seeder/internal/domain"
)

const (
	BatchAdmin    = "admin"
	BatchTest     = "test"
	BatchRandom   = "random"
	BatchDomain   = "domain"
	BatchEdgeCase = "edge_case"
)

type FixedUser struct {
	Email    string
	Password string
	Verified bool
}

type Options struct {
	// Development enables the destructive clear before seeding.
	Development bool

	Admin     FixedUser
	TestUsers []FixedUser

	RandomCount    int
	RandomPassword string
	ProgressEvery  int

	Domains        []string
	DomainPassword string

	EdgeCaseEmails   []string
	EdgeCasePassword string
}

func DefaultOptions() Options {
	return Options{
		Admin: FixedUser{Email: "admin@example.com", Password: "AdminPassword123!", Verified: true},
		TestUsers: []FixedUser{
			{Email: "john.doe@example.com", Password: "TestPassword123!", Verified: true},
			{Email: "jane.smith@example.com", Password: "TestPassword123!", Verified: true},
			{Email: "unverified@example.com", Password: "TestPassword123!", Verified: false},
		},
		RandomCount:    25,
		RandomPassword: "FakerPassword123!",
		ProgressEvery:  5,
		Domains:        []string{"gmail.com", "yahoo.com", "hotmail.com", "company.com", "startup.io"},
		DomainPassword: "DomainTest123!",
		EdgeCaseEmails: []string{
			"user+tag@example.com",
			"user.with.dots@example.com",
			"user_with_underscores@example.com",
		},
		EdgeCasePassword: "EdgeCase123!",
	}
}

type Summary struct {
	Total      int64
	Verified   int64
	Unverified int64
}

type BatchResult struct {
	Created int
	Skipped int
}

type Report struct {
	Cleared  int64
	Admin    BatchResult
	Test     BatchResult
	Random   BatchResult
	Domain   BatchResult
	EdgeCase BatchResult
	Summary  Summary
}

type Seeder struct {
	store   domain.UserRepository
	gen     Generator
	log     *zap.Logger
	metrics *metrics.Recorder
	opts    Options
}

// New builds a Seeder. log and rec may be nil.
func New(store domain.UserRepository, gen Generator, log *zap.Logger, rec *metrics.Recorder, opts Options) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = 5
	}
	return &Seeder{store: store, gen: gen, log: log, metrics: rec, opts: opts}
}

// Run executes every step in order and stops at the first error.
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	rep := &Report{}
	var err error

	if rep.Cleared, err = s.ClearIfDevelopment(ctx); err != nil {
		return rep, fmt.Errorf("seed clear: %w", err)
	}

	s.log.Info("seeding users")

	admin, created, err := s.UpsertFixed(ctx, s.opts.Admin)
	if err != nil {
		return rep, fmt.Errorf("seed admin: %w", err)
	}
	rep.Admin = s.tally(BatchAdmin, created)
	s.log.Info("admin user ready", zap.String("email", admin.Email), zap.Bool("created", created))

	for _, fu := range s.opts.TestUsers {
		u, created, err := s.UpsertFixed(ctx, fu)
		if err != nil {
			return rep, fmt.Errorf("seed test user %s: %w", fu.Email, err)
		}
		r := s.tally(BatchTest, created)
		rep.Test.Created += r.Created
		rep.Test.Skipped += r.Skipped
		s.log.Info("test user ready",
			zap.String("email", u.Email),
			zap.Bool("verified", u.Verified),
			zap.Bool("created", created),
		)
	}

	if rep.Random, err = s.CreateRandomBatch(ctx, s.opts.RandomCount); err != nil {
		return rep, fmt.Errorf("seed random batch: %w", err)
	}
	if rep.Domain, err = s.CreateDomainBatch(ctx, s.opts.Domains); err != nil {
		return rep, fmt.Errorf("seed domain batch: %w", err)
	}
	if rep.EdgeCase, err = s.CreateEdgeCaseBatch(ctx, s.opts.EdgeCaseEmails); err != nil {
		return rep, fmt.Errorf("seed edge case batch: %w", err)
	}

	if rep.Summary, err = s.Summarize(ctx); err != nil {
		return rep, fmt.Errorf("seed summary: %w", err)
	}
	s.log.Info("seeding completed", logger.Elapsed(start))
	return rep, nil
}

// ClearIfDevelopment deletes every user when the seeder runs in development
// mode and does nothing otherwise.
func (s *Seeder) ClearIfDevelopment(ctx context.Context) (int64, error) {
	if !s.opts.Development {
		return 0, nil
	}
	s.log.Warn("clearing existing users")
	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Info("users cleared", zap.Int64("deleted", n))
	return n, nil
}

// UpsertFixed is find-or-create: an existing user is returned as is, never
// updated.
func (s *Seeder) UpsertFixed(ctx context.Context, fu FixedUser) (*domain.User, bool, error) {
	existing, err := s.store.FindByEmail(ctx, fu.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}
	u := &domain.User{Email: fu.Email, Password: fu.Password, Verified: fu.Verified}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

// CreateRandomBatch makes count attempts. An email the store already holds
// uses up its attempt.
func (s *Seeder) CreateRandomBatch(ctx context.Context, count int) (BatchResult, error) {
	var res BatchResult
	s.log.Info("creating random users", zap.Int("attempts", count))

	for i := 0; i < count; i++ {
		email, err := s.gen.UniqueEmail()
		if err != nil {
			return res, err
		}
		// drawn on every attempt so a seeded run replays identically
		verified := s.gen.Bool()

		created, err := s.createIfAbsent(ctx, BatchRandom, email, s.opts.RandomPassword, verified)
		if err != nil {
			return res, err
		}
		if !created {
			res.Skipped++
			continue
		}
		res.Created++
		if res.Created%s.opts.ProgressEvery == 0 {
			s.log.Info("random users progress",
				zap.Int("created", res.Created),
				zap.Int("attempt", i+1),
				zap.String("email", email),
				zap.Bool("verified", verified),
			)
		}
	}
	return res, nil
}

// CreateDomainBatch creates one verified <username>@<domain> user per domain.
func (s *Seeder) CreateDomainBatch(ctx context.Context, domains []string) (BatchResult, error) {
	var res BatchResult
	s.log.Info("creating users for testing scenarios", zap.Strings("domains", domains))

	for _, d := range domains {
		email := s.gen.Username() + "@" + d
		created, err := s.createIfAbsent(ctx, BatchDomain, email, s.opts.DomainPassword, true)
		if err != nil {
			return res, err
		}
		if !created {
			res.Skipped++
			continue
		}
		res.Created++
		s.log.Info("domain user created", zap.String("domain", d), zap.String("email", email))
	}
	return res, nil
}

func (s *Seeder) CreateEdgeCaseBatch(ctx context.Context, emails []string) (BatchResult, error) {
	var res BatchResult
	for _, email := range emails {
		created, err := s.createIfAbsent(ctx, BatchEdgeCase, email, s.opts.EdgeCasePassword, true)
		if err != nil {
			return res, err
		}
		if !created {
			res.Skipped++
			continue
		}
		res.Created++
		s.log.Info("edge case user created", zap.String("email", email))
	}
	return res, nil
}

// Summarize counts the whole table. Verified is NOT NULL, so
// Total == Verified + Unverified.
func (s *Seeder) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	var err error
	if sum.Total, err = s.store.Count(ctx); err != nil {
		return sum, err
	}
	if sum.Verified, err = s.store.CountByVerified(ctx, true); err != nil {
		return sum, err
	}
	if sum.Unverified, err = s.store.CountByVerified(ctx, false); err != nil {
		return sum, err
	}
	s.metrics.Totals(sum.Verified, sum.Unverified)
	s.log.Info("summary",
		zap.Int64("total", sum.Total),
		zap.Int64("verified", sum.Verified),
		zap.Int64("unverified", sum.Unverified),
	)
	return sum, nil
}

// createIfAbsent is the lookup-then-create pair. The window between the two
// calls is not guarded; a concurrent writer surfaces as a create error.
func (s *Seeder) createIfAbsent(ctx context.Context, batch, email, password string, verified bool) (bool, error) {
	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		s.metrics.Skipped(batch)
		return false, nil
	}
	u := &domain.User{Email: email, Password: password, Verified: verified}
	if err := s.store.Create(ctx, u); err != nil {
		return false, fmt.Errorf("create %s: %w", email, err)
	}
	s.metrics.Created(batch)
	return true, nil
}

func (s *Seeder) tally(batch string, created bool) BatchResult {
	if created {
		s.metrics.Created(batch)
		return BatchResult{Created: 1}
	}
	s.metrics.Skipped(batch)
	return BatchResult{Skipped: 1}
}
