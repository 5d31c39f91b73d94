package seed

import (
	"errors"

	"github.com/brianvoe/gofakeit/v6"
)

var ErrUniqueExhausted = errors.New("seed: no unique value left")

// Generator supplies fake data. UniqueEmail never returns the same address
// twice for one generator; the store may still have it.
type Generator interface {
	UniqueEmail() (string, error)
	Username() string
	Bool() bool
}

const defaultMaxRetries = 10000

type FakeGenerator struct {
	faker      *gofakeit.Faker
	email      func() string
	seen       map[string]struct{}
	maxRetries int
}

// NewFakeGenerator returns a gofakeit-backed generator. A zero seed is
// random; any other seed replays the same sequence.
func NewFakeGenerator(seed int64) *FakeGenerator {
	f := gofakeit.New(seed)
	return &FakeGenerator{
		faker:      f,
		email:      f.Email,
		seen:       make(map[string]struct{}),
		maxRetries: defaultMaxRetries,
	}
}

func (g *FakeGenerator) UniqueEmail() (string, error) {
	for i := 0; i < g.maxRetries; i++ {
		e := g.email()
		if _, dup := g.seen[e]; dup {
			continue
		}
		g.seen[e] = struct{}{}
		return e, nil
	}
	return "", ErrUniqueExhausted
}

func (g *FakeGenerator) Username() string { return g.faker.Username() }

func (g *FakeGenerator) Bool() bool { return g.faker.Bool() }
