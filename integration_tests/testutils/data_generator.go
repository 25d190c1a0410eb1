package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed the generator was built with, for reproducing failures.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// PlayerNames returns count distinct first names.
func (g *TestDataGenerator) PlayerNames(count int) []string {
	return g.distinct(count, g.faker.FirstName)
}

// GameNames returns count distinct board game style names.
func (g *TestDataGenerator) GameNames(count int) []string {
	return g.distinct(count, func() string {
		return g.faker.AdjectiveDescriptive() + " " + g.faker.NounConcrete()
	})
}

func (g *TestDataGenerator) distinct(count int, next func() string) []string {
	seen := make(map[string]bool, count)
	out := make([]string, 0, count)
	for len(out) < count {
		v := next()
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
