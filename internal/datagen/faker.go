//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides data generation utilities.
package datagen

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// Faker provides fake data generation using gofakeit. Every draw, including
// the helpers in this package, goes through the same seeded source so a run
// is reproducible from its seed.
type Faker struct {
	faker *gofakeit.Faker
	seed  uint64
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return NewFakerWithSeed(uint64(time.Now().UnixNano()))
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
		seed:  seed,
	}
}

// Seed returns the seed the faker was created with.
func (f *Faker) Seed() uint64 {
	return f.seed
}

// FirstName generates a random first name.
func (f *Faker) FirstName() string {
	return f.faker.FirstName()
}

// LastName generates a random last name.
func (f *Faker) LastName() string {
	return f.faker.LastName()
}

// Phone generates a US style phone number, e.g. (555) 123-4567.
func (f *Faker) Phone() string {
	return f.faker.Numerify("(###) ###-####")
}

// Street generates a random street address.
func (f *Faker) Street() string {
	return f.faker.Street()
}

// City generates a random city name.
func (f *Faker) City() string {
	return f.faker.City()
}

// Zip generates a random US ZIP code.
func (f *Faker) Zip() string {
	return f.faker.Zip()
}

// Company generates a random company name.
func (f *Faker) Company() string {
	return f.faker.Company()
}

// DomainName generates a company style domain such as acmecorp.com.
func (f *Faker) DomainName() string {
	return f.faker.DomainName()
}

// CarModel generates a vehicle model name.
func (f *Faker) CarModel() string {
	return f.faker.CarModel()
}

// Word generates a random word.
func (f *Faker) Word() string {
	return f.faker.Word()
}

// Sentence generates a random sentence.
func (f *Faker) Sentence(wordCount int) string {
	return f.faker.Sentence(wordCount)
}

// Paragraph generates a paragraph of the given number of sentences.
func (f *Faker) Paragraph(sentences, wordsPerSentence int) string {
	return f.faker.Paragraph(1, sentences, wordsPerSentence, " ")
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Chance returns true with probability p.
func (f *Faker) Chance(p float64) bool {
	return f.faker.Float64Range(0, 1) < p
}

// Bool generates a random boolean.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// Digits generates a random string of digits of length n.
func (f *Faker) Digits(n int) string {
	return f.faker.DigitN(uint(n))
}

// RandomString generates a string from the given character set.
func (f *Faker) RandomString(length int, charset string) string {
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = charset[f.Int(0, len(charset)-1)]
	}
	return string(result)
}

// LicensePlate generates a plate such as 7KQM214.
func (f *Faker) LicensePlate() string {
	return f.Digits(1) + f.RandomString(3, upperLetters) + f.Digits(3)
}

// Day returns a date drawn uniformly from the calendar days in
// [start, end]. A reversed range yields start.
func (f *Faker) Day(start, end time.Time) time.Time {
	start, end = DateOnly(start), DateOnly(end)
	days := DaysBetween(start, end)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, f.Int(0, days))
}

// Shuffle permutes items in place.
func Shuffle[T any](f *Faker, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := f.Int(0, i)
		items[i], items[j] = items[j], items[i]
	}
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseWeighted returns a random element based on integer weights.
func ChooseWeighted[T any](f *Faker, items []T, weights []int) T {
	if len(items) == 0 || len(weights) == 0 {
		var zero T
		return zero
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}

	r := f.Int(1, totalWeight)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}

	return items[len(items)-1]
}

// ChooseProportional returns a random element using non-normalized float
// weights. Weights only need to be proportions; they need not sum to 1.
func ChooseProportional[T any](f *Faker, items []T, weights []float64) T {
	if len(items) == 0 || len(weights) == 0 {
		var zero T
		return zero
	}

	var total float64
	for _, w := range weights {
		total += w
	}

	r := f.Float64(0, total)
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if r < cumulative {
			return items[i]
		}
	}

	return items[min(len(items), len(weights))-1]
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Money rounds v to cents.
func Money(v float64) float64 {
	return Round(v, 2)
}

// Truncate truncates a string to max length if needed.
func Truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return strings.TrimSpace(s[:maxLen])
	}
	return s
}

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"

	// VINCharset is the alphabet used for vehicle identification numbers.
	VINCharset = upperLetters + digits
)
