//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"regexp"
	"testing"
	"time"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker()
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	if f1.Seed() != seed {
		t.Errorf("Seed() = %d, want %d", f1.Seed(), seed)
	}

	// Same seed should produce same sequence, including package helpers
	for i := 0; i < 10; i++ {
		if v1, v2 := f1.Int(0, 1000), f2.Int(0, 1000); v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
		if s1, s2 := f1.RandomString(5, VINCharset), f2.RandomString(5, VINCharset); s1 != s2 {
			t.Errorf("Same seed produced different strings: %s != %s", s1, s2)
		}
		if n1, n2 := f1.FirstName(), f2.FirstName(); n1 != n2 {
			t.Errorf("Same seed produced different names: %s != %s", n1, n2)
		}
	}
}

func TestFakerPhone(t *testing.T) {
	f := NewFaker()
	phone := f.Phone()
	if !regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`).MatchString(phone) {
		t.Errorf("Phone has unexpected format: %s", phone)
	}
}

func TestFakerLicensePlate(t *testing.T) {
	f := NewFaker()
	plate := f.LicensePlate()
	if !regexp.MustCompile(`^\d[A-Z]{3}\d{3}$`).MatchString(plate) {
		t.Errorf("LicensePlate has unexpected format: %s", plate)
	}
}

func TestFakerStrings(t *testing.T) {
	f := NewFaker()
	tests := []struct {
		name string
		fn   func() string
	}{
		{"FirstName", f.FirstName},
		{"LastName", f.LastName},
		{"Street", f.Street},
		{"City", f.City},
		{"Zip", f.Zip},
		{"Company", f.Company},
		{"CarModel", f.CarModel},
		{"Word", f.Word},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.fn() == "" {
				t.Errorf("%s returned empty string", tt.name)
			}
		})
	}
}

func TestFakerParagraph(t *testing.T) {
	f := NewFaker()
	if p := f.Paragraph(2, 8); p == "" {
		t.Error("Paragraph returned empty string")
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Int(5, 10)
		if v < 5 || v > 10 {
			t.Errorf("Int %d not in range [5, 10]", v)
		}
	}
}

func TestFakerFloat64(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Float64(1.5, 3.5)
		if v < 1.5 || v > 3.5 {
			t.Errorf("Float64 %f not in range [1.5, 3.5]", v)
		}
	}
}

func TestFakerChance(t *testing.T) {
	f := NewFakerWithSeed(1)
	for i := 0; i < 100; i++ {
		if f.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
	}

	hits := 0
	for i := 0; i < 2000; i++ {
		if f.Chance(0.8) {
			hits++
		}
	}
	if hits < 1400 || hits > 1800 {
		t.Errorf("Chance(0.8) hit %d of 2000", hits)
	}
}

func TestFakerDay(t *testing.T) {
	f := NewFaker()
	start := Date(2024, 2, 27)
	end := Date(2024, 3, 2)

	seen := make(map[time.Time]bool)
	for i := 0; i < 500; i++ {
		d := f.Day(start, end)
		if d.Before(start) || d.After(end) {
			t.Fatalf("Day %v outside [%v, %v]", d, start, end)
		}
		seen[d] = true
	}
	if len(seen) != 5 {
		t.Errorf("Expected all 5 days (leap year) to be drawn, got %d", len(seen))
	}

	if got := f.Day(end, start); !got.Equal(end) {
		t.Errorf("Reversed range should return start, got %v", got)
	}
}

func TestChoose(t *testing.T) {
	f := NewFaker()
	items := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 100; i++ {
		chosen := Choose(f, items)
		found := false
		for _, item := range items {
			if item == chosen {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Choose returned item not in slice: %s", chosen)
		}
	}
}

func TestChooseEmpty(t *testing.T) {
	f := NewFaker()
	var items []string

	chosen := Choose(f, items)
	if chosen != "" {
		t.Errorf("Choose on empty slice should return zero value, got: %s", chosen)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFaker()
	items := []string{"a", "b", "c"}
	weights := []int{1, 2, 7} // c should be chosen ~70% of the time

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		counts[ChooseWeighted(f, items, weights)]++
	}

	if counts["c"] < counts["a"] || counts["c"] < counts["b"] {
		t.Errorf("Weighted choice distribution unexpected: %v", counts)
	}
}

func TestChooseProportional(t *testing.T) {
	f := NewFakerWithSeed(99)
	items := []string{"Female", "Male", "Non-Binary"}
	weights := []float64{39.93, 46.18, 13.89}

	counts := make(map[string]int)
	for i := 0; i < 5000; i++ {
		counts[ChooseProportional(f, items, weights)]++
	}

	if counts["Male"] < counts["Non-Binary"] || counts["Female"] < counts["Non-Binary"] {
		t.Errorf("Proportional choice distribution unexpected: %v", counts)
	}
	if len(counts) != 3 {
		t.Errorf("Expected all items drawn, got %v", counts)
	}

	// Zero weight is never drawn
	for i := 0; i < 500; i++ {
		if ChooseProportional(f, []int{1, 2}, []float64{0, 1}) != 2 {
			t.Fatal("Zero-weight item was chosen")
		}
	}
}

func TestShuffle(t *testing.T) {
	f := NewFaker()
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(f, items)

	sum := 0
	for _, v := range items {
		sum += v
	}
	if len(items) != 8 || sum != 36 {
		t.Errorf("Shuffle lost or changed elements: %v", items)
	}
}

func TestFakerDigits(t *testing.T) {
	f := NewFaker()
	s := f.Digits(8)
	if len(s) != 8 {
		t.Errorf("Digits(8) should return 8 chars, got %d", len(s))
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			t.Errorf("Digits should only contain digits, got: %c", c)
		}
	}
}

func TestFakerRandomString(t *testing.T) {
	f := NewFaker()
	charset := "ABC123"
	s := f.RandomString(20, charset)
	if len(s) != 20 {
		t.Errorf("RandomString(20, ...) should return 20 chars, got %d", len(s))
	}
	for _, c := range s {
		if !containsRune(charset, c) {
			t.Errorf("RandomString should only use charset chars, got: %c", c)
		}
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   float64
	}{
		{1234.565, 2, 1234.57},
		{0.123456, 4, 0.1235},
		{-2.5, 0, -3},
		{10, 2, 10},
	}
	for _, tt := range tests {
		if got := Round(tt.in, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
		}
	}
	if got := Money(19.999); got != 20 {
		t.Errorf("Money(19.999) = %v", got)
	}
}

func TestTruncate(t *testing.T) {
	s1 := Truncate("hello world", 5)
	if s1 != "hello" {
		t.Errorf("Truncate should truncate to 5, got: %s", s1)
	}

	s2 := Truncate("hi", 10)
	if s2 != "hi" {
		t.Errorf("Truncate should not modify shorter string, got: %s", s2)
	}

	s3 := Truncate("exact", 5)
	if s3 != "exact" {
		t.Errorf("Truncate should keep exact length string, got: %s", s3)
	}
}

// Benchmarks
func BenchmarkFakerInt(b *testing.B) {
	f := NewFaker()
	for i := 0; i < b.N; i++ {
		f.Int(0, 1000)
	}
}

func BenchmarkChooseProportional(b *testing.B) {
	f := NewFaker()
	years := YearRange(2017, 2025)
	weights := []float64{1.0, 1.15, 1.3, 1.45, 1.6, 1.75, 1.9, 2.05, 2.00}
	for i := 0; i < b.N; i++ {
		ChooseProportional(f, years, weights)
	}
}
