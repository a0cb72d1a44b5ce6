package insurance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-seedgen/internal/datagen"
)

// Claim statuses.
const (
	ClaimDenied   = "Denied"
	ClaimApproved = "Approved"
	ClaimSettled  = "Settled"
)

// severityFactors scales claim approval by incident year; a factor above
// one marks a year with unusually many large losses.
var severityFactors = map[int]float64{
	2017: 0.95,
	2018: 0.90,
	2019: 0.95,
	2020: 1.10,
	2021: 1.05,
	2022: 1.00,
	2023: 0.85,
	2024: 0.78,
	2025: 0.65,
}

const defaultSeverity = 0.90

// policyYears and policyYearWeights bias policy and registration dates
// toward recent years.
var (
	policyYears       = datagen.YearRange(2017, 2025)
	policyYearWeights = []float64{1.0, 1.15, 1.3, 1.45, 1.6, 1.75, 1.9, 2.05, 2.00}
)

const premiumBaseYear = 2017

// Severity returns the claim severity factor of an incident year.
func Severity(year int) float64 {
	if s, ok := severityFactors[year]; ok {
		return s
	}
	return defaultSeverity
}

// ClaimDecision is the outcome of adjudicating a claim.
type ClaimDecision struct {
	Status   string
	Approved float64
}

// DecideClaim adjudicates a claim of the requested amount for an incident
// in the given year. Approval probability and payout ratio scale with the
// year's severity, capped at 0.85 and 0.75 respectively. A denied claim
// pays nothing.
func DecideClaim(f *datagen.Faker, requested float64, incidentYear int) ClaimDecision {
	severity := Severity(incidentYear)
	approval := min(0.85, 0.65*severity)
	if f.Float64(0, 1) > approval {
		return ClaimDecision{Status: ClaimDenied}
	}

	ratio := min(0.75, f.Float64(0.40, 0.65)*severity)
	approved := decimal.NewFromFloat(requested).
		Mul(decimal.NewFromFloat(ratio)).
		Round(2)
	// Rounding must not push the payout above the requested amount.
	if approved.GreaterThan(decimal.NewFromFloat(requested)) {
		approved = decimal.NewFromFloat(requested)
	}

	status := ClaimApproved
	if f.Chance(0.75) {
		status = ClaimSettled
	}
	return ClaimDecision{Status: status, Approved: approved.InexactFloat64()}
}

// CreditScore derives a FICO style score from annual income. High earners
// rarely have bad credit and low earners rarely have perfect credit.
func CreditScore(f *datagen.Faker, income float64) int {
	score := 300 + int(income/200) + f.Int(-120, 180)
	score = max(300, min(850, score))

	switch {
	case income > 150000:
		score = max(score, f.Int(680, 850))
	case income < 50000:
		score = min(score, f.Int(300, 740))
	}
	return score
}

// Premium scales a product's base premium by a random loading and by 3%
// per year of inflation since 2017.
func Premium(f *datagen.Faker, base float64, start time.Time) float64 {
	inflation := 1 + float64(start.Year()-premiumBaseYear)*0.03
	return base * f.Float64(0.7, 1.8) * inflation
}

// PolicyEnd returns the end date of a policy. Life policies run for their
// term in years; every other category renews yearly.
func PolicyEnd(start time.Time, category string, termYears int) time.Time {
	if category == CategoryLife {
		return start.AddDate(0, 0, 365*termYears)
	}
	return start.AddDate(0, 0, 365)
}

// PolicyStart draws a weighted start date and moves it into
// [registration, today] when it falls outside.
func PolicyStart(f *datagen.Faker, registration, today time.Time) time.Time {
	start := datagen.SampleDate(f, policyYears, policyYearWeights)
	if start.Before(registration) || start.After(today) {
		start = f.Day(registration, today)
	}
	return start
}
