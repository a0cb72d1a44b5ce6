//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package insurance

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pgEdge/pgedge-seedgen/internal/datagen"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/pipeline"
)

// Product categories.
const (
	CategoryAuto   = "Auto"
	CategoryHome   = "Home"
	CategoryLife   = "Life"
	CategoryHealth = "Health"
)

// Reference data
var categories = []string{CategoryAuto, CategoryHome, CategoryLife, CategoryHealth}
var planTiers = []string{"Standard", "Premium", "Basic", "Elite", "Plus"}
var usStates = []string{"CA", "TX", "FL", "NY", "PA", "IL", "OH", "GA", "NC", "MI"}
var vehicleMakes = []string{"Toyota", "Honda", "Ford", "Chevrolet", "Nissan", "BMW", "Mercedes", "Hyundai", "Kia", "Volkswagen"}
var propertyTypes = []string{"Single-Family", "Condo", "Townhouse", "Apartment", "Multi-Family"}
var constructionTypes = []string{"Wood", "Brick", "Concrete", "Steel"}
var relationships = []string{"Spouse", "Child", "Parent", "Sibling"}
var healthRatings = []string{"Excellent", "Good", "Fair", "Poor"}
var maritalStatuses = []string{"Single", "Married", "Divorced", "Widowed"}
var paymentMethods = []string{"Credit Card", "Bank Transfer", "Check", "Auto-Debit"}
var deductibles = []float64{250, 500, 1000, 2000, 5000}
var lifeTerms = []int{10, 20, 30}

var genders = []string{"Female", "Male", "Non-Binary"}
var genderWeights = []float64{39.93, 46.18, 13.89}

var policyStatuses = []string{"Active", "Expired", "Cancelled", "Renewed"}
var policyStatusWeights = []float64{0.6, 0.2, 0.1, 0.1}

var customerStyle = datagen.EmailStyle{
	Domains:   []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com", "protonmail.com", "icloud.com"},
	Decorated: true,
	Shuffle:   true,
}

func stages() []pipeline.Stage {
	return []pipeline.Stage{
		{
			Name:    "branches",
			Outputs: []string{TableBranches},
			Run:     generateBranches,
		},
		{
			Name:    "agents",
			Inputs:  []string{TableBranches},
			Outputs: []string{TableAgents},
			Run:     generateAgents,
		},
		{
			Name:    "products",
			Outputs: []string{TableProducts},
			Run:     generateProducts,
		},
		{
			Name:    "customers",
			Outputs: []string{TableCustomers},
			Run:     generateCustomers,
		},
		{
			Name:   "policies",
			Inputs: []string{TableCustomers, TableAgents, TableBranches, TableProducts},
			Outputs: []string{
				TablePolicies, TableAutoDetails, TableHomeDetails, TableLifeDetails, TableHealthDetails,
			},
			Run: generatePolicies,
		},
		{
			Name:    "claims",
			Inputs:  []string{TablePolicies},
			Outputs: []string{TableClaims},
			Run:     generateClaims,
		},
		{
			Name:    "payments",
			Inputs:  []string{TablePolicies, TableClaims},
			Outputs: []string{TablePayments},
			Run:     generatePayments,
		},
	}
}

func generateBranches(ctx context.Context, env *pipeline.Env) error {
	f := env.Faker
	opened := env.Today.AddDate(-20, 0, 0)
	latest := env.Today.AddDate(-5, 0, 0)

	return env.Populate(ctx, "branches", env.Count(TableBranches), func(i int) (pipeline.Outcome, error) {
		return pipeline.Emit(pipeline.Row(TableBranches,
			i,
			f.City()+" Branch",
			f.Street(),
			f.City(),
			datagen.Choose(f, usStates),
			f.Zip(),
			f.Day(opened, latest),
			f.Int(15, 80),
		)), nil
	})
}

func generateAgents(ctx context.Context, env *pipeline.Env) error {
	branches, err := env.Keys(ctx, TableBranches, "BranchID")
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		return fmt.Errorf("%s is empty", TableBranches)
	}

	f := env.Faker
	hiredFrom := env.Today.AddDate(-15, 0, 0)

	return env.Populate(ctx, "agents", env.Count(TableAgents), func(i int) (pipeline.Outcome, error) {
		first, last := f.FirstName(), f.LastName()
		// Agents use their agency's domain.
		style := datagen.EmailStyle{Domains: []string{f.DomainName()}}
		return pipeline.Emit(pipeline.Row(TableAgents,
			i,
			first,
			last,
			f.Phone(),
			datagen.GenerateEmail(f, style, first, last, env.Unique("email")),
			f.Company(),
			f.Digits(8),
			f.Day(hiredFrom, env.Today),
			datagen.Round(f.Float64(0.05, 0.15), 4),
			datagen.Choose(f, usStates),
			f.Int(1, 5),
			f.Chance(0.9),
			datagen.Choose(f, branches),
		)), nil
	})
}

func generateProducts(ctx context.Context, env *pipeline.Env) error {
	f := env.Faker
	launchedFrom := env.Today.AddDate(-10, 0, 0)
	launchedTo := env.Today.AddDate(-1, 0, 0)

	return env.Populate(ctx, "products", env.Count(TableProducts), func(i int) (pipeline.Outcome, error) {
		category := datagen.Choose(f, categories)
		return pipeline.Emit(pipeline.Row(TableProducts,
			i,
			fmt.Sprintf("%s %s Plan", category, datagen.Choose(f, planTiers)),
			category,
			datagen.Truncate(f.Paragraph(3, 8), 200),
			datagen.Money(f.Float64(300, 3000)),
			datagen.Money(f.Float64(50000, 1000000)),
			true,
			f.Day(launchedFrom, launchedTo),
		)), nil
	})
}

func generateCustomers(ctx context.Context, env *pipeline.Env) error {
	f := env.Faker
	oldest := env.Today.AddDate(-85, 0, 0)
	youngest := env.Today.AddDate(-18, 0, 0)

	return env.Populate(ctx, "customers", env.Count(TableCustomers), func(i int) (pipeline.Outcome, error) {
		gender := datagen.ChooseProportional(f, genders, genderWeights)
		first, last := f.FirstName(), f.LastName()
		registered := datagen.MinDate(datagen.SampleDate(f, policyYears, policyYearWeights), env.Today)
		income := datagen.Money(f.Float64(30000, 200000))

		return pipeline.Emit(pipeline.Row(TableCustomers,
			i,
			first,
			last,
			f.Day(oldest, youngest),
			gender,
			f.Street(),
			f.City(),
			datagen.Choose(f, usStates),
			f.Zip(),
			"USA",
			f.Phone(),
			datagen.GenerateEmail(f, customerStyle, first, last, env.Unique("email")),
			income,
			datagen.Choose(f, maritalStatuses),
			f.Int(0, 5),
			CreditScore(f, income),
			datagen.Round(f.Float64(0, 0.4), 4),
			registered,
		)), nil
	})
}

type product struct {
	category    string
	basePremium float64
}

type customer struct {
	id         int64
	registered time.Time
}

func loadProducts(ctx context.Context, env *pipeline.Env) (map[int64]product, error) {
	products := make(map[int64]product)
	cols := []string{"ProductID", "ProductCategory", "BasePremium"}
	err := env.Select(ctx, TableProducts, cols, nil, func(v []any) error {
		id, err := db.AsInt64(v[0])
		if err != nil {
			return err
		}
		base, err := db.AsFloat64(v[2])
		if err != nil {
			return err
		}
		products[id] = product{category: db.AsString(v[1]), basePremium: base}
		return nil
	})
	return products, err
}

func loadCustomers(ctx context.Context, env *pipeline.Env) ([]customer, error) {
	var customers []customer
	cols := []string{"CustomerID", "RegistrationDate"}
	err := env.Select(ctx, TableCustomers, cols, nil, func(v []any) error {
		id, err := db.AsInt64(v[0])
		if err != nil {
			return err
		}
		registered, err := db.AsTime(v[1])
		if err != nil {
			return err
		}
		customers = append(customers, customer{id: id, registered: registered})
		return nil
	})
	return customers, err
}

// loadAgentsByBranch returns every agent id and the agents of each branch.
func loadAgentsByBranch(ctx context.Context, env *pipeline.Env) ([]int64, map[int64][]int64, error) {
	var all []int64
	byBranch := make(map[int64][]int64)
	err := env.Select(ctx, TableAgents, []string{"AgentID", "BranchID"}, nil, func(v []any) error {
		agent, err := db.AsInt64(v[0])
		if err != nil {
			return err
		}
		branch, err := db.AsInt64(v[1])
		if err != nil {
			return err
		}
		all = append(all, agent)
		byBranch[branch] = append(byBranch[branch], agent)
		return nil
	})
	return all, byBranch, err
}

func generatePolicies(ctx context.Context, env *pipeline.Env) error {
	products, err := loadProducts(ctx, env)
	if err != nil {
		return err
	}
	customers, err := loadCustomers(ctx, env)
	if err != nil {
		return err
	}
	agents, agentsByBranch, err := loadAgentsByBranch(ctx, env)
	if err != nil {
		return err
	}
	branches, err := env.Keys(ctx, TableBranches, "BranchID")
	if err != nil {
		return err
	}
	if len(customers) == 0 || len(agents) == 0 || len(branches) == 0 {
		return fmt.Errorf("policies need customers, agents and branches")
	}

	f := env.Faker
	productCount := env.Count(TableProducts)

	return env.Populate(ctx, "policies", env.Count(TablePolicies), func(i int) (pipeline.Outcome, error) {
		c := datagen.Choose(f, customers)
		productID := int64(f.Int(1, max(1, productCount)))
		branch := datagen.Choose(f, branches)

		// Prefer agents from the same branch.
		agent := datagen.Choose(f, agents)
		if local := agentsByBranch[branch]; len(local) > 0 && f.Chance(0.8) {
			agent = datagen.Choose(f, local)
		}

		p, ok := products[productID]
		if !ok {
			return pipeline.Skip("product not found"), nil
		}

		start := PolicyStart(f, c.registered, env.Today)
		term := datagen.Choose(f, lifeTerms)
		premium := Premium(f, p.basePremium, start)
		coverage := premium * f.Float64(50, 300)

		row := pipeline.Row(TablePolicies,
			i,
			c.id,
			agent,
			branch,
			productID,
			datagen.GeneratePolicyNumber(f, env.Unique("policy_number")),
			start,
			PolicyEnd(start, p.category, term),
			datagen.Money(premium),
			datagen.Money(coverage),
			datagen.Choose(f, deductibles),
			datagen.ChooseProportional(f, policyStatuses, policyStatusWeights),
			datagen.Money(f.Float64(10, 90)),
			env.Now,
		)

		detail, err := detailRow(f, i, p.category, term)
		if err != nil {
			return pipeline.Outcome{}, err
		}
		return pipeline.Emit(row, detail), nil
	})
}

// detailRow builds the category specific detail row of a policy.
func detailRow(f *datagen.Faker, policyID int, category string, term int) (pipeline.Record, error) {
	switch category {
	case CategoryAuto:
		return pipeline.Row(TableAutoDetails,
			policyID,
			datagen.Choose(f, vehicleMakes),
			f.CarModel(),
			f.Int(2010, 2025),
			f.RandomString(17, datagen.VINCharset),
			f.LicensePlate(),
			f.Int(5000, 150000),
			datagen.Choose(f, []string{"Personal", "Commercial"}),
		), nil
	case CategoryHome:
		return pipeline.Row(TableHomeDetails,
			policyID,
			f.Street()+", "+f.City(),
			datagen.Choose(f, propertyTypes),
			datagen.Money(f.Float64(150000, 800000)),
			f.Int(800, 5000),
			f.Int(1950, 2025),
			datagen.Choose(f, constructionTypes),
			f.Bool(),
			f.Bool(),
		), nil
	case CategoryLife:
		return pipeline.Row(TableLifeDetails,
			policyID,
			f.FirstName(),
			f.LastName(),
			datagen.Choose(f, relationships),
			term,
			f.Bool(),
			datagen.Choose(f, healthRatings),
		), nil
	case CategoryHealth:
		return pipeline.Row(TableHealthDetails,
			policyID,
			datagen.Choose(f, []string{"Individual", "Family"}),
			datagen.Choose(f, []string{"HMO", "PPO", "EPO"}),
			datagen.Money(f.Float64(20, 100)),
			datagen.Money(f.Float64(3000, 12000)),
			f.Bool(),
		), nil
	default:
		return pipeline.Record{}, fmt.Errorf("unknown product category %q", category)
	}
}

type policy struct {
	id    int64
	start time.Time
}

// loadPolicies returns the policies that started on or before today.
func loadPolicies(ctx context.Context, env *pipeline.Env) ([]policy, error) {
	var policies []policy
	where := sq.LtOrEq{env.Quote("StartDate"): env.Today}
	err := env.Select(ctx, TablePolicies, []string{"PolicyID", "StartDate"}, where, func(v []any) error {
		id, err := db.AsInt64(v[0])
		if err != nil {
			return err
		}
		start, err := db.AsTime(v[1])
		if err != nil {
			return err
		}
		policies = append(policies, policy{id: id, start: start})
		return nil
	})
	return policies, err
}

func generateClaims(ctx context.Context, env *pipeline.Env) error {
	policies, err := loadPolicies(ctx, env)
	if err != nil {
		return err
	}
	f := env.Faker

	return env.Populate(ctx, "claims", env.Count(TableClaims), func(i int) (pipeline.Outcome, error) {
		if len(policies) == 0 {
			return pipeline.Skip("no eligible policy"), nil
		}
		p := datagen.Choose(f, policies)

		incident := f.Day(p.start, env.Today)
		claimed := datagen.MinDate(incident.AddDate(0, 0, f.Int(0, 60)), env.Today)
		requested := datagen.Money(f.Float64(1500, 60000))
		decision := DecideClaim(f, requested, incident.Year())

		return pipeline.Emit(pipeline.Row(TableClaims,
			i,
			p.id,
			claimed,
			incident,
			f.Paragraph(2, 10),
			requested,
			decision.Approved,
			decision.Status,
			f.Chance(0.015),
		)), nil
	})
}

type payableClaim struct {
	id       int64
	claimed  time.Time
	approved float64
}

// loadPayableClaims returns the claims that can receive a payout.
func loadPayableClaims(ctx context.Context, env *pipeline.Env) ([]payableClaim, error) {
	var claims []payableClaim
	cols := []string{"ClaimID", "ClaimDate", "ClaimAmountApproved"}
	where := sq.Eq{env.Quote("ClaimStatus"): []string{ClaimApproved, ClaimSettled}}
	err := env.Select(ctx, TableClaims, cols, where, func(v []any) error {
		id, err := db.AsInt64(v[0])
		if err != nil {
			return err
		}
		claimed, err := db.AsTime(v[1])
		if err != nil {
			return err
		}
		approved, err := db.AsFloat64(v[2])
		if err != nil {
			return err
		}
		claims = append(claims, payableClaim{id: id, claimed: claimed, approved: approved})
		return nil
	})
	return claims, err
}

func generatePayments(ctx context.Context, env *pipeline.Env) error {
	policies, err := loadPolicies(ctx, env)
	if err != nil {
		return err
	}
	claims, err := loadPayableClaims(ctx, env)
	if err != nil {
		return err
	}
	f := env.Faker

	return env.Populate(ctx, "payments", env.Count(TablePayments), func(i int) (pipeline.Outcome, error) {
		method := datagen.Choose(f, paymentMethods)

		if f.Chance(0.8) {
			if len(policies) == 0 {
				return pipeline.Skip("no policy for premium"), nil
			}
			p := datagen.Choose(f, policies)
			return pipeline.Emit(pipeline.Row(TablePayments,
				i, p.id, nil, "Premium", f.Day(p.start, env.Today),
				datagen.Money(f.Float64(100, 5000)), method, "Successful",
			)), nil
		}

		if len(claims) == 0 {
			return pipeline.Skip("no approved claim for payout"), nil
		}
		c := datagen.Choose(f, claims)
		return pipeline.Emit(pipeline.Row(TablePayments,
			i, nil, c.id, "Payout", f.Day(c.claimed, env.Today),
			datagen.Money(c.approved*f.Float64(0.25, 1.0)), method, "Successful",
		)), nil
	})
}
