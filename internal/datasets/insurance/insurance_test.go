package insurance

import (
	"context"
	"testing"

	"github.com/pgEdge/pgedge-seedgen/internal/datagen"
	"github.com/pgEdge/pgedge-seedgen/internal/datasets"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/testutil"
)

var today = datagen.Date(2025, 12, 20)

func seedSmall(t *testing.T, seed uint64) db.Sink {
	t.Helper()
	sink := testutil.NewSQLiteSink(t)
	_, err := datasets.Seed(context.Background(), sink, New(), datasets.SeedOptions{
		RandomSeed: seed,
		Today:      today,
		Counts: map[string]int{
			TableBranches:  5,
			TableAgents:    20,
			TableProducts:  8,
			TableCustomers: 150,
			TablePolicies:  300,
			TableClaims:    200,
			TablePayments:  400,
		},
		Batch: datagen.BatchInsertConfig{BatchSize: 64, ProgressInterval: 1000},
	})
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return sink
}

func TestRegistered(t *testing.T) {
	ds, err := datasets.Get(Name)
	if err != nil {
		t.Fatalf("insurance dataset not registered: %v", err)
	}
	if ds.DefaultOutputDir() != "insurance_dataset_csv" {
		t.Errorf("DefaultOutputDir() = %s", ds.DefaultOutputDir())
	}
	if _, err := datasets.Build(ds); err != nil {
		t.Errorf("Pipeline does not validate: %v", err)
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{2017, 0.95},
		{2020, 1.10},
		{2025, 0.65},
		{2010, defaultSeverity},
		{2030, defaultSeverity},
	}
	for _, tt := range tests {
		if got := Severity(tt.year); got != tt.want {
			t.Errorf("Severity(%d) = %g, want %g", tt.year, got, tt.want)
		}
	}
}

func TestDecideClaim(t *testing.T) {
	f := datagen.NewFakerWithSeed(3)
	statuses := make(map[string]int)

	for i := 0; i < 2000; i++ {
		requested := datagen.Money(f.Float64(1500, 60000))
		year := f.Int(2016, 2026)
		d := DecideClaim(f, requested, year)
		statuses[d.Status]++

		switch d.Status {
		case ClaimDenied:
			if d.Approved != 0 {
				t.Fatalf("Denied claim approved %f", d.Approved)
			}
		case ClaimApproved, ClaimSettled:
			if d.Approved <= 0 || d.Approved > requested {
				t.Fatalf("Approved %f outside (0, %f]", d.Approved, requested)
			}
			if d.Approved > requested*0.75+0.01 {
				t.Fatalf("Approved %f exceeds 75%% of %f", d.Approved, requested)
			}
		default:
			t.Fatalf("Unexpected status %q", d.Status)
		}
	}

	for _, s := range []string{ClaimDenied, ClaimApproved, ClaimSettled} {
		if statuses[s] == 0 {
			t.Errorf("No %s claims in 2000 draws", s)
		}
	}
}

func TestCreditScore(t *testing.T) {
	f := datagen.NewFakerWithSeed(11)
	for i := 0; i < 1000; i++ {
		income := f.Float64(30000, 200000)
		score := CreditScore(f, income)
		if score < 300 || score > 850 {
			t.Fatalf("CreditScore(%f) = %d", income, score)
		}
		if income > 150000 && score < 680 {
			t.Errorf("High income %f has score %d", income, score)
		}
		if income < 50000 && score > 740 {
			t.Errorf("Low income %f has score %d", income, score)
		}
	}
}

func TestPolicyEnd(t *testing.T) {
	start := datagen.Date(2022, 3, 1)
	if got := PolicyEnd(start, CategoryAuto, 20); !got.Equal(start.AddDate(0, 0, 365)) {
		t.Errorf("Auto policy ends %v", got)
	}
	if got := PolicyEnd(start, CategoryLife, 20); !got.Equal(start.AddDate(0, 0, 7300)) {
		t.Errorf("Life policy ends %v", got)
	}
}

func TestPolicyStart(t *testing.T) {
	f := datagen.NewFakerWithSeed(17)
	registration := datagen.Date(2024, 6, 15)
	for i := 0; i < 500; i++ {
		start := PolicyStart(f, registration, today)
		if start.Before(registration) || start.After(today) {
			t.Fatalf("Start %v outside [%v, %v]", start, registration, today)
		}
	}
}

func TestSeedCounts(t *testing.T) {
	sink := seedSmall(t, 23)

	for table, n := range map[string]int64{
		TableBranches:  5,
		TableAgents:    20,
		TableProducts:  8,
		TableCustomers: 150,
	} {
		if got := testutil.CountRows(t, sink, table); got != n {
			t.Errorf("%s has %d rows, want %d", table, got, n)
		}
	}

	policies := testutil.CountRows(t, sink, TablePolicies)
	if policies == 0 || policies > 300 {
		t.Errorf("%s has %d rows", TablePolicies, policies)
	}
	var details int64
	for _, table := range []string{TableAutoDetails, TableHomeDetails, TableLifeDetails, TableHealthDetails} {
		details += testutil.CountRows(t, sink, table)
	}
	if details != policies {
		t.Errorf("%d detail rows for %d policies", details, policies)
	}
	if got := testutil.CountRows(t, sink, TableClaims); got == 0 || got > 200 {
		t.Errorf("%s has %d rows", TableClaims, got)
	}
}

func TestUniqueIdentities(t *testing.T) {
	sink := seedSmall(t, 29)

	seen := make(map[string]bool)
	rows := testutil.QueryRows(t, sink,
		`SELECT "Email" FROM "Customers" UNION ALL SELECT "Email" FROM "Agents"`)
	for _, r := range rows {
		email := db.AsString(r[0])
		if seen[email] {
			t.Errorf("Duplicate email %s", email)
		}
		seen[email] = true
	}

	numbers := make(map[string]bool)
	for _, r := range testutil.QueryRows(t, sink, `SELECT "PolicyNumber" FROM "Policies"`) {
		n := db.AsString(r[0])
		if numbers[n] {
			t.Errorf("Duplicate policy number %s", n)
		}
		numbers[n] = true
	}
}

func TestDetailsMatchProductCategory(t *testing.T) {
	sink := seedSmall(t, 31)

	for category, table := range map[string]string{
		CategoryAuto:   TableAutoDetails,
		CategoryHome:   TableHomeDetails,
		CategoryLife:   TableLifeDetails,
		CategoryHealth: TableHealthDetails,
	} {
		rows := testutil.QueryRows(t, sink, `
			SELECT pr."ProductCategory"
			FROM "`+table+`" d
			JOIN "Policies" p ON p."PolicyID" = d."PolicyID"
			JOIN "Products" pr ON pr."ProductID" = p."ProductID"`)
		for _, r := range rows {
			if got := db.AsString(r[0]); got != category {
				t.Errorf("%s row belongs to a %s product", table, got)
			}
		}
	}
}

func TestClaimsWithinPolicy(t *testing.T) {
	sink := seedSmall(t, 37)

	rows := testutil.QueryRows(t, sink, `
		SELECT c."ClaimDate", c."IncidentDate", p."StartDate",
			c."ClaimAmountRequested", c."ClaimAmountApproved", c."ClaimStatus"
		FROM "Claims" c
		JOIN "Policies" p ON p."PolicyID" = c."PolicyID"`)
	if len(rows) != int(testutil.CountRows(t, sink, TableClaims)) {
		t.Fatal("Claims reference missing policies")
	}
	for _, r := range rows {
		claimed, _ := db.AsTime(r[0])
		incident, _ := db.AsTime(r[1])
		start, _ := db.AsTime(r[2])
		requested, _ := db.AsFloat64(r[3])
		approved, _ := db.AsFloat64(r[4])
		status := db.AsString(r[5])

		if incident.Before(start) || incident.After(today) {
			t.Errorf("Incident %v outside [%v, %v]", incident, start, today)
		}
		if claimed.Before(incident) || claimed.After(today) {
			t.Errorf("Claim date %v outside [%v, %v]", claimed, incident, today)
		}
		if approved > requested {
			t.Errorf("Approved %f exceeds requested %f", approved, requested)
		}
		if (status == ClaimDenied) != (approved == 0) {
			t.Errorf("Claim %s with approved amount %f", status, approved)
		}
	}
}

func TestPaymentsFollowParents(t *testing.T) {
	sink := seedSmall(t, 41)

	premiums := testutil.QueryRows(t, sink, `
		SELECT pay."PaymentDate", p."StartDate"
		FROM "Payments" pay
		JOIN "Policies" p ON p."PolicyID" = pay."PolicyID"
		WHERE pay."PaymentType" = 'Premium'`)
	for _, r := range premiums {
		paid, _ := db.AsTime(r[0])
		start, _ := db.AsTime(r[1])
		if paid.Before(start) || paid.After(today) {
			t.Errorf("Premium paid %v outside [%v, %v]", paid, start, today)
		}
	}

	payouts := testutil.QueryRows(t, sink, `
		SELECT pay."PaymentDate", pay."Amount", c."ClaimDate", c."ClaimAmountApproved", c."ClaimStatus"
		FROM "Payments" pay
		JOIN "Claims" c ON c."ClaimID" = pay."ClaimID"
		WHERE pay."PaymentType" = 'Payout'`)
	for _, r := range payouts {
		paid, _ := db.AsTime(r[0])
		amount, _ := db.AsFloat64(r[1])
		claimed, _ := db.AsTime(r[2])
		approved, _ := db.AsFloat64(r[3])
		if paid.Before(claimed) {
			t.Errorf("Payout %v before claim %v", paid, claimed)
		}
		if db.AsString(r[4]) == ClaimDenied {
			t.Error("Payout against a denied claim")
		}
		if amount > approved+0.01 {
			t.Errorf("Payout %f exceeds approved %f", amount, approved)
		}
	}

	total := testutil.CountRows(t, sink, TablePayments)
	if int64(len(premiums)+len(payouts)) != total {
		t.Errorf("%d of %d payments reference no parent", total-int64(len(premiums)+len(payouts)), total)
	}
}
