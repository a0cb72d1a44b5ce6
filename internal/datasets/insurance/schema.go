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
	"github.com/pgEdge/pgedge-seedgen/internal/db"
)

// Table names.
const (
	TableBranches      = "Branches"
	TableAgents        = "Agents"
	TableProducts      = "Products"
	TableCustomers     = "Customers"
	TablePolicies      = "Policies"
	TableAutoDetails   = "AutoPolicyDetails"
	TableHomeDetails   = "HomePolicyDetails"
	TableLifeDetails   = "LifePolicyDetails"
	TableHealthDetails = "HealthPolicyDetails"
	TableClaims        = "Claims"
	TablePayments      = "Payments"
)

func policyDetail(name string, columns ...db.Column) db.Table {
	return db.Table{
		Name:        name,
		Columns:     append([]db.Column{db.Int("PolicyID").PK()}, columns...),
		ForeignKeys: []db.ForeignKey{db.References("PolicyID", TablePolicies, "PolicyID")},
	}
}

// tables lists the schema in export order.
var tables = []db.Table{
	{
		Name: TableBranches,
		Columns: []db.Column{
			db.Int("BranchID").PK(),
			db.Varchar("BranchName", 100),
			db.Varchar("Address", 200),
			db.Varchar("City", 50),
			db.Varchar("State", 2),
			db.Varchar("ZipCode", 10),
			db.Date("OpeningDate"),
			db.Int("EmployeeCount"),
		},
	},
	{
		Name: TableAgents,
		Columns: []db.Column{
			db.Int("AgentID").PK(),
			db.Varchar("FirstName", 50),
			db.Varchar("LastName", 50),
			db.Varchar("PhoneNumber", 20),
			db.Varchar("Email", 100),
			db.Varchar("AgencyName", 100),
			db.Varchar("LicenseNumber", 20),
			db.Date("HireDate"),
			db.Decimal("CommissionRate", 5, 4),
			db.Varchar("Region", 2),
			db.Int("PerformanceRating"),
			db.Bool("ActiveStatus"),
			db.Int("BranchID"),
		},
		ForeignKeys: []db.ForeignKey{
			db.References("BranchID", TableBranches, "BranchID"),
		},
	},
	{
		Name: TableProducts,
		Columns: []db.Column{
			db.Int("ProductID").PK(),
			db.Varchar("ProductName", 100),
			db.Varchar("ProductCategory", 20),
			db.Text("Description"),
			db.Decimal("BasePremium", 10, 2),
			db.Decimal("CoverageLimit", 12, 2),
			db.Bool("IsActive"),
			db.Date("LaunchDate"),
		},
	},
	{
		Name: TableCustomers,
		Columns: []db.Column{
			db.Int("CustomerID").PK(),
			db.Varchar("FirstName", 50),
			db.Varchar("LastName", 50),
			db.Date("DateOfBirth"),
			db.Varchar("Gender", 20),
			db.Varchar("AddressLine1", 200),
			db.Varchar("City", 50),
			db.Varchar("State", 2),
			db.Varchar("ZipCode", 10),
			db.Varchar("Country", 50),
			db.Varchar("PhoneNumber", 20),
			db.Varchar("Email", 100),
			db.Decimal("AnnualIncome", 12, 2),
			db.Varchar("MaritalStatus", 20),
			db.Int("NumberOfDependents"),
			db.Int("CreditScore"),
			db.Decimal("ChurnProbability", 5, 4),
			db.Date("RegistrationDate"),
		},
	},
	{
		Name: TablePolicies,
		Columns: []db.Column{
			db.Int("PolicyID").PK(),
			db.Int("CustomerID"),
			db.Int("AgentID"),
			db.Int("BranchID"),
			db.Int("ProductID"),
			db.Varchar("PolicyNumber", 20),
			db.Date("StartDate"),
			db.Date("EndDate"),
			db.Decimal("PremiumAmount", 12, 2),
			db.Decimal("CoverageAmount", 15, 2),
			db.Decimal("Deductible", 10, 2),
			db.Varchar("PolicyStatus", 20),
			db.Decimal("RiskScore", 5, 2),
			db.Timestamp("CreatedDate"),
		},
		ForeignKeys: []db.ForeignKey{
			db.References("CustomerID", TableCustomers, "CustomerID"),
			db.References("AgentID", TableAgents, "AgentID"),
			db.References("BranchID", TableBranches, "BranchID"),
			db.References("ProductID", TableProducts, "ProductID"),
		},
	},
	policyDetail(TableAutoDetails,
		db.Varchar("VehicleMake", 50),
		db.Varchar("VehicleModel", 50),
		db.Int("VehicleYear"),
		db.Varchar("VIN", 17),
		db.Varchar("LicensePlate", 15),
		db.Int("Mileage"),
		db.Varchar("UsageType", 20),
	),
	policyDetail(TableHomeDetails,
		db.Varchar("PropertyAddress", 255),
		db.Varchar("PropertyType", 30),
		db.Decimal("PropertyValue", 12, 2),
		db.Int("SquareFootage"),
		db.Int("YearBuilt"),
		db.Varchar("ConstructionType", 20),
		db.Bool("SecuritySystem"),
		db.Bool("FloodZone"),
	),
	policyDetail(TableLifeDetails,
		db.Varchar("BeneficiaryFirstName", 50),
		db.Varchar("BeneficiaryLastName", 50),
		db.Varchar("BeneficiaryRelationship", 20),
		db.Int("TermLength"),
		db.Bool("SmokerStatus"),
		db.Varchar("HealthRating", 20),
	),
	policyDetail(TableHealthDetails,
		db.Varchar("CoverageType", 20),
		db.Varchar("NetworkType", 10),
		db.Decimal("CopayAmount", 8, 2),
		db.Decimal("OutOfPocketMax", 10, 2),
		db.Bool("PrescriptionCoverage"),
	),
	{
		Name: TableClaims,
		Columns: []db.Column{
			db.Int("ClaimID").PK(),
			db.Int("PolicyID"),
			db.Date("ClaimDate"),
			db.Date("IncidentDate"),
			db.Text("IncidentDescription"),
			db.Decimal("ClaimAmountRequested", 12, 2),
			db.Decimal("ClaimAmountApproved", 12, 2),
			db.Varchar("ClaimStatus", 20),
			db.Bool("FraudFlag"),
		},
		ForeignKeys: []db.ForeignKey{
			db.References("PolicyID", TablePolicies, "PolicyID"),
		},
	},
	{
		Name: TablePayments,
		Columns: []db.Column{
			db.Int("PaymentID").PK(),
			db.Int("PolicyID").Null(),
			db.Int("ClaimID").Null(),
			db.Varchar("PaymentType", 20),
			db.Date("PaymentDate"),
			db.Decimal("Amount", 12, 2),
			db.Varchar("PaymentMethod", 20),
			db.Varchar("Status", 20),
		},
		ForeignKeys: []db.ForeignKey{
			db.References("PolicyID", TablePolicies, "PolicyID"),
			db.References("ClaimID", TableClaims, "ClaimID"),
		},
	},
}
