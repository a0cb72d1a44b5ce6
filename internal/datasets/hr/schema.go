//-------------------------------------------------------------------------
//
// pgEdge Seed Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package hr

import (
	"github.com/pgEdge/pgedge-seedgen/internal/db"
)

// Table names.
const (
	TableDate              = "DIM_Date"
	TableDepartment        = "DIM_Department"
	TableJobRole           = "DIM_JobRole"
	TableLocation          = "DIM_Location"
	TableEducation         = "DIM_Education"
	TableRecruitmentSource = "DIM_RecruitmentSource"
	TableTraining          = "DIM_Training"
	TablePerformance       = "DIM_Performance"
	TableEmployee          = "DIM_Employee"
	TableSnapshot          = "FACT_EmployeeSnapshot"
	TableAttendance        = "FACT_TrainingAttendance"
	TableRecruitment       = "FACT_Recruitment"
)

// tables lists the star schema in export order.
var tables = []db.Table{
	{
		Name: TableDate,
		Columns: []db.Column{
			db.Int("DateKey").PK(),
			db.Date("FullDate"),
			db.Int("Year"),
			db.Int("Quarter"),
			db.Int("Month"),
			db.Varchar("MonthName", 10),
		},
	},
	{
		Name: TableDepartment,
		Columns: []db.Column{
			db.Int("DepartmentID").PK(),
			db.Varchar("DepartmentName", 50),
		},
	},
	{
		Name: TableJobRole,
		Columns: []db.Column{
			db.Int("JobRoleID").PK(),
			db.Varchar("JobRoleName", 50),
			db.Varchar("JobLevel", 20),
		},
	},
	{
		Name: TableLocation,
		Columns: []db.Column{
			db.Int("LocationID").PK(),
			db.Varchar("City", 50),
			db.Varchar("Country", 50),
		},
	},
	{
		Name: TableEducation,
		Columns: []db.Column{
			db.Int("EducationID").PK(),
			db.Varchar("EducationLevel", 50),
		},
	},
	{
		Name: TableRecruitmentSource,
		Columns: []db.Column{
			db.Int("SourceID").PK(),
			db.Varchar("SourceName", 50),
		},
	},
	{
		Name: TableTraining,
		Columns: []db.Column{
			db.Int("TrainingID").PK(),
			db.Varchar("TrainingName", 100),
			db.Varchar("Category", 50),
			db.Int("DurationHours"),
		},
	},
	{
		Name: TablePerformance,
		Columns: []db.Column{
			db.Int("PerformanceID").PK(),
			db.Int("PerformanceScore"),
			db.Varchar("PerformanceRating", 30),
		},
	},
	{
		Name: TableEmployee,
		Columns: []db.Column{
			db.Int("EmployeeID").PK(),
			db.Varchar("FullName", 100),
			db.Varchar("FirstName", 50),
			db.Varchar("LastName", 50),
			db.Varchar("Email", 100),
			db.Varchar("Gender", 10),
			db.Date("DateOfBirth"),
			db.Date("HireDate"),
			db.Date("TerminationDate").Null(),
			db.Bool("IsActive"),
			db.Int("DepartmentID"),
			db.Int("JobRoleID"),
			db.Int("LocationID"),
			db.Int("EducationID"),
			db.Int("ManagerID").Null(),
		},
		ForeignKeys: []db.ForeignKey{
			db.References("DepartmentID", TableDepartment, "DepartmentID"),
			db.References("JobRoleID", TableJobRole, "JobRoleID"),
			db.References("LocationID", TableLocation, "LocationID"),
			db.References("EducationID", TableEducation, "EducationID"),
			db.References("ManagerID", TableEmployee, "EmployeeID"),
		},
	},
	{
		Name: TableSnapshot,
		Columns: []db.Column{
			db.Int("SnapshotID").PK(),
			db.Int("EmployeeID"),
			db.Int("SnapshotDateKey"),
			db.Int("DepartmentID"),
			db.Int("JobRoleID"),
			db.Int("LocationID"),
			db.Int("ManagerID").Null(),
			db.Decimal("MonthlySalary", 10, 2),
			db.Decimal("Bonus", 10, 2),
			db.Decimal("OvertimeHours", 5, 2),
			db.Int("SickDays"),
			db.Int("TrainingHours"),
			db.Int("PerformanceID"),
			db.Int("DistanceFromHome"),
			db.Int("JobSatisfaction"),
			db.Int("WorkLifeBalance"),
			db.Int("YearsInCurrentRole"),
			db.Int("YearsSinceLastPromotion"),
		},
		ForeignKeys: []db.ForeignKey{
			db.References("EmployeeID", TableEmployee, "EmployeeID"),
			db.References("SnapshotDateKey", TableDate, "DateKey"),
			db.References("DepartmentID", TableDepartment, "DepartmentID"),
			db.References("JobRoleID", TableJobRole, "JobRoleID"),
			db.References("LocationID", TableLocation, "LocationID"),
			db.References("PerformanceID", TablePerformance, "PerformanceID"),
		},
	},
	{
		Name: TableAttendance,
		Columns: []db.Column{
			db.Int("AttendanceID").PK(),
			db.Int("EmployeeID"),
			db.Int("TrainingID"),
			db.Int("TrainingDateKey"),
			db.Date("TrainingDate"),
			db.Int("HoursAttended"),
			db.Bool("Completed"),
			db.Int("Score").Null(),
		},
		ForeignKeys: []db.ForeignKey{
			db.References("EmployeeID", TableEmployee, "EmployeeID"),
			db.References("TrainingID", TableTraining, "TrainingID"),
			db.References("TrainingDateKey", TableDate, "DateKey"),
		},
	},
	{
		Name: TableRecruitment,
		Columns: []db.Column{
			db.Int("RecruitmentID").PK(),
			db.Int("EmployeeID"),
			db.Int("SourceID"),
			db.Date("ApplicationDate"),
			db.Date("HireDate"),
			db.Int("DaysToHire"),
			db.Decimal("RecruitmentCost", 10, 2),
		},
		ForeignKeys: []db.ForeignKey{
			db.References("EmployeeID", TableEmployee, "EmployeeID"),
			db.References("SourceID", TableRecruitmentSource, "SourceID"),
		},
	},
}
