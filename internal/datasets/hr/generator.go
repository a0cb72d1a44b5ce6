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
	"context"
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-seedgen/internal/datagen"
	"github.com/pgEdge/pgedge-seedgen/internal/db"
	"github.com/pgEdge/pgedge-seedgen/internal/pipeline"
)

// Reference data
var departments = []string{"Human Resources", "Finance", "IT", "Sales", "Operations"}
var locations = []string{"Cairo", "Alexandria", "Giza", "Mansoura"}
var educationLevels = []string{"Bachelor's", "Master's", "PhD"}
var recruitmentSources = []string{"LinkedIn", "Employee Referral", "Job Fair", "Company Website", "Recruitment Agency", "Wuzzuf"}
var genders = []string{"Male", "Female"}
var emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com"}

var jobRoles = []struct {
	name  string
	level string
}{
	{"Analyst", "Junior"},
	{"Engineer", "Mid"},
	{"Specialist", "Mid"},
	{"Manager", "Senior"},
	{"Director", "Executive"},
}

var trainings = []struct {
	name     string
	category string
	hours    int
}{
	{"Leadership Essentials", "Leadership", 16},
	{"Effective Communication", "Soft Skills", 8},
	{"Time Management", "Soft Skills", 4},
	{"Data Analysis with Excel", "Technical", 12},
	{"SQL Fundamentals", "Technical", 20},
	{"Workplace Safety", "Compliance", 4},
	{"Anti-Harassment Policy", "Compliance", 2},
	{"Project Management Basics", "Management", 24},
	{"Customer Service Excellence", "Sales", 8},
	{"Financial Literacy", "Finance", 6},
}

const performanceLevels = 100

var (
	windowStart = datagen.Date(2020, 1, 1)
	windowEnd   = datagen.Date(2025, 12, 31)
)

// analysisMonths returns the first day of every month in the analysis
// window; each becomes a DIM_Date row.
func analysisMonths() []time.Time {
	return datagen.MonthsInWindow(windowStart, &windowEnd, datagen.Window{Start: windowStart, End: windowEnd})
}

// activeWindow is the analysis window cut off at the simulated today.
func activeWindow(today time.Time) datagen.Window {
	return datagen.Window{Start: windowStart, End: datagen.MinDate(windowEnd, today)}
}

func performanceRating(score int) string {
	switch {
	case score >= 90:
		return "Outstanding"
	case score >= 70:
		return "Exceeds Expectations"
	case score >= 40:
		return "Meets Expectations"
	default:
		return "Below Expectations"
	}
}

func stages() []pipeline.Stage {
	return []pipeline.Stage{
		{
			Name: "dimensions",
			Outputs: []string{
				TableDate, TableDepartment, TableJobRole, TableLocation,
				TableEducation, TableRecruitmentSource, TableTraining, TablePerformance,
			},
			Run: generateDimensions,
		},
		{
			Name:    "employees",
			Inputs:  []string{TableDepartment, TableJobRole, TableLocation, TableEducation},
			Outputs: []string{TableEmployee},
			Run:     generateEmployees,
		},
		{
			Name:    "snapshots",
			Inputs:  []string{TableEmployee, TablePerformance},
			Outputs: []string{TableSnapshot},
			Run:     generateSnapshots,
		},
		{
			Name:    "training_attendance",
			Inputs:  []string{TableEmployee, TableTraining},
			Outputs: []string{TableAttendance},
			Run:     generateAttendance,
		},
		{
			Name:    "recruitment",
			Inputs:  []string{TableEmployee, TableRecruitmentSource},
			Outputs: []string{TableRecruitment},
			Run:     generateRecruitment,
		},
	}
}

// populateNames writes one row per name with a 1-based id.
func populateNames(ctx context.Context, env *pipeline.Env, table string, names []string) error {
	return env.Populate(ctx, table, len(names), func(i int) (pipeline.Outcome, error) {
		return pipeline.Emit(pipeline.Row(table, i, names[i-1])), nil
	})
}

func generateDimensions(ctx context.Context, env *pipeline.Env) error {
	months := analysisMonths()
	err := env.Populate(ctx, TableDate, len(months), func(i int) (pipeline.Outcome, error) {
		m := months[i-1]
		return pipeline.Emit(pipeline.Row(TableDate,
			datagen.DateKey(m), m, m.Year(), (int(m.Month())-1)/3+1, int(m.Month()), m.Month().String(),
		)), nil
	})
	if err != nil {
		return err
	}

	if err := populateNames(ctx, env, TableDepartment, departments); err != nil {
		return err
	}

	err = env.Populate(ctx, TableJobRole, len(jobRoles), func(i int) (pipeline.Outcome, error) {
		r := jobRoles[i-1]
		return pipeline.Emit(pipeline.Row(TableJobRole, i, r.name, r.level)), nil
	})
	if err != nil {
		return err
	}

	err = env.Populate(ctx, TableLocation, len(locations), func(i int) (pipeline.Outcome, error) {
		return pipeline.Emit(pipeline.Row(TableLocation, i, locations[i-1], "Egypt")), nil
	})
	if err != nil {
		return err
	}

	if err := populateNames(ctx, env, TableEducation, educationLevels); err != nil {
		return err
	}
	if err := populateNames(ctx, env, TableRecruitmentSource, recruitmentSources); err != nil {
		return err
	}

	err = env.Populate(ctx, TableTraining, len(trainings), func(i int) (pipeline.Outcome, error) {
		t := trainings[i-1]
		return pipeline.Emit(pipeline.Row(TableTraining, i, t.name, t.category, t.hours)), nil
	})
	if err != nil {
		return err
	}

	return env.Populate(ctx, TablePerformance, performanceLevels, func(i int) (pipeline.Outcome, error) {
		return pipeline.Emit(pipeline.Row(TablePerformance, i, i, performanceRating(i))), nil
	})
}

func generateEmployees(ctx context.Context, env *pipeline.Env) error {
	var keys [4][]int64
	for i, ref := range []struct{ table, column string }{
		{TableDepartment, "DepartmentID"},
		{TableJobRole, "JobRoleID"},
		{TableLocation, "LocationID"},
		{TableEducation, "EducationID"},
	} {
		k, err := env.Keys(ctx, ref.table, ref.column)
		if err != nil {
			return err
		}
		if len(k) == 0 {
			return fmt.Errorf("%s is empty", ref.table)
		}
		keys[i] = k
	}

	count := env.Count(TableEmployee)
	// The first employees report to nobody and manage everyone else.
	managers := min(50, max(1, count/20))
	style := datagen.EmailStyle{Domains: emailDomains}
	f := env.Faker

	return env.Populate(ctx, "employees", count, func(i int) (pipeline.Outcome, error) {
		gender := datagen.Choose(f, genders)
		firstNames := maleFirstNames
		if gender == "Female" {
			firstNames = femaleFirstNames
		}
		first := datagen.Choose(f, firstNames)
		last := datagen.Choose(f, lastNames)
		email := datagen.GenerateEmail(f, style, first, last, env.Unique("email"))

		dob := datagen.Date(1980+f.Int(0, 20), time.Month(f.Int(1, 12)), f.Int(1, 28))
		hire := datagen.Date(2015+f.Int(0, 10), time.Month(f.Int(1, 12)), f.Int(1, 28))
		hire = datagen.MinDate(hire, env.Today)

		var termination any
		if f.Chance(0.3) {
			t := hire.AddDate(0, 0, f.Int(0, 2000))
			if !t.After(env.Today) {
				termination = t
			}
		}

		var manager any
		if i > managers {
			manager = f.Int(1, managers)
		}

		return pipeline.Emit(pipeline.Row(TableEmployee,
			i, first+" "+last, first, last, email, gender, dob, hire, termination, termination == nil,
			datagen.Choose(f, keys[0]), datagen.Choose(f, keys[1]),
			datagen.Choose(f, keys[2]), datagen.Choose(f, keys[3]), manager,
		)), nil
	})
}

type employee struct {
	id          int64
	hire        time.Time
	termination *time.Time
	department  int64
	jobRole     int64
	location    int64
	manager     *int64
}

func (e employee) managerValue() any {
	if e.manager == nil {
		return nil
	}
	return *e.manager
}

var employeeColumns = []string{
	"EmployeeID", "HireDate", "TerminationDate", "DepartmentID", "JobRoleID", "LocationID", "ManagerID",
}

func loadEmployees(ctx context.Context, env *pipeline.Env) ([]employee, error) {
	var employees []employee
	err := env.Select(ctx, TableEmployee, employeeColumns, nil, func(v []any) error {
		var e employee
		var err error
		if e.id, err = db.AsInt64(v[0]); err != nil {
			return err
		}
		if e.hire, err = db.AsTime(v[1]); err != nil {
			return err
		}
		if e.termination, err = db.AsNullTime(v[2]); err != nil {
			return err
		}
		if e.department, err = db.AsInt64(v[3]); err != nil {
			return err
		}
		if e.jobRole, err = db.AsInt64(v[4]); err != nil {
			return err
		}
		if e.location, err = db.AsInt64(v[5]); err != nil {
			return err
		}
		if e.manager, err = db.AsNullInt64(v[6]); err != nil {
			return err
		}
		employees = append(employees, e)
		return nil
	})
	return employees, err
}

func generateSnapshots(ctx context.Context, env *pipeline.Env) error {
	employees, err := loadEmployees(ctx, env)
	if err != nil {
		return err
	}
	performance, err := env.Keys(ctx, TablePerformance, "PerformanceID")
	if err != nil {
		return err
	}

	window := activeWindow(env.Today)
	f := env.Faker
	snapshotID := 0

	return env.Populate(ctx, "snapshots", len(employees), func(i int) (pipeline.Outcome, error) {
		e := employees[i-1]
		months := datagen.MonthsInWindow(e.hire, e.termination, window)
		if len(months) == 0 {
			return pipeline.Skip("employee outside analysis window"), nil
		}

		records := make([]pipeline.Record, 0, len(months))
		for _, m := range months {
			snapshotID++
			salary := datagen.Money(f.Float64(5000, 25000))
			records = append(records, pipeline.Row(TableSnapshot,
				snapshotID, e.id, datagen.DateKey(m),
				e.department, e.jobRole, e.location, e.managerValue(),
				salary,
				datagen.Money(salary*f.Float64(0.05, 0.15)),
				datagen.Money(f.Float64(0, 20)),
				f.Int(0, 5),
				f.Int(0, 40),
				datagen.Choose(f, performance),
				f.Int(1, 50),
				f.Int(1, 4),
				f.Int(1, 4),
				f.Int(0, 5),
				f.Int(0, 3),
			))
		}
		return pipeline.Emit(records...), nil
	})
}

func generateAttendance(ctx context.Context, env *pipeline.Env) error {
	employees, err := loadEmployees(ctx, env)
	if err != nil {
		return err
	}

	type course struct {
		id    int64
		hours int
	}
	var courses []course
	err = env.Select(ctx, TableTraining, []string{"TrainingID", "DurationHours"}, nil, func(v []any) error {
		id, err := db.AsInt64(v[0])
		if err != nil {
			return err
		}
		hours, err := db.AsInt64(v[1])
		if err != nil {
			return err
		}
		courses = append(courses, course{id: id, hours: int(hours)})
		return nil
	})
	if err != nil {
		return err
	}
	if len(employees) == 0 || len(courses) == 0 {
		return nil
	}

	window := activeWindow(env.Today)
	f := env.Faker

	return env.Populate(ctx, "training_attendance", env.Count(TableAttendance), func(i int) (pipeline.Outcome, error) {
		e := datagen.Choose(f, employees)
		from := datagen.MaxDate(e.hire, window.Start)
		to := window.End
		if e.termination != nil {
			to = datagen.MinDate(to, *e.termination)
		}
		if from.After(to) {
			return pipeline.Skip("employee inactive during analysis window"), nil
		}

		c := datagen.Choose(f, courses)
		day := f.Day(from, to)
		completed := f.Chance(0.85)
		var score any
		if completed {
			score = f.Int(60, 100)
		}
		return pipeline.Emit(pipeline.Row(TableAttendance,
			i, e.id, c.id, datagen.DateKey(day), day, f.Int(1, c.hours), completed, score,
		)), nil
	})
}

func generateRecruitment(ctx context.Context, env *pipeline.Env) error {
	employees, err := loadEmployees(ctx, env)
	if err != nil {
		return err
	}
	sources, err := env.Keys(ctx, TableRecruitmentSource, "SourceID")
	if err != nil {
		return err
	}
	f := env.Faker

	return env.Populate(ctx, "recruitment", len(employees), func(i int) (pipeline.Outcome, error) {
		e := employees[i-1]
		applied := e.hire.AddDate(0, 0, -f.Int(14, 120))
		return pipeline.Emit(pipeline.Row(TableRecruitment,
			i, e.id, datagen.Choose(f, sources), applied, e.hire,
			datagen.DaysBetween(applied, e.hire),
			datagen.Money(f.Float64(500, 8000)),
		)), nil
	})
}
