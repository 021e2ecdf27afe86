package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFromFileMissingFallsBack(t *testing.T) {
	s := NewFromFile(filepath.Join(t.TempDir(), "nope.json"))
	p, err := s.ReadProfile(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if p.User.Name == "" {
		t.Fatalf("expected sample profile, got empty name")
	}
}

func TestNewFromFileParsesDocument(t *testing.T) {
	doc := `{
		"user": {
			"name": "Test User",
			"employment_income": {"monthly_income": 42000},
			"expenses": {"fixed_monthly_expenses": {"rent": 9000}},
			"weekly_expenses": {
				"week_1": {"fixed_expenses": {"rent": 2250}, "variable_expenses": {}}
			}
		}
	}`
	path := filepath.Join(t.TempDir(), "user.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	s := NewFromFile(path)
	p, err := s.ReadProfile(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if p.User.Name != "Test User" {
		t.Fatalf("name = %q", p.User.Name)
	}
	if p.User.EmploymentIncome.MonthlyIncome != 42000 {
		t.Fatalf("income = %v", p.User.EmploymentIncome.MonthlyIncome)
	}
	if p.User.Expenses.FixedMonthly["rent"] != 9000 {
		t.Fatalf("rent = %v", p.User.Expenses.FixedMonthly["rent"])
	}
	// Absent sections stay at their zero values.
	if len(p.User.FinancialGoals.ShortTermGoals) != 0 {
		t.Fatalf("unexpected goals: %v", p.User.FinancialGoals.ShortTermGoals)
	}
}

func TestNewFromFileMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	s := NewFromFile(path)
	p, _ := s.ReadProfile(context.Background())
	if p.User.Name == "" {
		t.Fatalf("expected sample fallback")
	}
}

func TestReadProfileReturnsCopy(t *testing.T) {
	s := New(SampleProfile())
	ctx := context.Background()

	first, _ := s.ReadProfile(ctx)
	first.User.Expenses.FixedMonthly["rent"] = 99999

	second, _ := s.ReadProfile(ctx)
	if second.User.Expenses.FixedMonthly["rent"] == 99999 {
		t.Fatalf("caller mutation leaked into the store")
	}
}

func TestWriteProfileReplacesDocument(t *testing.T) {
	s := New(SampleProfile())
	ctx := context.Background()

	p, _ := s.ReadProfile(ctx)
	p.User.Name = "Updated"
	if err := s.WriteProfile(ctx, p); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, _ := s.ReadProfile(ctx)
	if got.User.Name != "Updated" {
		t.Fatalf("name = %q", got.User.Name)
	}
}
