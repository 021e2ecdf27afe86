// Package memory holds the in-process profile provider, seeded from a JSON
// file in the same shape as the original knowledge document.
package memory

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"lynq/internal/core"
)

type Store struct {
	mu      sync.Mutex
	profile core.Profile
}

func New(p core.Profile) *Store {
	return &Store{profile: p.Clone()}
}

// NewFromFile seeds the store from a JSON profile document. A missing or
// unreadable file falls back to the built-in sample so the dashboard always
// has something to render.
func NewFromFile(path string) *Store {
	raw, err := os.ReadFile(path)
	if err != nil {
		return New(SampleProfile())
	}
	var p core.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return New(SampleProfile())
	}
	return New(p)
}

// ReadProfile implements profile.Reader.
func (s *Store) ReadProfile(_ context.Context) (core.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone(), nil
}

// WriteProfile implements profile.Writer.
func (s *Store) WriteProfile(_ context.Context, p core.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p.Clone()
	return nil
}

// SampleProfile is the seed used when no profile file is available.
func SampleProfile() core.Profile {
	return core.Profile{User: core.User{
		Name: "Juan Dela Cruz",
		Demographics: core.Demographics{
			Age:           29,
			MaritalStatus: "single",
			Dependents:    0,
			Location:      core.Location{City: "Quezon City", Province: "Metro Manila", Country: "Philippines"},
		},
		EmploymentIncome: core.EmploymentIncome{
			EmploymentStatus: "employed",
			JobTitle:         "Software Developer",
			IncomeSources:    []string{"salary"},
			MonthlyIncome:    50000,
			IncomeFrequency:  "monthly",
		},
		Expenses: core.Expenses{
			FixedMonthly: map[string]float64{
				"rent": 10000, "utilities": 2000, "subscriptions": 500, "insurance": 1000,
			},
			VariableMonthly: map[string]float64{
				"groceries": 6000, "transportation": 2000, "entertainment": 1500, "dining": 2500, "shopping": 1500,
			},
			DebtObligations: map[string]float64{
				"credit_cards": 3000, "loans": 2000, "mortgages": 0,
			},
			MajorUpcomingExpenses: []string{"Laptop replacement", "Annual insurance premium"},
		},
		FinancialGoals: core.FinancialGoals{
			ShortTermGoals: []string{"Build emergency fund", "Pay off credit card"},
			LongTermGoals:  []string{"Buy a condo", "Retire at 60"},
			SavingsGoals:   core.SavingsGoal{TargetAmount: 10000, Timeline: "monthly"},
		},
		FinancialHabits: core.FinancialHabits{
			BudgetingStyle:  "50/30/20",
			SavingsBehavior: "Automatic transfers",
			RiskTolerance:   "Moderate",
			PreferredAlerts: []string{"overspending", "savings_milestone"},
		},
		BankingCashflow: core.BankingCashflow{
			BankAccountsLinked:  true,
			CreditCardsAndLoans: []string{"Visa", "Personal loan"},
		},
		Budget: core.Budget{
			Categories:        core.BudgetCategories{Necessities: 50, Wants: 30, Savings: 20},
			TrackingFrequency: "weekly",
		},
		Savings: core.Savings{EmergencyFund: 30000, RetirementAccount: 120000},
		WeeklyExpenses: map[string]core.WeeklyExpenses{
			"week_1": {
				Fixed:    map[string]float64{"rent": 2500, "utilities": 500},
				Variable: map[string]float64{"dining": 600, "entertainment": 400},
			},
			"week_2": {
				Fixed:    map[string]float64{"rent": 2500, "utilities": 500},
				Variable: map[string]float64{"shopping": 800, "dining": 450},
			},
		},
	}}
}
