package core

import (
	"reflect"
	"testing"
)

func sampleProfile() Profile {
	return Profile{User: User{
		Name: "Maria",
		EmploymentIncome: EmploymentIncome{
			MonthlyIncome: 50000,
		},
		Expenses: Expenses{
			FixedMonthly: map[string]float64{
				"rent": 10000, "utilities": 2000, "subscriptions": 500, "insurance": 1000,
			},
			VariableMonthly: map[string]float64{
				"groceries": 6000, "transportation": 2000,
			},
			DebtObligations: map[string]float64{
				"credit_cards": 3000,
			},
			MajorUpcomingExpenses: []string{"Car repair", "Tuition"},
		},
		FinancialGoals: FinancialGoals{
			ShortTermGoals: []string{"Build emergency fund", "Pay off credit card"},
			LongTermGoals:  []string{"Buy a house"},
			SavingsGoals:   SavingsGoal{TargetAmount: 7500, Timeline: "monthly"},
		},
		FinancialHabits: FinancialHabits{
			BudgetingStyle:  "50/30/20",
			SavingsBehavior: "Automatic transfers",
			RiskTolerance:   "Moderate",
		},
		Budget: Budget{
			Categories:        BudgetCategories{Necessities: 50, Wants: 30, Savings: 20},
			TrackingFrequency: "weekly",
		},
		Savings: Savings{EmergencyFund: 30000, RetirementAccount: 120000},
		WeeklyExpenses: map[string]WeeklyExpenses{
			"week_1": {
				Fixed:    map[string]float64{"rent": 1000},
				Variable: map[string]float64{},
			},
			"week_2": {
				Fixed:    map[string]float64{"utilities": 500},
				Variable: map[string]float64{"dining": 700},
			},
		},
	}}
}

func TestBudgetOverviewFixedExpensesScenario(t *testing.T) {
	p := Profile{User: User{
		EmploymentIncome: EmploymentIncome{MonthlyIncome: 50000},
		Expenses: Expenses{
			FixedMonthly: map[string]float64{
				"rent": 10000, "utilities": 2000, "subscriptions": 500, "insurance": 1000,
			},
		},
	}}
	got := BudgetOverview(p)

	if len(got.Data) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(got.Data))
	}
	if got.Data[0].Description != "Fixed Expenses" || got.Data[0].Amount != 13500 {
		t.Fatalf("fixed expenses item = %+v", got.Data[0])
	}
	if got.Data[1].Amount != 0 || got.Data[2].Amount != 0 {
		t.Fatalf("missing maps must contribute zero: %+v", got.Data)
	}
	if got.Summary != "Monthly Budget: ₱50,000 | Expenses: ₱13,500" {
		t.Fatalf("summary = %q", got.Summary)
	}
}

func TestBudgetOverviewTotalsMatchIndependentSums(t *testing.T) {
	p := sampleProfile()
	got := BudgetOverview(p)

	var fixed, variable, debt float64
	for _, v := range p.User.Expenses.FixedMonthly {
		fixed += v
	}
	for _, v := range p.User.Expenses.VariableMonthly {
		variable += v
	}
	for _, v := range p.User.Expenses.DebtObligations {
		debt += v
	}

	var sum float64
	for _, item := range got.Data {
		sum += item.Amount
	}
	if want := fixed + variable + debt; sum != want {
		t.Fatalf("line item sum %v, want %v", sum, want)
	}
	for _, item := range got.Data {
		if item.Date != "Monthly" {
			t.Fatalf("expected Monthly date label, got %q", item.Date)
		}
	}
}

func TestCashFlowOverviewSingleWeek(t *testing.T) {
	p := Profile{User: User{
		EmploymentIncome: EmploymentIncome{MonthlyIncome: 50000},
		Budget:           Budget{TrackingFrequency: "weekly"},
		WeeklyExpenses: map[string]WeeklyExpenses{
			"week_1": {
				Fixed:    map[string]float64{"rent": 1000},
				Variable: map[string]float64{},
			},
		},
	}}
	got := CashFlowOverview(p)

	if len(got.WeeklyData) != 1 {
		t.Fatalf("expected 1 week, got %d", len(got.WeeklyData))
	}
	wk := got.WeeklyData[0]
	if wk.Week != "WEEK 1" {
		t.Fatalf("week label = %q", wk.Week)
	}
	if wk.Total != 1000 {
		t.Fatalf("week total = %v", wk.Total)
	}
	want := []LineItem{{Date: "Fixed", Description: "Rent", Amount: 1000}}
	if !reflect.DeepEqual(wk.Transactions, want) {
		t.Fatalf("transactions = %+v", wk.Transactions)
	}
}

func TestCashFlowOverviewEmptyWeeks(t *testing.T) {
	got := CashFlowOverview(Profile{})
	if len(got.WeeklyData) != 0 {
		t.Fatalf("expected no weeks, got %d", len(got.WeeklyData))
	}
	if got.Summary != "Weekly Income: ₱0 | Tracking: " {
		t.Fatalf("summary = %q", got.Summary)
	}
}

func TestCashFlowOverviewWeekOrdering(t *testing.T) {
	p := Profile{User: User{WeeklyExpenses: map[string]WeeklyExpenses{
		"week_10": {}, "week_2": {}, "week_1": {},
	}}}
	got := CashFlowOverview(p)

	labels := make([]string, 0, len(got.WeeklyData))
	for _, wk := range got.WeeklyData {
		labels = append(labels, wk.Week)
	}
	want := []string{"WEEK 1", "WEEK 2", "WEEK 10"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("week order = %v, want %v", labels, want)
	}
}

func TestSavingsOverviewGoals(t *testing.T) {
	p := sampleProfile()
	got := SavingsOverview(p)

	if len(got.Goals) != 2+len(p.User.FinancialGoals.ShortTermGoals) {
		t.Fatalf("expected %d goals, got %d", 2+len(p.User.FinancialGoals.ShortTermGoals), len(got.Goals))
	}
	if got.Goals[0].Name != "Emergency Fund" || got.Goals[0].Current != 30000 || got.Goals[0].Target != 50000 {
		t.Fatalf("emergency fund goal = %+v", got.Goals[0])
	}
	if got.Goals[1].Name != "Retirement Savings" || got.Goals[1].Target != 1000000 {
		t.Fatalf("retirement goal = %+v", got.Goals[1])
	}
	for _, g := range got.Goals[2:] {
		if g.Current != 0 || g.Target != 50000 || g.Deadline != "Short-term" {
			t.Fatalf("short-term goal placeholder = %+v", g)
		}
	}
	if len(got.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got.Transactions))
	}
	if got.Summary != "Emergency Fund: ₱30,000 | Retirement: ₱120,000" {
		t.Fatalf("summary = %q", got.Summary)
	}
}

func TestInsightsOverviewShape(t *testing.T) {
	p := sampleProfile()
	got := InsightsOverview(p)

	if got.Summary != "Maria's Financial Overview - 50/30/20 Budgeting Style" {
		t.Fatalf("summary = %q", got.Summary)
	}
	if len(got.Insights) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got.Insights))
	}
	if got.Insights[0].Category != "Financial Habits" || len(got.Insights[0].Items) != 3 {
		t.Fatalf("habits category = %+v", got.Insights[0])
	}
	wantGoals := []string{"Build emergency fund", "Pay off credit card", "Buy a house"}
	if !reflect.DeepEqual(got.Insights[1].Items, wantGoals) {
		t.Fatalf("goal items = %v", got.Insights[1].Items)
	}
	if len(got.Alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(got.Alerts))
	}
	wantTypes := []AlertType{AlertInfo, AlertWarning, AlertSuccess}
	for i, a := range got.Alerts {
		if a.Type != wantTypes[i] {
			t.Fatalf("alert %d type = %q, want %q", i, a.Type, wantTypes[i])
		}
	}
	if got.Alerts[1].Message != "Upcoming major expense: Car repair" {
		t.Fatalf("warning alert = %q", got.Alerts[1].Message)
	}
}

func TestInsightsOverviewNoUpcomingExpenses(t *testing.T) {
	got := InsightsOverview(Profile{})
	if len(got.Alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(got.Alerts))
	}
	if got.Alerts[1].Message != "Upcoming major expense: " {
		t.Fatalf("expected blank expense placeholder, got %q", got.Alerts[1].Message)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	p := sampleProfile()
	for _, d := range Domains() {
		first, err := Aggregate(d, p)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		second, err := Aggregate(d, p)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: repeated aggregation differs", d)
		}
	}
}

func TestAggregateUnknownDomain(t *testing.T) {
	if _, err := Aggregate(Domain("stocks"), sampleProfile()); err == nil {
		t.Fatalf("expected error for unknown domain")
	}
}

func TestParseDomain(t *testing.T) {
	for _, d := range Domains() {
		got, err := ParseDomain(string(d))
		if err != nil || got != d {
			t.Fatalf("%s: got %q err %v", d, got, err)
		}
	}
	if _, err := ParseDomain("budget_agent"); err == nil {
		t.Fatalf("expected error for agent type string")
	}
	if DomainBudget.AgentType() != "budget_agent" {
		t.Fatalf("agent type = %q", DomainBudget.AgentType())
	}
}
