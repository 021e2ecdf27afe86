package core

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fixed goal targets for the synthetic savings goals. Short-term goals have
// no tracked progress data, so they share the placeholder target with
// current at zero.
const (
	emergencyFundTarget = 50000
	retirementTarget    = 1000000
	shortTermGoalTarget = 50000
)

// Aggregate builds the display summary for a domain. It is pure and total:
// the only possible error is an unknown domain, and any well-formed profile
// produces a summary. Missing maps and slices count as zero contribution.
func Aggregate(d Domain, p Profile) (Summary, error) {
	switch d {
	case DomainBudget:
		return BudgetOverview(p), nil
	case DomainCashFlow:
		return CashFlowOverview(p), nil
	case DomainSavings:
		return SavingsOverview(p), nil
	case DomainInsights:
		return InsightsOverview(p), nil
	}
	return nil, ErrUnknownDomain
}

// BudgetOverview folds the three expense classes into one total each and
// reports them against monthly income.
func BudgetOverview(p Profile) BudgetSummary {
	u := p.User
	fixed := sumValues(u.Expenses.FixedMonthly)
	variable := sumValues(u.Expenses.VariableMonthly)
	debt := sumValues(u.Expenses.DebtObligations)
	total := fixed + variable + debt

	cats := u.Budget.Categories
	return BudgetSummary{
		Summary: "Monthly Budget: " + Peso(u.EmploymentIncome.MonthlyIncome) +
			" | Expenses: " + Peso(total),
		Suggestions: []string{
			"Current budget allocation: " + trimPct(cats.Necessities) + "% necessities, " +
				trimPct(cats.Wants) + "% wants, " + trimPct(cats.Savings) + "% savings",
			"Consider increasing savings rate to reach financial goals faster",
			"Review variable expenses to optimize spending",
		},
		Data: []LineItem{
			{Date: "Monthly", Description: "Fixed Expenses", Amount: fixed},
			{Date: "Monthly", Description: "Variable Expenses", Amount: variable},
			{Date: "Monthly", Description: "Debt Obligations", Amount: debt},
		},
	}
}

// CashFlowOverview emits one entry per recorded week. Weeks are ordered by
// their numeric suffix ("week_1", "week_2", ...) falling back to plain
// string order; transaction rows list fixed categories before variable
// ones, each set in category name order.
func CashFlowOverview(p Profile) CashFlowSummary {
	u := p.User
	weeklyIncome := u.EmploymentIncome.MonthlyIncome / 4

	out := CashFlowSummary{
		Summary: "Weekly Income: " + Peso(weeklyIncome) +
			" | Tracking: " + u.Budget.TrackingFrequency,
		Trends: []string{
			"Consistent weekly spending patterns",
			"Fixed expenses remain stable",
			"Variable expenses show slight fluctuations",
		},
		WeeklyData: []WeeklyCashFlow{},
	}

	for _, week := range sortedWeekKeys(u.WeeklyExpenses) {
		entry := u.WeeklyExpenses[week]
		wk := WeeklyCashFlow{
			Week:  weekLabel(week),
			Total: sumValues(entry.Fixed) + sumValues(entry.Variable),
		}
		for _, cat := range sortedKeys(entry.Fixed) {
			wk.Transactions = append(wk.Transactions, LineItem{
				Date:        "Fixed",
				Description: titleCase(cat),
				Amount:      entry.Fixed[cat],
			})
		}
		for _, cat := range sortedKeys(entry.Variable) {
			wk.Transactions = append(wk.Transactions, LineItem{
				Date:        "Variable",
				Description: titleCase(cat),
				Amount:      entry.Variable[cat],
			})
		}
		out.WeeklyData = append(out.WeeklyData, wk)
	}
	return out
}

// SavingsOverview reports the two tracked accounts plus one placeholder
// goal per ad-hoc short-term goal.
func SavingsOverview(p Profile) SavingsSummary {
	u := p.User
	out := SavingsSummary{
		Summary: "Emergency Fund: " + Peso(u.Savings.EmergencyFund) +
			" | Retirement: " + Peso(u.Savings.RetirementAccount),
		Suggestions: []string{
			"Continue building emergency fund",
			"Consider increasing retirement contributions",
			"Review savings goals regularly",
		},
		Goals: []GoalProgress{
			{Name: "Emergency Fund", Target: emergencyFundTarget, Current: u.Savings.EmergencyFund, Deadline: "Ongoing"},
			{Name: "Retirement Savings", Target: retirementTarget, Current: u.Savings.RetirementAccount, Deadline: "Long-term"},
		},
		Transactions: []LineItem{
			{Date: "Current", Description: "Emergency Fund", Amount: u.Savings.EmergencyFund},
			{Date: "Current", Description: "Retirement Account", Amount: u.Savings.RetirementAccount},
		},
	}
	for _, goal := range u.FinancialGoals.ShortTermGoals {
		out.Goals = append(out.Goals, GoalProgress{
			Name:     goal,
			Target:   shortTermGoalTarget,
			Current:  0,
			Deadline: "Short-term",
		})
	}
	return out
}

// InsightsOverview is a template-based summarizer: two categories and three
// alerts, always in the same order.
func InsightsOverview(p Profile) InsightsSummary {
	u := p.User
	habits := u.FinancialHabits
	goals := append([]string{}, u.FinancialGoals.ShortTermGoals...)
	goals = append(goals, u.FinancialGoals.LongTermGoals...)

	// Indexing the first upcoming expense is undefined for an empty list;
	// keep the alert but leave the expense blank.
	upcoming := ""
	if len(u.Expenses.MajorUpcomingExpenses) > 0 {
		upcoming = u.Expenses.MajorUpcomingExpenses[0]
	}

	return InsightsSummary{
		Summary: u.Name + "'s Financial Overview - " + habits.BudgetingStyle + " Budgeting Style",
		Insights: []InsightCategory{
			{
				Category: "Financial Habits",
				Items: []string{
					"Budgeting Style: " + habits.BudgetingStyle,
					"Savings Behavior: " + habits.SavingsBehavior,
					"Risk Tolerance: " + habits.RiskTolerance,
				},
			},
			{
				Category: "Financial Goals",
				Items:    goals,
			},
		},
		Alerts: []Alert{
			{
				Type:    AlertInfo,
				Message: "Monthly savings target: " + Peso(u.FinancialGoals.SavingsGoals.TargetAmount),
				Action:  "Track progress weekly",
			},
			{
				Type:    AlertWarning,
				Message: "Upcoming major expense: " + upcoming,
				Action:  "Plan and save accordingly",
			},
			{
				Type:    AlertSuccess,
				Message: "Emergency fund established",
				Action:  "Continue regular contributions",
			},
		},
	}
}

func sumValues(m map[string]float64) float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedWeekKeys orders week keys numerically when they carry a numeric
// suffix, so "week_10" sorts after "week_9".
func sortedWeekKeys(m map[string]WeeklyExpenses) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, oki := weekNumber(keys[i])
		nj, okj := weekNumber(keys[j])
		if oki && okj && ni != nj {
			return ni < nj
		}
		if oki != okj {
			return oki
		}
		return keys[i] < keys[j]
	})
	return keys
}

func weekNumber(key string) (int, bool) {
	idx := strings.LastIndexByte(key, '_')
	if idx < 0 || idx == len(key)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(key[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// weekLabel turns "week_1" into "WEEK 1".
func weekLabel(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}

// titleCase upper-cases the first rune only: "rent" -> "Rent".
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// trimPct renders a percentage without a trailing ".00" for whole values.
func trimPct(v float64) string {
	return FormatAmount(v)
}
