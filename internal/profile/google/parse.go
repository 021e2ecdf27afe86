package google

import (
	"strconv"
	"strings"

	"lynq/internal/core"
)

// buildProfile assembles a Profile from raw sheet rows. Rows are tolerant:
// headers, blank lines, and rows with too few cells are skipped, and
// unparsable amounts count as zero.
//
// Profile sheet: key | value pairs.
// Expenses sheet: class | category | amount, class in {fixed, variable, debt}.
// Weekly sheet: week | class | category | amount.
// Goals sheet: kind | text, kind in {short_term, long_term, upcoming,
// income_source, credit_line, alert}.
func buildProfile(profileRows, expenseRows, weeklyRows, goalRows [][]any) core.Profile {
	var p core.Profile

	for _, row := range profileRows {
		key := normalizeKey(cellString(row, 0))
		value := cellString(row, 1)
		if key == "" || value == "" {
			continue
		}
		applyProfileField(&p.User, key, value)
	}

	for _, row := range expenseRows {
		class := normalizeKey(cellString(row, 0))
		category := cellString(row, 1)
		if category == "" {
			continue
		}
		amount := parseAmount(cellString(row, 2))
		switch class {
		case "fixed":
			p.User.Expenses.FixedMonthly = setAmount(p.User.Expenses.FixedMonthly, category, amount)
		case "variable":
			p.User.Expenses.VariableMonthly = setAmount(p.User.Expenses.VariableMonthly, category, amount)
		case "debt":
			p.User.Expenses.DebtObligations = setAmount(p.User.Expenses.DebtObligations, category, amount)
		}
	}

	for _, row := range weeklyRows {
		week := normalizeKey(cellString(row, 0))
		class := normalizeKey(cellString(row, 1))
		category := cellString(row, 2)
		if week == "" || category == "" {
			continue
		}
		amount := parseAmount(cellString(row, 3))

		if p.User.WeeklyExpenses == nil {
			p.User.WeeklyExpenses = make(map[string]core.WeeklyExpenses)
		}
		we := p.User.WeeklyExpenses[week]
		switch class {
		case "fixed":
			we.Fixed = setAmount(we.Fixed, category, amount)
		case "variable":
			we.Variable = setAmount(we.Variable, category, amount)
		default:
			continue
		}
		p.User.WeeklyExpenses[week] = we
	}

	for _, row := range goalRows {
		kind := normalizeKey(cellString(row, 0))
		text := cellString(row, 1)
		if text == "" {
			continue
		}
		switch kind {
		case "short_term":
			p.User.FinancialGoals.ShortTermGoals = append(p.User.FinancialGoals.ShortTermGoals, text)
		case "long_term":
			p.User.FinancialGoals.LongTermGoals = append(p.User.FinancialGoals.LongTermGoals, text)
		case "upcoming":
			p.User.Expenses.MajorUpcomingExpenses = append(p.User.Expenses.MajorUpcomingExpenses, text)
		case "income_source":
			p.User.EmploymentIncome.IncomeSources = append(p.User.EmploymentIncome.IncomeSources, text)
		case "credit_line":
			p.User.BankingCashflow.CreditCardsAndLoans = append(p.User.BankingCashflow.CreditCardsAndLoans, text)
		case "alert":
			p.User.FinancialHabits.PreferredAlerts = append(p.User.FinancialHabits.PreferredAlerts, text)
		}
	}

	return p
}

func applyProfileField(u *core.User, key, value string) {
	switch key {
	case "name":
		u.Name = value
	case "age":
		u.Demographics.Age = parseInt(value)
	case "gender":
		u.Demographics.Gender = value
	case "marital_status":
		u.Demographics.MaritalStatus = value
	case "dependents":
		u.Demographics.Dependents = parseInt(value)
	case "city":
		u.Demographics.Location.City = value
	case "province":
		u.Demographics.Location.Province = value
	case "country":
		u.Demographics.Location.Country = value
	case "employment_status":
		u.EmploymentIncome.EmploymentStatus = value
	case "job_title":
		u.EmploymentIncome.JobTitle = value
	case "monthly_income":
		u.EmploymentIncome.MonthlyIncome = parseAmount(value)
	case "income_frequency":
		u.EmploymentIncome.IncomeFrequency = value
	case "budgeting_style":
		u.FinancialHabits.BudgetingStyle = value
	case "savings_behavior":
		u.FinancialHabits.SavingsBehavior = value
	case "risk_tolerance":
		u.FinancialHabits.RiskTolerance = value
	case "bank_accounts_linked":
		u.BankingCashflow.BankAccountsLinked = parseBool(value)
	case "tracking_frequency":
		u.Budget.TrackingFrequency = value
	case "necessities":
		u.Budget.Categories.Necessities = parseAmount(value)
	case "wants":
		u.Budget.Categories.Wants = parseAmount(value)
	case "savings":
		u.Budget.Categories.Savings = parseAmount(value)
	case "emergency_fund":
		u.Savings.EmergencyFund = parseAmount(value)
	case "retirement_account":
		u.Savings.RetirementAccount = parseAmount(value)
	case "savings_target_amount":
		u.FinancialGoals.SavingsGoals.TargetAmount = parseAmount(value)
	case "savings_timeline":
		u.FinancialGoals.SavingsGoals.Timeline = value
	}
}

func setAmount(m map[string]float64, category string, amount float64) map[string]float64 {
	if m == nil {
		m = make(map[string]float64)
	}
	m[category] = amount
	return m
}

func cellString(row []any, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, ok := row[idx].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func normalizeKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// parseAmount accepts "12,500.50", "₱12500" and percentage cells like "50%".
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₱")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}
