package core

// Profile is the raw per-user financial record as served by the user-data
// provider. The document is read-mostly and treated as immutable per request;
// every optional substructure defaults to its zero value, which the
// aggregation functions interpret as "no contribution".
type Profile struct {
	User User `json:"user"`
}

type (
	User struct {
		Name             string                    `json:"name"`
		Demographics     Demographics              `json:"demographics"`
		EmploymentIncome EmploymentIncome          `json:"employment_income"`
		Expenses         Expenses                  `json:"expenses"`
		FinancialGoals   FinancialGoals            `json:"financial_goals"`
		FinancialHabits  FinancialHabits           `json:"financial_habits_preferences"`
		BankingCashflow  BankingCashflow           `json:"banking_cashflow"`
		Budget           Budget                    `json:"budget"`
		Savings          Savings                   `json:"savings"`
		WeeklyExpenses   map[string]WeeklyExpenses `json:"weekly_expenses"`
	}

	Demographics struct {
		Age           int      `json:"age"`
		Gender        string   `json:"gender"`
		MaritalStatus string   `json:"marital_status"`
		Dependents    int      `json:"dependents"`
		Location      Location `json:"location"`
	}

	Location struct {
		City     string `json:"city"`
		Province string `json:"province"`
		Country  string `json:"country"`
	}

	EmploymentIncome struct {
		EmploymentStatus string   `json:"employment_status"`
		JobTitle         string   `json:"job_title"`
		IncomeSources    []string `json:"income_sources"`
		MonthlyIncome    float64  `json:"monthly_income"`
		IncomeFrequency  string   `json:"income_frequency"`
	}

	Expenses struct {
		FixedMonthly          map[string]float64 `json:"fixed_monthly_expenses"`
		VariableMonthly       map[string]float64 `json:"variable_monthly_expenses"`
		DebtObligations       map[string]float64 `json:"debt_obligations"`
		MajorUpcomingExpenses []string           `json:"major_upcoming_expenses"`
	}

	FinancialGoals struct {
		ShortTermGoals []string    `json:"short_term_goals"`
		LongTermGoals  []string    `json:"long_term_goals"`
		SavingsGoals   SavingsGoal `json:"savings_goals"`
	}

	SavingsGoal struct {
		TargetAmount float64 `json:"target_amount"`
		Timeline     string  `json:"timeline"`
	}

	FinancialHabits struct {
		BudgetingStyle  string   `json:"budgeting_style"`
		SavingsBehavior string   `json:"savings_behavior"`
		RiskTolerance   string   `json:"risk_tolerance"`
		PreferredAlerts []string `json:"preferred_alerts"`
	}

	BankingCashflow struct {
		BankAccountsLinked  bool     `json:"bank_accounts_linked"`
		CreditCardsAndLoans []string `json:"credit_cards_and_loans"`
	}

	Budget struct {
		Categories        BudgetCategories `json:"categories"`
		TrackingFrequency string           `json:"tracking_frequency"`
	}

	// BudgetCategories holds allocation percentages. They are taken as-is:
	// upstream does not guarantee they sum to 100 or less.
	BudgetCategories struct {
		Necessities float64 `json:"necessities"`
		Wants       float64 `json:"wants"`
		Savings     float64 `json:"savings"`
	}

	Savings struct {
		EmergencyFund     float64 `json:"emergency_fund"`
		RetirementAccount float64 `json:"retirement_account"`
	}

	WeeklyExpenses struct {
		Fixed    map[string]float64 `json:"fixed_expenses"`
		Variable map[string]float64 `json:"variable_expenses"`
	}
)

// Clone returns a deep copy. Providers hand out clones so callers can never
// mutate the stored document through shared maps.
func (p Profile) Clone() Profile {
	out := p
	out.User.EmploymentIncome.IncomeSources = cloneSlice(p.User.EmploymentIncome.IncomeSources)
	out.User.Expenses.FixedMonthly = cloneMap(p.User.Expenses.FixedMonthly)
	out.User.Expenses.VariableMonthly = cloneMap(p.User.Expenses.VariableMonthly)
	out.User.Expenses.DebtObligations = cloneMap(p.User.Expenses.DebtObligations)
	out.User.Expenses.MajorUpcomingExpenses = cloneSlice(p.User.Expenses.MajorUpcomingExpenses)
	out.User.FinancialGoals.ShortTermGoals = cloneSlice(p.User.FinancialGoals.ShortTermGoals)
	out.User.FinancialGoals.LongTermGoals = cloneSlice(p.User.FinancialGoals.LongTermGoals)
	out.User.FinancialHabits.PreferredAlerts = cloneSlice(p.User.FinancialHabits.PreferredAlerts)
	out.User.BankingCashflow.CreditCardsAndLoans = cloneSlice(p.User.BankingCashflow.CreditCardsAndLoans)
	if p.User.WeeklyExpenses != nil {
		out.User.WeeklyExpenses = make(map[string]WeeklyExpenses, len(p.User.WeeklyExpenses))
		for k, v := range p.User.WeeklyExpenses {
			out.User.WeeklyExpenses[k] = WeeklyExpenses{
				Fixed:    cloneMap(v.Fixed),
				Variable: cloneMap(v.Variable),
			}
		}
	}
	return out
}

func cloneMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
