package core

import "errors"

// Domain identifies one of the dashboard's financial views.
type Domain string

const (
	DomainBudget   Domain = "budget"
	DomainCashFlow Domain = "cashflow"
	DomainSavings  Domain = "savings"
	DomainInsights Domain = "insights"
)

var ErrUnknownDomain = errors.New("unknown domain")

// Domains lists every valid domain in display order.
func Domains() []Domain {
	return []Domain{DomainBudget, DomainCashFlow, DomainSavings, DomainInsights}
}

// ParseDomain validates a raw domain string (e.g. a URL path segment).
func ParseDomain(s string) (Domain, error) {
	switch d := Domain(s); d {
	case DomainBudget, DomainCashFlow, DomainSavings, DomainInsights:
		return d, nil
	}
	return "", ErrUnknownDomain
}

// AgentType returns the agent identifier used in request envelopes,
// e.g. "budget_agent".
func (d Domain) AgentType() string {
	return string(d) + "_agent"
}

// IsValid returns true if the domain is one of the four known views.
func (d Domain) IsValid() bool {
	_, err := ParseDomain(string(d))
	return err == nil
}

// Summary is the aggregated, display-ready output for one domain. Each
// variant is a read-only value object: built fresh on every aggregation,
// never mutated afterwards.
type Summary interface {
	// Headline returns the single human-readable summary line.
	Headline() string
}

// LineItem is one display row (a transaction or an expense class total).
// Date carries a label rather than a calendar date: "Monthly", "Fixed",
// "Variable" or "Current" depending on the view.
type LineItem struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type BudgetSummary struct {
	Summary     string     `json:"summary"`
	Suggestions []string   `json:"suggestions"`
	Data        []LineItem `json:"data"`
}

type WeeklyCashFlow struct {
	Week         string     `json:"week"`
	Total        float64    `json:"total"`
	Transactions []LineItem `json:"transactions"`
}

type CashFlowSummary struct {
	Summary    string           `json:"summary"`
	Trends     []string         `json:"trends"`
	WeeklyData []WeeklyCashFlow `json:"weeklyData"`
}

type GoalProgress struct {
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Deadline string  `json:"deadline"`
}

type SavingsSummary struct {
	Summary      string         `json:"summary"`
	Suggestions  []string       `json:"suggestions"`
	Goals        []GoalProgress `json:"goals"`
	Transactions []LineItem     `json:"transactions"`
}

type InsightCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// AlertType severity levels for insight alerts.
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
	AlertSuccess AlertType = "success"
)

type Alert struct {
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
	Action  string    `json:"action,omitempty"`
}

type InsightsSummary struct {
	Summary  string            `json:"summary"`
	Insights []InsightCategory `json:"insights"`
	Alerts   []Alert           `json:"alerts"`
}

func (s BudgetSummary) Headline() string   { return s.Summary }
func (s CashFlowSummary) Headline() string { return s.Summary }
func (s SavingsSummary) Headline() string  { return s.Summary }
func (s InsightsSummary) Headline() string { return s.Summary }
