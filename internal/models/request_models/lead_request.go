package request_models

// LeadRequest is a homepage contact submission. Company is the honeypot
// field: real users never see it, so a non-empty value marks a bot.
type LeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
	Company string `json:"company"`
	Source  string `json:"source"`
}

// RouteFinderRequest is the longer route-finder questionnaire. Same honeypot
// convention as LeadRequest.
type RouteFinderRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`

	Urgency      string `json:"urgency"`
	Trigger      string `json:"trigger"`
	WeekdayDrive string `json:"weekdayDrive"`
	Parking      string `json:"parking"`
	Passengers   string `json:"passengers"`
	AfterLongDay string `json:"afterLongDay"`
	TwoYears     string `json:"twoYears"`

	TradeSpaceVsParking       string `json:"trade_space_vs_parking"`
	TradePerformanceVsEconomy string `json:"trade_performance_vs_economy"`
	TradeNewVsSpec            string `json:"trade_new_vs_spec"`
	TradeBadgeVsReliability   string `json:"trade_badge_vs_reliability"`
	TradeTechVsSimple         string `json:"trade_tech_vs_simple"`

	BudgetBand  string   `json:"budgetBand"`
	NewVsUsed   string   `json:"newVsUsed"`
	NiceToHaves []string `json:"niceToHaves"`
	Notes       string   `json:"notes"`
}
