package model

// RevenueRecognitionModel distinguishes how a plan's revenue is earned.
// Carried for reporting; recognition timing itself is governed uniformly by
// RevenueDeferralMonths regardless of this value.
type RevenueRecognitionModel string

const (
	RecognitionSubscription RevenueRecognitionModel = "subscription"
	RecognitionServices     RevenueRecognitionModel = "services"
	RecognitionTransactional RevenueRecognitionModel = "transactional"
)

// RevenuePlan is one product line's customer-driven revenue model.
type RevenuePlan struct {
	Name             string                   `json:"name"`
	Recognition      RevenueRecognitionModel  `json:"recognition"`
	InitialCustomers float64                  `json:"initial_customers"`
	InitialARPA      float64                  `json:"initial_arpa"`
	NewCustomers     MonthlySchedule          `json:"new_customers"`
	ChurnRate        MonthlySchedule          `json:"churn_rate"`
	ExpansionRate    MonthlySchedule          `json:"expansion_rate"`
	ContractionRate  MonthlySchedule          `json:"contraction_rate"`
	DiscountRate     MonthlySchedule          `json:"discount_rate"`
	ARPAGrowthRate   MonthlySchedule          `json:"arpa_growth_rate"`
	SeasonalPattern  SeasonalPattern          `json:"seasonal_pattern"`
	RampUp           RampUpSettings           `json:"ramp_up"`

	// RevenueDeferralMonths, when > 0, routes gross revenue through a
	// fixed-length FIFO queue before it is recognized in net revenue.
	RevenueDeferralMonths int `json:"revenue_deferral_months"`

	ServicesAttachRate float64         `json:"services_attach_rate"`
	ServicesASP        float64         `json:"services_asp"`
	TransactionalRate  float64         `json:"transactional_rate"` // schema only, never applied
	TransactionalVolume MonthlySchedule `json:"transactional_volume"`
	TransactionalFee   float64         `json:"transactional_fee"`
}

// RevenueModel aggregates every plan plus revenue lines not tied to a plan.
type RevenueModel struct {
	Plans                        []RevenuePlan     `json:"plans"`
	OtherRecurringRevenue        MonthlySchedule   `json:"other_recurring_revenue"`
	ProfessionalServicesRevenue  MonthlySchedule   `json:"professional_services_revenue"`
	Adjustments                  map[string]float64 `json:"adjustments,omitempty"`
}

// RevenueProjection is one plan's per-month detail. Kept for reporting
// granularity beyond RevenueSummary; the calculator does not currently
// populate a list of these per month (RevenueSummary is the aggregate the
// orchestrator carries forward), but the type is part of the schema.
type RevenueProjection struct {
	PlanName      string  `json:"plan_name"`
	Customers     float64 `json:"customers"`
	Revenue       float64 `json:"revenue"`
	ChurnedRevenue float64 `json:"churned_revenue"`
	ExpansionRevenue float64 `json:"expansion_revenue"`
	NewCustomers  float64 `json:"new_customers"`
}

// RevenueSummary is the month's aggregate across every plan.
type RevenueSummary struct {
	TotalGross     float64 `json:"total_gross"`
	TotalNet       float64 `json:"total_net"`
	TotalChurn     float64 `json:"total_churn"`
	TotalExpansion float64 `json:"total_expansion"`
	ARR            float64 `json:"arr"`
}
