package services

import "nyaya/internal/models/response_models"

// Plan is a static catalog entry. The catalog is fixed at build time; only
// the plan id is persisted per account.
type Plan struct {
	ID             string
	Name           string
	DurationInDays int
	PriceMinor     int64
	Currency       string
}

// Prices are INR paise.
var planCatalog = []Plan{
	{ID: "monthly", Name: "Monthly", DurationInDays: 30, PriceMinor: 49900, Currency: "INR"},
	{ID: "6-months", Name: "6 Months", DurationInDays: 180, PriceMinor: 249900, Currency: "INR"},
	{ID: "yearly", Name: "Yearly", DurationInDays: 365, PriceMinor: 449900, Currency: "INR"},
	{ID: "3-years", Name: "3 Years", DurationInDays: 1095, PriceMinor: 999900, Currency: "INR"},
}

func AllPlans() []Plan {
	plans := make([]Plan, len(planCatalog))
	copy(plans, planCatalog)
	return plans
}

// PlanByID is a pure lookup; returns nil for unknown ids.
func PlanByID(id string) *Plan {
	for i := range planCatalog {
		if planCatalog[i].ID == id {
			return &planCatalog[i]
		}
	}
	return nil
}

// PricePerMonthMinor derives the display price for a 30-day month.
func (p Plan) PricePerMonthMinor() int64 {
	if p.DurationInDays == 0 {
		return p.PriceMinor
	}
	return p.PriceMinor * 30 / int64(p.DurationInDays)
}

func (p Plan) ToResponse() response_models.SubscriptionPlan {
	return response_models.SubscriptionPlan{
		ID:                 p.ID,
		Name:               p.Name,
		DurationInDays:     p.DurationInDays,
		PriceMinor:         p.PriceMinor,
		Currency:           p.Currency,
		PricePerMonthMinor: p.PricePerMonthMinor(),
	}
}
