package response_models

type SubscriptionPlan struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DurationInDays int    `json:"duration_in_days"`
	PriceMinor     int64  `json:"price"`
	Currency       string `json:"currency"`
	// Derived display price per 30 days, in minor units.
	PricePerMonthMinor int64 `json:"price_per_month"`
}

type SubscriptionStatusResponse struct {
	IsPremium        bool   `json:"is_premium"`
	Active           bool   `json:"active"`
	PlanID           string `json:"plan_id,omitempty"`
	PremiumExpiresAt *int64 `json:"premium_expires_at,omitempty"`
	// Whole days until expiry, rounded up; negative once lapsed. Omitted for
	// forever grants.
	DaysRemaining *int `json:"days_remaining,omitempty"`
}

type ActivateSubscriptionResponse struct {
	PlanID           string `json:"plan_id"`
	PremiumExpiresAt int64  `json:"premium_expires_at"`
}

type CreateCheckoutResponse struct {
	OrderCode  int64  `json:"order_code"`
	Amount     int64  `json:"amount"`
	PaymentURL string `json:"payment_url"`
	Provider   string `json:"provider"`
}
