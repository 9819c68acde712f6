package request_models

type CreateCheckoutRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// ActivateSubscriptionRequest carries the payment confirmation reference the
// caller obtained from the gateway. The lifecycle manager trusts it; verifying
// the charge with the gateway is the caller's precondition.
type ActivateSubscriptionRequest struct {
	PlanID           string `json:"plan_id" binding:"required"`
	PaymentReference string `json:"payment_reference" binding:"required"`
}
