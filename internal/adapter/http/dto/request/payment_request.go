package request

// CheckoutSessionRequest starts online payment for a pending booking. The
// redirect targets are provided by the frontend so the provider can send the
// visitor back after checkout.
type CheckoutSessionRequest struct {
	BookingID  string `json:"booking_id" binding:"required"`
	SuccessURL string `json:"success_url" binding:"required,url"`
	CancelURL  string `json:"cancel_url" binding:"required,url"`
}
