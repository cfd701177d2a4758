package service

import "context"

// OrderConfirmation is the content of the email sent after checkout.
type OrderConfirmation struct {
	To        string
	OrderIDs  []string
	Subtotal  string
	Discount  string
	Total     string
	PromoCode string
	ShipTo    string
}

// PasswordReset is the content of the email answering a reset request.
type PasswordReset struct {
	To    string
	Token string
}

// Mailer sends transactional email.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, msg *OrderConfirmation) error
	SendPasswordReset(ctx context.Context, msg *PasswordReset) error
}
