package models

// ErrorResponse is the standard error envelope returned by the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries a fresh JWT plus the authenticated user
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public shape of a user
type UserResponse struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Token        string       `json:"token"`
	User         UserResponse `json:"user"`
	ReferralCode string       `json:"referral_code"`
	ReferredBy   *int         `json:"referred_by,omitempty"`
}

// ValidateCodeResponse reports whether a referral code can attribute signups
type ValidateCodeResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// PayoutRunRequest triggers a payout batch with optional overrides
type PayoutRunRequest struct {
	MinAmount *float64 `json:"min_amount" validate:"omitempty,gt=0"`
	Limit     *int     `json:"limit" validate:"omitempty,gt=0,lte=1000"`
}

// RecordTransactionRequest creates a ledger entry
type RecordTransactionRequest struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Currency        string  `json:"currency"`
	Type            string  `json:"type" validate:"required,oneof=subscription tip message post"`
	SenderUserID    *int    `json:"sender_user_id"`
	RecipientUserID *int    `json:"recipient_user_id" validate:"required"`
	Description     string  `json:"description"`
}

// PayoutAddressRequest sets the destination for commission payouts
type PayoutAddressRequest struct {
	PayoutAddress string `json:"payout_address" validate:"required"`
}
