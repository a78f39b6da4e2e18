package model

import "time"

// PasswordResetToken tracks an issued password reset token by its JTI so a
// token can only redeem one password change. The signed token itself is never
// stored, only its identifier.
type PasswordResetToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	JTI       string    `json:"jti"`
	Email     string    `json:"email"`
	Used      bool      `json:"used"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
