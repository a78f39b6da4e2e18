package model

import "time"

// Feedback is a user rating of a conversion result. Rating runs from
// 1 (poor) to 5 (excellent).
type Feedback struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	OriginalCode  string    `json:"original_code"`
	ConvertedCode string    `json:"converted_code"`
	Rating        int       `json:"rating"`
	Comments      string    `json:"comments,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
