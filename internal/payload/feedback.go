package payload

type FeedbackRequest struct {
	OriginalCode  string `json:"original_code"  validate:"required"`
	ConvertedCode string `json:"converted_code" validate:"required"`
	Rating        int    `json:"rating"         validate:"required,min=1,max=5"`
	Comments      string `json:"comments"`
}
