package dto

// CreateFeedbackDTO used for POST /feedback. The sentiment score and
// response time are filled in by the enrichment step, never by clients.
type CreateFeedbackDTO struct {
	FeedbackText string `json:"feedback_text" binding:"required"`
	UserID       string `json:"user_id" binding:"required"`
	ProductID    *int64 `json:"product_id,omitempty"`
}
