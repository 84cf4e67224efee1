package dto

// BulkProductsRequest used for POST /utils/create-products-in-bulk
type BulkProductsRequest struct {
	Products []CreateProductDTO `json:"products"`
}

// BulkFeedbacksRequest used for POST /utils/create-feedbacks-in-bulk
type BulkFeedbacksRequest struct {
	Feedbacks []CreateFeedbackDTO `json:"feedbacks"`
}

// BulkResponse aggregates per-item outcomes. Successes are only counted;
// failures are reported as stringified reasons in input order.
type BulkResponse struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	Errors       []string `json:"errors"`
}
