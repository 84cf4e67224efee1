package service

import "errors"

// Sentinel errors returned by the service layer. Handlers compare with
// errors.Is and map them to HTTP status codes; messages stay stable.
var (
	// ErrMissingField covers required request fields that validation at
	// the binding layer cannot see (type-specific product fields).
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidProductType rejects a type outside FILM/BOOK/MUSIC.
	ErrInvalidProductType = errors.New("product type not valid")

	// ErrCorruptProductType flags a stored product whose type has no
	// matching extension row. This is a data-integrity fault.
	ErrCorruptProductType = errors.New("stored product type has no matching extension")

	ErrProductNotFound = errors.New("product not found")

	// ErrNoFeedback means a statistics request hit a product without any
	// feedback rows.
	ErrNoFeedback = errors.New("no feedback found for the specified product")

	// ErrInvalidBulkInput rejects an empty or missing bulk array before
	// any work is attempted.
	ErrInvalidBulkInput = errors.New("input array is required and should not be empty")

	// ErrEnrichmentFailed wraps any sentiment-analyzer failure. The
	// feedback creation it belongs to fails with it.
	ErrEnrichmentFailed = errors.New("feedback enrichment failed")
)
