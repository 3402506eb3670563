package generation

import "errors"

// Common errors returned by generator implementations
var (
	// ErrEmptySourceText is returned when the source text is empty.
	ErrEmptySourceText = errors.New("source text cannot be empty")

	// ErrGenerationFailed is returned when the upstream call fails for
	// any general reason (network, quota, provider error).
	ErrGenerationFailed = errors.New("failed to generate cards from text")

	// ErrMalformedResponse is returned when the completion cannot be
	// parsed into a valid list of question/answer pairs.
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrContentBlocked is returned when the provider blocks the content
	// through its safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
