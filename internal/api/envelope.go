package api

// Envelope wraps the router-level responses (404, 405, panics, redirects) so
// pages and scripts see one predictable shape outside the huma operations.
type Envelope[T any] struct {
	Data  *T         `json:"data"`
	Meta  Meta       `json:"meta"`
	Error *ErrorBody `json:"error"`
}

// Meta holds cross-cutting metadata. Redirect and Notice carry the navigation
// contract: where the page should go next and what to tell the visitor.
type Meta struct {
	TraceID  *string `json:"traceId,omitempty"`
	Redirect string  `json:"redirect,omitempty"`
	Notice   string  `json:"notice,omitempty"`
}

// ErrorBody describes an error in a predictable structured format.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
	TraceID *string      `json:"traceId,omitempty"`
}

// FieldIssue gives field-level or contextual error information.
type FieldIssue struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue"`
}

// NewRedirectEnvelope constructs an envelope that only tells the caller where to go.
func NewRedirectEnvelope(traceID *string, location, notice string) Envelope[struct{}] {
	return Envelope[struct{}]{
		Meta: Meta{TraceID: traceID, Redirect: location, Notice: notice},
	}
}

// NewErrorEnvelope constructs an error envelope with no data.
func NewErrorEnvelope[T any](traceID *string, code, msg string, details []FieldIssue) Envelope[T] {
	var clonedDetails []FieldIssue
	if len(details) > 0 {
		clonedDetails = make([]FieldIssue, len(details))
		copy(clonedDetails, details)
	}
	return Envelope[T]{
		Meta: Meta{TraceID: traceID},
		Error: &ErrorBody{
			Code:    code,
			Message: msg,
			Details: clonedDetails,
			TraceID: traceID,
		},
	}
}
