package api

// Envelope wraps every API payload. Data being absent while Success is true
// is legal and means an empty result, not an error; callers check Data for
// nil rather than relying on Success alone.
type Envelope[T any] struct {
	Success       bool     `json:"success"`
	Message       *string  `json:"message,omitempty"`
	Data          *T       `json:"data,omitempty"`
	Page          *int     `json:"page,omitempty"`
	Size          *int     `json:"size,omitempty"`
	TotalElements *int64   `json:"totalElements,omitempty"`
	TotalPages    *int     `json:"totalPages,omitempty"`
	Errors        []string `json:"errors,omitempty"`
	Timestamp     *string  `json:"timestamp,omitempty"`
	Path          *string  `json:"path,omitempty"`
}

// HasData reports whether the envelope carries a payload.
func (e *Envelope[T]) HasData() bool {
	return e.Data != nil
}

// Msg returns the server message, or "" when absent.
func (e *Envelope[T]) Msg() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}
