package model

// APIError is an application-level failure reported by the exam service
// as a JSON body of the form {"error": "..."}. The message is shown to
// the user verbatim.
type APIError struct {
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}
