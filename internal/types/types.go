package types

// AdviceResponse is the body of a successful advice-mode generate call.
type AdviceResponse struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ErrorResponse carries a user-facing failure. API routes fill Detail, the
// static image route fills Error.
type ErrorResponse struct {
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}
