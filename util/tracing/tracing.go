package tracing

// Context carries per-request identifiers through the handler chain.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
