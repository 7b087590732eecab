package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Epmviz-Request-ID"

	// SessionTokenHeader carries the session token a scene was rendered under.
	SessionTokenHeader = "X-Epmviz-Session-Token"

	// SlimHeaderKey is to indicate whether the current request shall be ignored by Sentry transaction tracing.
	// This is typically used by probes to avoid useless data being sent to Sentry.
	SlimHeaderKey = "X-Slim"
)
