package constant

const (
	ServiceName = "epmviz"

	// DefaultModel is the model selected when a request names none.
	DefaultModel = "default"

	// ViewerQueryKey names the query parameter carrying the viewer id.
	ViewerQueryKey = "viewer"
)
