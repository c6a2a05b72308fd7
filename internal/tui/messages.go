package tui

// Message types exchanged with the loader program

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error
func (e ErrMsg) Unwrap() error {
	return e.Err
}

// CatalogLoadedMsg signals that the catalog has been loaded
type CatalogLoadedMsg struct {
	Count int
}
