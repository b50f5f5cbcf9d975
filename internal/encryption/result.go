package encryption

// Result carries the outcome of one file operation to the printer goroutine.
type Result struct {
	// Input file path
	Input string

	// Output file path, empty on failure
	Output string

	// Output file size in bytes
	OutputSize int64

	// Any error that occurred during processing
	Error error
}
