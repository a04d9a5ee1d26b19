package error

// DetailedError pairs a GenericError with diagnostic detail. The REST layer
// exposes Details only when debug mode is enabled; otherwise the caller sees
// the generic message alone.
type DetailedError struct {
	GenericError
	Details string
}
