package error

// GenericError is implemented by every typed error in this package so the
// REST layer can map an error to an HTTP status and machine-readable code
// without inspecting concrete types.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
