package sequential

import "go.llib.dev/frameless/pkg/errorkit"

const (
	ErrUnsupportedType errorkit.Error = "unsupported sequence type"
	ErrCategory        errorkit.Error = "tag does not belong to the operation"
	ErrNotSupported    errorkit.Error = "operation is not supported by the sequence type"
	ErrIndexOutOfRange errorkit.Error = "index out of range"
	ErrNilPayload      errorkit.Error = "nil payload"
	ErrCallback        errorkit.Error = "callback has the wrong signature"
	ErrClosed          errorkit.Error = "sequence is closed"
)

const (
	ErrStale     errorkit.Error = "iterator is stale"
	ErrNotActive errorkit.Error = "iterator is not active"
	ErrRange     errorkit.Error = "iterator range is inverted"
	ErrStep      errorkit.Error = "iterator step must not be zero"
)

// errorF details err while keeping its message on a single line.
func errorF(err errorkit.Error, format string, a ...any) error {
	return errorkit.WithoutTrace(err.F(format, a...))
}

// oneLine drops the stack trace a traced error would print, for example one returned by an add callback.
func oneLine(err error) error {
	return errorkit.WithoutTrace(err)
}
