package mannequins

import "errors"

// Pipeline failures. Each is wrapped together with the underlying cause.
var (
	ErrInvalidInput     = errors.New("measurementId is required")
	ErrNotFound         = errors.New("measurement not found")
	ErrLoadFailed       = errors.New("failed to load measurement")
	ErrGenerationFailed = errors.New("mannequin service failed")
	ErrStorageFailed    = errors.New("upload to storage failed")
	ErrPublicURLFailed  = errors.New("failed to get public url")
	ErrPersistFailed    = errors.New("failed to update mannequin")
	ErrInvalidAsset     = errors.New("asset must be a .glb file")
)

// stepOf names the pipeline step an error came from, for logs and metrics.
func stepOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidAsset):
		return "validate"
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrLoadFailed):
		return "load"
	case errors.Is(err, ErrGenerationFailed):
		return "generate"
	case errors.Is(err, ErrStorageFailed):
		return "store"
	case errors.Is(err, ErrPublicURLFailed):
		return "public_url"
	case errors.Is(err, ErrPersistFailed):
		return "persist"
	default:
		return "unknown"
	}
}
