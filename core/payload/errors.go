package payload

import "errors"

var (
	ErrNoPayload = errors.New("no structured payload found")
	// ErrAmbiguousFormat is returned when the first entry carries both an
	// order and a literal start delay.
	ErrAmbiguousFormat = errors.New("payload has both ordering and start delay fields")
	ErrLegacyFormat    = errors.New("legacy payload format is not supported")
	ErrUnknownFormat   = errors.New("payload is not in the compact format")
	ErrNoActors        = errors.New("payload has no usable actor entries")
)
