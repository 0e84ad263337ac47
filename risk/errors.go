package risk

import (
	"errors"
	"fmt"
)

// ErrBadExitSplit rejects partial-exit percentages that are out of range or
// together exceed the whole position.
var ErrBadExitSplit = errors.New("partial exit percentages must be in [0,100] and sum to at most 100")

// InvalidDirectionError reports a stop or target on the wrong side of entry
// for the chosen direction (or a zero distance, which amounts to the same
// thing). It carries the position type so the caller can render a
// direction-specific correction.
type InvalidDirectionError struct {
	Position PositionType
}

func (e *InvalidDirectionError) Error() string {
	switch e.Position {
	case Long:
		return "long requires stop < entry < target"
	case Short:
		return "short requires target < entry < stop"
	default:
		return fmt.Sprintf("unknown position type %q", string(e.Position))
	}
}

// IsInvalidDirection reports whether err is an InvalidDirectionError.
func IsInvalidDirection(err error) bool {
	var ide *InvalidDirectionError
	return errors.As(err, &ide)
}
