package icon

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrPercentageOutOfRange is returned when a percentage outside [0, 100]
	// reaches the rendering pipeline.
	ErrPercentageOutOfRange = errors.New("battery percentage must be between 0 and 100")
)

// RenderError is returned when an icon cannot be rasterised or encoded.
type RenderError struct {
	Text string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render icon %q: %v", e.Text, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ValidatePercentage rejects percentages outside [0, 100].
func ValidatePercentage(percentage int) error {
	if percentage < 0 || percentage > 100 {
		return pkgerrors.Wrapf(ErrPercentageOutOfRange, "got %d", percentage)
	}
	return nil
}
