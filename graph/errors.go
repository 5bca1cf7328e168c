package graph

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyKey is returned when a rule names an empty container.
	ErrEmptyKey = errors.New("empty container identifier")

	// ErrOverflow is returned when a weighted sum no longer fits in 64 bits.
	ErrOverflow = errors.New("container count overflows uint64")
)

// CycleError describes a containment cycle. Path starts and ends with the
// same container.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("containment cycle: %s", strings.Join(e.Path, " -> "))
}
