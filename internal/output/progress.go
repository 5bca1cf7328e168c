// Package output renders transient progress lines on the terminal.
package output

import (
	"fmt"

	"github.com/efritz/pentimento"
)

// Update replaces the current progress line.
type Update func(format string, args ...interface{})

// WithProgress calls fn with an Update that redraws a progress line while fn
// runs. When disabled, updates are dropped and fn runs as is.
func WithProgress(enabled bool, fn func(update Update) error) error {
	if !enabled {
		return fn(func(format string, args ...interface{}) {})
	}

	return pentimento.PrintProgress(func(p *pentimento.Printer) error {
		return fn(func(format string, args ...interface{}) {
			p.WriteString(fmt.Sprintf(format, args...))
		})
	})
}
