package mock

import (
	"context"

	"github.com/fwojciec/htmlcheck"
)

var _ htmlcheck.Checker = (*Checker)(nil)

// Checker is a mock implementation of htmlcheck.Checker.
type Checker struct {
	DetectFn func(ctx context.Context, descriptors []*htmlcheck.Descriptor) (string, error)
}

func (c *Checker) Detect(ctx context.Context, descriptors []*htmlcheck.Descriptor) (string, error) {
	return c.DetectFn(ctx, descriptors)
}
