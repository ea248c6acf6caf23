package burst

import (
	"context"
)

// Service resolves automatic fire as an escalating series of
// percentile checks. Each burst after the first is harder to land
// than the one before it.
type Service interface {
	// Resolve rolls every burst in a volley and tallies the hits
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}
