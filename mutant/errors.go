package mutant

import "errors"

var (
	ErrInvalidConfig    = errors.New("mutant: invalid config")
	ErrMissingBody      = errors.New("mutant: body collaborator is nil")
	ErrMissingTarget    = errors.New("mutant: target not bound")
	ErrMissingPathQuery = errors.New("mutant: path query not bound, using direct movement")
)
