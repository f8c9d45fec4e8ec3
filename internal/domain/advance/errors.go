package advance

import "errors"

var (
	ErrRequestNotFound         = errors.New("advance salary request not found")
	ErrRequestAlreadyProcessed = errors.New("advance salary request already processed")
)
