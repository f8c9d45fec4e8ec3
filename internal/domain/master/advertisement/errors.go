package advertisement

import "errors"

var (
	ErrAdvertisementNotFound = errors.New("advertisement not found")
)
