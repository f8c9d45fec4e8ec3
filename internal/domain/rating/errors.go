package rating

import "errors"

var (
	ErrRatingLinkNotFound = errors.New("rating link not found")
	ErrLinkExists         = errors.New("rating link already exists for this work order")
	ErrAlreadySubmitted   = errors.New("rating has already been submitted")
	ErrOrderNotSubmitted  = errors.New("work order has not been submitted yet")
)
