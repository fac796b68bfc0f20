package session

import "errors"

var (
	errMalformedToken = errors.New("token is not a three-segment JWT")
	errMissingExpiry  = errors.New("token has no exp claim")
)
