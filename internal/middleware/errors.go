package middleware

import "errors"

var (
	errTokenRequired = errors.New("token is required")
	errTokenRevoked  = errors.New("token has been revoked")
)
