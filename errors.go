package goPassCheck

import "errors"

var (
	// ErrPasswordEmpty is an exported constant or variable used by the password check engine.
	ErrPasswordEmpty = errors.New("password must not be empty")
	// ErrEngineNotReady is an exported constant or variable used by the password check engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrBreachCheckDisabled is an exported constant or variable used by the password check engine.
	ErrBreachCheckDisabled = errors.New("breach check disabled")
	// ErrLookupRateLimited is an exported constant or variable used by the password check engine.
	ErrLookupRateLimited = errors.New("breach lookup rate limited")
)
