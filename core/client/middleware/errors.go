package middleware

import "errors"

// ErrRetryExhausted is returned by the retry middleware when all retry attempts
// have failed. The returned error also wraps the last provider error, so both
// can be inspected:
//
//	if errors.Is(err, middleware.ErrRetryExhausted) {
//	    // all attempts failed
//	}
var ErrRetryExhausted = errors.New("charge: all retry attempts exhausted")
