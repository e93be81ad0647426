package handlers

import "errors"

// errServerError is returned by the /error endpoint, which exists to exercise
// the Internal failure path end to end.
var errServerError = errors.New("intentional server error")
