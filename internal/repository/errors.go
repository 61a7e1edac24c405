package repository

import "errors"

// ErrNotFound is returned when a document does not exist. Remote store
// errors are passed through wrapped; callers can distinguish "no data"
// from "fetch failed".
var ErrNotFound = errors.New("document not found")
