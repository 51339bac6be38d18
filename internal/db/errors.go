package db

import "errors"

// ErrNotFound is returned when a document does not exist in Firestore.
var ErrNotFound = errors.New("document not found")

// ErrAlreadyExists is returned by conditional creates when a document with the
// same ID already exists. Repositories that key documents deterministically
// (users by email, reports by lesson+reporter, payments by transaction ID)
// rely on this to enforce uniqueness without a read-then-write.
var ErrAlreadyExists = errors.New("document already exists")
