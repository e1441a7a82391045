package repository

import "errors"

// ErrNotFound reports a missing entity. Services translate it to a NOT_FOUND
// domain error at the API boundary.
var ErrNotFound = errors.New("not found")

// ErrAlreadyAnswered reports an attempt to answer an inquiry twice; the
// Pending -> Answered transition is one-way.
var ErrAlreadyAnswered = errors.New("inquiry already answered")

// ErrDuplicateName reports a name collision on create/rename.
var ErrDuplicateName = errors.New("name already in use")
