package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownCurrency indicates a currency code or symbol outside the ISO 4217 set.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrAmbiguous indicates that an extraction produced multiple conflicting total candidates.
var ErrAmbiguous = errors.New("ambiguous extraction result")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
