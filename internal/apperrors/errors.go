package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found, or that
// the requesting user does not own it. The two cases are deliberately not
// distinguishable to callers.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates a withdrawal larger than the account balance.
// No balance change and no transaction row result from such an attempt.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrTransactionFailed indicates the atomic balance-update-plus-append unit
// could not be committed; all changes from the attempt were rolled back.
var ErrTransactionFailed = errors.New("transaction failed")
