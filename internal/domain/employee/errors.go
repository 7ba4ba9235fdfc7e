package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrPhoneExists      = errors.New("phone number already registered")
	ErrAccountInactive  = errors.New("account has been deactivated")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
	ErrNotPermitted     = errors.New("not permitted for this role")
)
