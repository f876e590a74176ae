package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered in this company")
	ErrManagerRoleRequired    = errors.New("manager role required")
	ErrOwnerPrivilegeRequired = errors.New("owner privilege required")
)
