package services

import (
	"errors"
	"fmt"
)

// Sentinel errors dipetakan controller ke kode HTTP: *NotFound -> 404,
// conflict (duplikat, masih punya anak, role admin) -> 409, sisanya 400.
var (
	ErrMenuNotFound       = errors.New("menu not found")
	ErrParentMenuNotFound = errors.New("parent menu not found")
	ErrMenuHasChildren    = errors.New("menu still has child menus")
	ErrMenuOwnParent      = errors.New("menu cannot be moved under itself")
	ErrButtonNesting      = errors.New("button menu cannot have button children")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleExists         = errors.New("role name already exists")
	ErrRoleProtected      = errors.New("admin role cannot be deleted")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username already exists")
	ErrUserNoRoles        = errors.New("user has no role assigned")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPermissionNotFound = errors.New("permission not found")
	ErrArticleNotFound    = errors.New("article not found")
)

// PermissionExistsError dikembalikan saat membuat permission dengan
// nama yang sudah dipakai, membawa id permission yang sudah ada.
type PermissionExistsError struct {
	ID   uint
	Name string
}

func (e *PermissionExistsError) Error() string {
	return fmt.Sprintf("permission %q already exists (id=%d)", e.Name, e.ID)
}
