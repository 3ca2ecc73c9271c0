// Package models defines the server-side records persisted by the
// repositories. Entities reference each other by id only.
package models

import (
	"slices"
	"strings"
	"time"
)

// Permission is a named capability a user may hold.
type Permission string

const (
	PermissionAdmin            Permission = "ADMIN"
	PermissionUser             Permission = "USER"
	PermissionItemCreate       Permission = "ITEMCREATE"
	PermissionItemUpdate       Permission = "ITEMUPDATE"
	PermissionItemDelete       Permission = "ITEMDELETE"
	PermissionPermissionUpdate Permission = "PERMISSIONUPDATE"
)

// AllPermissions lists every known permission in declaration order.
var AllPermissions = []Permission{
	PermissionAdmin,
	PermissionUser,
	PermissionItemCreate,
	PermissionItemUpdate,
	PermissionItemDelete,
	PermissionPermissionUpdate,
}

// Valid reports whether p is one of the known permissions.
func (p Permission) Valid() bool {
	return slices.Contains(AllPermissions, p)
}

// Permissions is a set of permissions stored as an ordered, duplicate-free slice.
type Permissions []Permission

// NormalizePermissions upper-cases, de-duplicates and sorts perms.
func NormalizePermissions(perms []Permission) Permissions {
	out := make(Permissions, 0, len(perms))
	for _, p := range perms {
		p = Permission(strings.ToUpper(strings.TrimSpace(string(p))))
		if p != "" && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return out
}

// HasAny reports whether the set intersects required.
func (ps Permissions) HasAny(required ...Permission) bool {
	for _, r := range required {
		if slices.Contains(ps, r) {
			return true
		}
	}
	return false
}

// String encodes the set as a comma separated list, the storage format.
func (ps Permissions) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}

// ParsePermissions decodes the storage format produced by String.
func ParsePermissions(s string) Permissions {
	if s == "" {
		return Permissions{}
	}
	parts := strings.Split(s, ",")
	perms := make([]Permission, len(parts))
	for i, p := range parts {
		perms[i] = Permission(p)
	}
	return NormalizePermissions(perms)
}

// User is an account. PasswordHash and the reset fields never leave the server.
type User struct {
	ID               string
	Email            string
	Name             string
	PasswordHash     string
	Permissions      Permissions
	ResetTokenHash   *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
}
