package user

import "strings"

// Admin is the authenticated dashboard operator. Accounts live in the remote
// backend; this service only sees the claims of a validated token.
type Admin struct {
	id   string
	role Role
}

func NewAdmin(id, role string) (*Admin, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	r, err := NewRole(role)
	if err != nil {
		return nil, err
	}
	return &Admin{id: id, role: r}, nil
}

func (a *Admin) ID() string     { return a.id }
func (a *Admin) Role() Role     { return a.role }
func (a *Admin) CanWrite() bool { return a.role.AtLeast(RoleOperator) }
