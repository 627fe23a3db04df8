package controller

import (
	"starhaven/internal/domain"
	"starhaven/pkg/utils"
)

// User handles account lifecycle and authentication. Every record that
// leaves this controller is redacted: the stored password hash never
// reaches a caller, per-record and per-slice-element.
type User struct {
	store domain.UserStore
}

func NewUser(store domain.UserStore) *User {
	return &User{store: store}
}

func (c *User) GetAllUsers() ([]domain.User, error) {
	users, err := c.store.All()
	if err != nil {
		return nil, opFailed("get all users", err)
	}
	return redactAll(users), nil
}

func (c *User) GetUserByID(id string) (*domain.User, error) {
	u, err := c.store.FindByID(id)
	if err != nil {
		return nil, opFailed("get user", err)
	}
	return redact(u), nil
}

func (c *User) GetUserByEmail(email string) (*domain.User, error) {
	u, err := c.store.FindByEmail(email)
	if err != nil {
		return nil, opFailed("get user by email", err)
	}
	return redact(u), nil
}

// AuthenticateUser verifies the plaintext against the stored hash.
// Unknown email and wrong password both return nil rather than an
// error; only inactive accounts and store failures fail.
func (c *User) AuthenticateUser(email, password string) (*domain.User, error) {
	u, err := c.store.FindByEmail(email)
	if err != nil {
		return nil, &Error{Kind: OperationFailed, Prefix: "Authentication failed", Cause: err}
	}
	if u == nil {
		return nil, nil
	}
	if u.Status != domain.UserStatusActive {
		return nil, &Error{Kind: ValidationFailed, Prefix: "Authentication failed",
			Detail: "User account is not active"}
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, nil
	}
	return redact(u), nil
}

// CreateUser requires name and email and rejects duplicate emails via a
// pre-check lookup. A supplied plaintext password is replaced with its
// bcrypt hash before anything is persisted; omitted passwords persist
// without one.
func (c *User) CreateUser(u domain.User, password string) (*domain.User, error) {
	const op = "create user"
	if u.Name == "" || u.Email == "" {
		return nil, invalid(op, "Name and email are required")
	}
	existing, err := c.store.FindByEmail(u.Email)
	if err != nil {
		return nil, opFailed(op, err)
	}
	if existing != nil {
		return nil, invalid(op, "User with this email already exists")
	}
	if password != "" {
		u.PasswordHash = utils.HashPassword(password)
	}
	if u.Status == "" {
		u.Status = domain.UserStatusActive
	}
	if err := c.store.Create(&u); err != nil {
		return nil, opFailed(op, err)
	}
	return redact(&u), nil
}

// UpdateUser merges the patch into the record; nil when id is unknown.
// Email uniqueness is re-checked only when the email actually changes;
// a new plaintext password is re-hashed before persisting.
func (c *User) UpdateUser(id string, patch domain.UserPatch) (*domain.User, error) {
	const op = "update user"
	current, err := c.store.FindByID(id)
	if err != nil {
		return nil, opFailed(op, err)
	}
	if current == nil {
		return nil, nil
	}
	fields := map[string]any{}
	if patch.Email != nil && *patch.Email != current.Email {
		conflict, err := c.store.FindByEmail(*patch.Email)
		if err != nil {
			return nil, opFailed(op, err)
		}
		if conflict != nil {
			return nil, invalid(op, "Email already exists")
		}
		fields["email"] = *patch.Email
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Password != nil && *patch.Password != "" {
		fields["password_hash"] = utils.HashPassword(*patch.Password)
	}
	if patch.Role != nil {
		fields["role"] = *patch.Role
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	u, err := c.store.Update(id, fields)
	if err != nil {
		return nil, opFailed(op, err)
	}
	return redact(u), nil
}

func (c *User) DeleteUser(id string) (*domain.User, error) {
	u, err := c.store.Delete(id)
	if err != nil {
		return nil, opFailed("delete user", err)
	}
	return redact(u), nil
}

// ChangeUserStatus validates the status against the enum and delegates
// to the update path.
func (c *User) ChangeUserStatus(id, status string) (*domain.User, error) {
	const op = "change user status"
	switch status {
	case domain.UserStatusActive, domain.UserStatusInactive, domain.UserStatusSuspended:
	default:
		return nil, invalid(op, "Invalid status. Must be active, inactive, or suspended")
	}
	u, err := c.store.Update(id, map[string]any{"status": status})
	if err != nil {
		return nil, opFailed(op, err)
	}
	return redact(u), nil
}

// GetUsersByRole filters the full user list by role. No match yields an
// empty slice, never an error.
func (c *User) GetUsersByRole(role string) ([]domain.User, error) {
	users, err := c.store.All()
	if err != nil {
		return nil, opFailed("get users by role", err)
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u.Redacted())
		}
	}
	return out, nil
}

func redact(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	r := u.Redacted()
	return &r
}

func redactAll(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = u.Redacted()
	}
	return out
}
