package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starhaven/internal/domain"
	"starhaven/pkg/utils"
)

func TestUser_Create_RequiresNameAndEmail(t *testing.T) {
	tests := []struct {
		name string
		user domain.User
	}{
		{"missing name", domain.User{Email: "a@b.c"}},
		{"missing email", domain.User{Name: "Ada"}},
		{"missing both", domain.User{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeUserStore{}
			c := NewUser(store)

			got, err := c.CreateUser(tt.user, "pw")
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, IsValidation(err))
			assert.Equal(t, "Failed to create user: Name and email are required", err.Error())
			assert.Equal(t, 0, store.createCalls)
		})
	}
}

func TestUser_Create_RejectsDuplicateEmail(t *testing.T) {
	store := &fakeUserStore{
		findByEmailFn: func(email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email}, nil
		},
	}
	c := NewUser(store)

	got, err := c.CreateUser(domain.User{Name: "Ada", Email: "ada@obs.io"}, "pw")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Failed to create user: User with this email already exists", err.Error())
	assert.Equal(t, 0, store.createCalls)
}

func TestUser_Create_HashesPassword(t *testing.T) {
	mem := newMemUserStore()
	c := NewUser(mem)

	got, err := c.CreateUser(domain.User{Name: "Ada", Email: "ada@obs.io"}, "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.PasswordHash, "returned record must be redacted")

	stored, err := mem.FindByEmail("ada@obs.io")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash, "plaintext must never be persisted")
	assert.True(t, utils.CheckPassword("s3cret-pass", stored.PasswordHash))
}

func TestUser_Create_WithoutPassword(t *testing.T) {
	mem := newMemUserStore()
	c := NewUser(mem)

	got, err := c.CreateUser(domain.User{Name: "Ada", Email: "ada@obs.io"}, "")
	require.NoError(t, err)
	require.NotNil(t, got)

	stored, err := mem.FindByEmail("ada@obs.io")
	require.NoError(t, err)
	assert.Empty(t, stored.PasswordHash)
}

func TestUser_CreateThenAuthenticate_RoundTrip(t *testing.T) {
	mem := newMemUserStore()
	c := NewUser(mem)

	_, err := c.CreateUser(domain.User{Name: "Ada", Email: "ada@obs.io"}, "p")
	require.NoError(t, err)

	u, err := c.AuthenticateUser("ada@obs.io", "p")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "ada@obs.io", u.Email)
	assert.Empty(t, u.PasswordHash)

	wrong, err := c.AuthenticateUser("ada@obs.io", "wrong")
	require.NoError(t, err, "a mismatch is not an error")
	assert.Nil(t, wrong)
}

func TestUser_Authenticate_UnknownEmailIsNil(t *testing.T) {
	c := NewUser(newMemUserStore())

	u, err := c.AuthenticateUser("ghost@obs.io", "p")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUser_Authenticate_InactiveAccount(t *testing.T) {
	for _, status := range []string{domain.UserStatusInactive, domain.UserStatusSuspended} {
		t.Run(status, func(t *testing.T) {
			store := &fakeUserStore{
				findByEmailFn: func(email string) (*domain.User, error) {
					return &domain.User{ID: "u1", Email: email, Status: status,
						PasswordHash: utils.HashPassword("p")}, nil
				},
			}
			c := NewUser(store)

			u, err := c.AuthenticateUser("ada@obs.io", "p")
			require.Error(t, err)
			assert.Nil(t, u)
			assert.Equal(t, "Authentication failed: User account is not active", err.Error())
		})
	}
}

func TestUser_Authenticate_WrapsStoreError(t *testing.T) {
	store := &fakeUserStore{
		findByEmailFn: func(string) (*domain.User, error) { return nil, errors.New("db down") },
	}
	c := NewUser(store)

	_, err := c.AuthenticateUser("ada@obs.io", "p")
	require.Error(t, err)
	assert.Equal(t, "Authentication failed: db down", err.Error())
}

func TestUser_Update_SameEmailSkipsUniquenessCheck(t *testing.T) {
	store := &fakeUserStore{
		findByIDFn: func(id string) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Ada", Email: "ada@obs.io"}, nil
		},
		updateFn: func(id string, fields map[string]any) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Ada", Email: "ada@obs.io"}, nil
		},
	}
	c := NewUser(store)

	same := "ada@obs.io"
	u, err := c.UpdateUser("u1", domain.UserPatch{Email: &same})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, 0, store.findByEmailCalls, "unchanged email must not trigger a lookup")
}

func TestUser_Update_NewEmailConflict(t *testing.T) {
	store := &fakeUserStore{
		findByIDFn: func(id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "ada@obs.io"}, nil
		},
		findByEmailFn: func(email string) (*domain.User, error) {
			return &domain.User{ID: "u2", Email: email}, nil
		},
	}
	c := NewUser(store)

	taken := "taken@obs.io"
	u, err := c.UpdateUser("u1", domain.UserPatch{Email: &taken})
	require.Error(t, err)
	assert.Nil(t, u)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Failed to update user: Email already exists", err.Error())
}

func TestUser_Update_RehashesNewPassword(t *testing.T) {
	mem := newMemUserStore()
	c := NewUser(mem)

	created, err := c.CreateUser(domain.User{Name: "Ada", Email: "ada@obs.io", Status: "active"}, "old-pass")
	require.NoError(t, err)

	pw := "new-pass"
	u, err := c.UpdateUser(created.ID, domain.UserPatch{Password: &pw})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Empty(t, u.PasswordHash)

	stored, err := mem.FindByID(created.ID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword("new-pass", stored.PasswordHash))
	assert.False(t, utils.CheckPassword("old-pass", stored.PasswordHash))
}

func TestUser_Update_MissIsNil(t *testing.T) {
	c := NewUser(&fakeUserStore{})

	name := "New"
	u, err := c.UpdateUser("missing", domain.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUser_ChangeStatus_InvalidStatus(t *testing.T) {
	store := &fakeUserStore{}
	c := NewUser(store)

	u, err := c.ChangeUserStatus("u1", "banned")
	require.Error(t, err)
	assert.Nil(t, u)
	assert.True(t, IsValidation(err))
	assert.Equal(t,
		"Failed to change user status: Invalid status. Must be active, inactive, or suspended",
		err.Error())
	assert.Nil(t, store.lastUpdate)
}

func TestUser_ChangeStatus_Delegates(t *testing.T) {
	store := &fakeUserStore{
		updateFn: func(id string, fields map[string]any) (*domain.User, error) {
			return &domain.User{ID: id, Status: fields["status"].(string),
				PasswordHash: "hash"}, nil
		},
	}
	c := NewUser(store)

	u, err := c.ChangeUserStatus("u1", domain.UserStatusSuspended)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, domain.UserStatusSuspended, u.Status)
	assert.Empty(t, u.PasswordHash)
	assert.Equal(t, map[string]any{"status": "suspended"}, store.lastUpdate)
}

func TestUser_GetUsersByRole(t *testing.T) {
	store := &fakeUserStore{
		allFn: func() ([]domain.User, error) {
			return []domain.User{
				{ID: "u1", Role: "member", PasswordHash: "h1"},
				{ID: "u2", Role: "admin", PasswordHash: "h2"},
				{ID: "u3", Role: "member", PasswordHash: "h3"},
			}, nil
		},
	}
	c := NewUser(store)

	members, err := c.GetUsersByRole("member")
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, u := range members {
		assert.Empty(t, u.PasswordHash)
	}

	none, err := c.GetUsersByRole("astronomer")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUser_AllReadsAreRedacted(t *testing.T) {
	withHash := domain.User{ID: "u1", Email: "ada@obs.io", Role: "member",
		Status: "active", PasswordHash: "bcrypt-hash"}
	store := &fakeUserStore{
		allFn:         func() ([]domain.User, error) { return []domain.User{withHash}, nil },
		findByIDFn:    func(string) (*domain.User, error) { u := withHash; return &u, nil },
		findByEmailFn: func(string) (*domain.User, error) { u := withHash; return &u, nil },
		deleteFn:      func(string) (*domain.User, error) { u := withHash; return &u, nil },
	}
	c := NewUser(store)

	all, err := c.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].PasswordHash)

	byID, err := c.GetUserByID("u1")
	require.NoError(t, err)
	assert.Empty(t, byID.PasswordHash)

	byEmail, err := c.GetUserByEmail("ada@obs.io")
	require.NoError(t, err)
	assert.Empty(t, byEmail.PasswordHash)

	deleted, err := c.DeleteUser("u1")
	require.NoError(t, err)
	assert.Empty(t, deleted.PasswordHash)
}

func TestUser_Reads_WrapErrors(t *testing.T) {
	boom := errors.New("boom")
	store := &fakeUserStore{
		allFn:         func() ([]domain.User, error) { return nil, boom },
		findByIDFn:    func(string) (*domain.User, error) { return nil, boom },
		findByEmailFn: func(string) (*domain.User, error) { return nil, boom },
		deleteFn:      func(string) (*domain.User, error) { return nil, boom },
	}
	c := NewUser(store)

	_, err := c.GetAllUsers()
	assert.EqualError(t, err, "Failed to get all users: boom")
	_, err = c.GetUserByID("u1")
	assert.EqualError(t, err, "Failed to get user: boom")
	_, err = c.GetUserByEmail("a@b.c")
	assert.EqualError(t, err, "Failed to get user by email: boom")
	_, err = c.DeleteUser("u1")
	assert.EqualError(t, err, "Failed to delete user: boom")
	_, err = c.GetUsersByRole("member")
	assert.EqualError(t, err, "Failed to get users by role: boom")
}
