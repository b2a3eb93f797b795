package usecases

import (
	"context"
	"regexp"
	"testing"

	"health-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterCreatesProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.auth.Register(ctx, RegisterInput{Email: "  A@X.com ", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "pw1", user.PasswordHash)

	profile, err := f.repos.Profiles.GetByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PID-[0-9A-F]{8}$`), profile.PatientID)
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "a@x.com")

	_, err := f.auth.Register(ctx, RegisterInput{Email: "A@x.com", Password: "other"})
	assert.ErrorIs(t, err, entities.ErrDuplicateEmail)

	exists, err := f.repos.Users.ExistsEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAuth_RegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, RegisterInput{Email: "not-an-email", Password: "pw"})
	assert.ErrorIs(t, err, entities.ErrValidation)

	_, err = f.auth.Register(ctx, RegisterInput{Email: "a@x.com", Password: "   "})
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestAuth_Authenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	registered := f.register(t, "a@x.com")

	user, err := f.auth.Authenticate(ctx, LoginInput{Email: "A@X.COM", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = f.auth.Authenticate(ctx, LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)

	_, err = f.auth.Authenticate(ctx, LoginInput{Email: "nobody@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestAuth_ChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "a@x.com")

	cases := []struct {
		name string
		in   ChangePasswordInput
		want error
	}{
		{"wrong current wins over everything", ChangePasswordInput{CurrentPassword: "bad", NewPassword: "", ConfirmPassword: "x"}, entities.ErrInvalidCredentials},
		{"empty new password", ChangePasswordInput{CurrentPassword: "pw1", NewPassword: " ", ConfirmPassword: " "}, entities.ErrEmptyPassword},
		{"mismatch", ChangePasswordInput{CurrentPassword: "pw1", NewPassword: "a", ConfirmPassword: "b"}, entities.ErrPasswordMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, f.auth.ChangePassword(ctx, user.ID, tc.in), tc.want)
		})
	}

	require.NoError(t, f.auth.ChangePassword(ctx, user.ID, ChangePasswordInput{CurrentPassword: "pw1", NewPassword: "pw2", ConfirmPassword: "pw2"}))
	_, err := f.auth.Authenticate(ctx, LoginInput{Email: "a@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	_, err = f.auth.Authenticate(ctx, LoginInput{Email: "a@x.com", Password: "pw2"})
	assert.NoError(t, err)
}

func TestNewPatientID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := NewPatientID()
		require.NoError(t, err)
		assert.Len(t, id, 12)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 45)
}
