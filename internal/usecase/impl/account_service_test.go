package impl

import (
	"context"
	"strings"
	"testing"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/service"
	"authcore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingHasher records how often Check runs.
type countingHasher struct {
	inner  service.PasswordHasher
	checks int
}

func (h *countingHasher) Hash(password string) (string, error) { return h.inner.Hash(password) }

func (h *countingHasher) Check(password, hash string) bool {
	h.checks++

	return h.inner.Check(password, hash)
}

func createAlice(t *testing.T, srv *accountService) *entity.User {
	t.Helper()

	user, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		Login:    "alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	return user
}

func TestAccountService_CreateUserHashesPassword(t *testing.T) {
	store := newTestStore(t)
	srv := store.accountService()

	user := createAlice(t, srv)

	assert.NotZero(t, user.ID)
	assert.Equal(t, entity.ActiveYes, user.Active)
	assert.NotEqual(t, "secret123", user.PasswordHash())
	assert.True(t, store.hasher.Check("secret123", user.PasswordHash()))

	stored, err := srv.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash(), stored.PasswordHash())
}

func TestAccountService_CreateUserRequiresPassword(t *testing.T) {
	store := newTestStore(t)
	srv := store.accountService()

	_, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{Login: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestAccountService_PasswordLengthLimit(t *testing.T) {
	store := newTestStore(t)
	srv := store.accountService()
	ctx := context.Background()

	longest := strings.Repeat("a", service.MaxPasswordBytes)
	user, err := srv.CreateUser(ctx, &usecase.CreateUserInput{Login: "max", Username: "max", Password: longest})
	require.NoError(t, err)
	ok, err := srv.CheckPassword(ctx, &usecase.CheckPasswordInput{ID: &user.ID, Password: longest})
	require.NoError(t, err)
	assert.True(t, ok)

	tooLong := longest + "a"
	_, err = srv.CreateUser(ctx, &usecase.CreateUserInput{Login: "over", Username: "over", Password: tooLong})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	assert.False(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))

	absent, err := srv.GetByLogin(ctx, "over")
	require.NoError(t, err)
	assert.Nil(t, absent)

	err = srv.SetPassword(ctx, user.ID, tooLong)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))

	ok, err = srv.CheckPassword(ctx, &usecase.CheckPasswordInput{ID: &user.ID, Password: longest})
	require.NoError(t, err)
	assert.True(t, ok, "rejected update must keep the old hash")
}

func TestAccountService_Lookups(t *testing.T) {
	store := newTestStore(t)
	srv := store.accountService()
	ctx := context.Background()
	alice := createAlice(t, srv)

	user, err := srv.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	user, err = srv.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	user, err = srv.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	user, err = srv.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
}

func TestAccountService_LookupsAbsentAreNotErrors(t *testing.T) {
	store := newTestStore(t)
	srv := store.accountService()
	ctx := context.Background()

	user, err := srv.GetByID(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = srv.GetByLogin(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = srv.GetByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = srv.GetByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestAccountService_CheckPassword(t *testing.T) {
	store := newTestStore(t)
	srv := store.accountService()
	ctx := context.Background()
	alice := createAlice(t, srv)

	tests := []struct {
		name  string
		input *usecase.CheckPasswordInput
		want  bool
	}{
		{name: "username match", input: &usecase.CheckPasswordInput{Username: "alice", Password: "secret123"}, want: true},
		{name: "username wrong password", input: &usecase.CheckPasswordInput{Username: "alice", Password: "wrong"}, want: false},
		{name: "unknown username", input: &usecase.CheckPasswordInput{Username: "nouser", Password: "x"}, want: false},
		{name: "id match", input: &usecase.CheckPasswordInput{ID: &alice.ID, Password: "secret123"}, want: true},
		{name: "id takes priority over username", input: &usecase.CheckPasswordInput{ID: &alice.ID, Username: "nouser", Password: "secret123"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := srv.CheckPassword(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountService_CheckPasswordUnknownUserSkipsHashing(t *testing.T) {
	store := newTestStore(t)
	hasher := &countingHasher{inner: store.hasher}
	srv := NewAccountService(AccountServiceParams{
		UserRepo:  store.userRepo,
		TxManager: store.txManager,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	ok, err := srv.CheckPassword(context.Background(), &usecase.CheckPasswordInput{Username: "ghost", Password: "x"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, hasher.checks)

	missingID := uint64(99)
	ok, err = srv.CheckPassword(context.Background(), &usecase.CheckPasswordInput{ID: &missingID, Password: "x"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, hasher.checks)
}

func TestAccountService_CheckPasswordRequiresIDOrUsername(t *testing.T) {
	store := newTestStore(t)
	srv := store.accountService()

	_, err := srv.CheckPassword(context.Background(), &usecase.CheckPasswordInput{Password: "secret123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))

	_, err = srv.CheckPassword(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestAccountService_SetPassword(t *testing.T) {
	store := newTestStore(t)
	srv := store.accountService()
	ctx := context.Background()
	alice := createAlice(t, srv)

	require.NoError(t, srv.SetPassword(ctx, alice.ID, "n3w-pass"))

	ok, err := srv.CheckPassword(ctx, &usecase.CheckPasswordInput{Username: "alice", Password: "n3w-pass"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = srv.CheckPassword(ctx, &usecase.CheckPasswordInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.False(t, ok)

	err = srv.SetPassword(ctx, 404, "x")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_Membership(t *testing.T) {
	store := newTestStore(t)
	srv := store.accountService()
	ctx := context.Background()
	require.NoError(t, store.bootstrapService(newTestConfig("", ""), newDiscardLogger()).Seed(ctx))
	alice := createAlice(t, srv)

	in, err := srv.InGroup(ctx, alice.ID, "admin")
	require.NoError(t, err)
	assert.False(t, in, "user with zero groups")

	require.NoError(t, srv.AddToGroup(ctx, alice.ID, "users"))

	in, err = srv.InGroup(ctx, alice.ID, "admin")
	require.NoError(t, err)
	assert.False(t, in, "groups exclude the queried name")

	in, err = srv.InGroup(ctx, alice.ID, "users")
	require.NoError(t, err)
	assert.True(t, in)

	require.NoError(t, srv.RemoveFromGroup(ctx, alice.ID, "users"))
	in, err = srv.InGroup(ctx, alice.ID, "users")
	require.NoError(t, err)
	assert.False(t, in)

	in, err = srv.InGroup(ctx, 404, "users")
	require.NoError(t, err)
	assert.False(t, in)

	err = srv.AddToGroup(ctx, alice.ID, "nope")
	assert.True(t, errors.Is(err, domainerrors.ErrGroupNotFound))

	err = srv.AddToGroup(ctx, 404, "users")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
