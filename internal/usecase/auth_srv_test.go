package usecase

import (
	"context"
	"testing"
	"time"

	"restaurant-orders/internal/data/entity"
	"restaurant-orders/internal/dto/request"
	"restaurant-orders/pkg/token"
	"restaurant-orders/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (*fakeUserRepo, AuthService, *token.Codec) {
	t.Helper()
	users := newFakeUserRepo()
	codec := token.NewCodec("test-secret")
	service := NewAuthService(users, codec, zap.NewNop())
	return users, service, codec
}

func seedUser(t *testing.T, users *fakeUserRepo, username, password string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	users, service, codec := newAuthFixture(t)
	alice := seedUser(t, users, "alice", "correct-horse", entity.RoleChef)

	value, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	claims, err := codec.Verify(value)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, alice.ID.String(), claims.ID)
}

func TestLoginDoesNotLeakUserExistence(t *testing.T) {
	users, service, _ := newAuthFixture(t)
	seedUser(t, users, "alice", "correct-horse", entity.RoleChef)

	_, wrongPassword := service.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	_, noSuchUser := service.Login(context.Background(), &request.LoginRequest{
		Username: "nonexistent",
		Password: "x",
	})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, noSuchUser, ErrInvalidCredentials)
	// Identical failures: a caller cannot probe which usernames exist.
	assert.Equal(t, wrongPassword.Error(), noSuchUser.Error())
}

func TestCreateUserRequiresExactlyOwner(t *testing.T) {
	tests := []struct {
		name    string
		caller  *entity.User
		wantErr error
	}{
		{name: "anonymous", caller: nil, wantErr: ErrUnauthorized},
		{name: "waiter", caller: userWithRole(entity.RoleWaiter), wantErr: ErrUnauthorized},
		{name: "chef", caller: userWithRole(entity.RoleChef), wantErr: ErrUnauthorized},
		{name: "coOwner", caller: userWithRole(entity.RoleCoOwner), wantErr: ErrUnauthorized},
		{name: "owner", caller: userWithRole(entity.RoleOwner)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, service, _ := newAuthFixture(t)

			user, err := service.CreateUser(context.Background(), testCase.caller, &request.CreateUserRequest{
				Username: "newbie",
				Password: "password",
				Role:     int32(entity.RoleWaiter),
			})

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "newbie", user.Username)
				assert.Equal(t, entity.RoleWaiter, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "password", user.PasswordHash)
			}
		})
	}
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	users, service, _ := newAuthFixture(t)
	seedUser(t, users, "alice", "pw-alice", entity.RoleWaiter)

	_, err := service.CreateUser(context.Background(), userWithRole(entity.RoleOwner), &request.CreateUserRequest{
		Username: "alice",
		Password: "password",
		Role:     int32(entity.RoleChef),
	})

	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestCreateUserRejectsInvalidInput(t *testing.T) {
	_, service, _ := newAuthFixture(t)
	owner := userWithRole(entity.RoleOwner)

	tests := []struct {
		name string
		req  *request.CreateUserRequest
	}{
		{name: "username too short", req: &request.CreateUserRequest{Username: "ab", Password: "password", Role: 2}},
		{name: "role above owner", req: &request.CreateUserRequest{Username: "valid", Password: "password", Role: 6}},
		{name: "role below customer", req: &request.CreateUserRequest{Username: "valid", Password: "password", Role: -1}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.CreateUser(context.Background(), owner, testCase.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestEnsureOwner(t *testing.T) {
	t.Run("seeds owner on empty store", func(t *testing.T) {
		users, service, _ := newAuthFixture(t)

		require.NoError(t, service.EnsureOwner(context.Background(), "boss", "boss-password"))

		owner, err := users.FindByUsername(context.Background(), "boss")
		require.NoError(t, err)
		require.NotNil(t, owner)
		assert.Equal(t, entity.RoleOwner, owner.Role)
		assert.True(t, utils.CheckPasswordHash("boss-password", owner.PasswordHash))
	})

	t.Run("no-op when users exist", func(t *testing.T) {
		users, service, _ := newAuthFixture(t)
		seedUser(t, users, "alice", "pw", entity.RoleWaiter)

		require.NoError(t, service.EnsureOwner(context.Background(), "boss", "boss-password"))

		owner, err := users.FindByUsername(context.Background(), "boss")
		require.NoError(t, err)
		assert.Nil(t, owner)
	})

	t.Run("no-op without credentials", func(t *testing.T) {
		users, service, _ := newAuthFixture(t)

		require.NoError(t, service.EnsureOwner(context.Background(), "", ""))

		count, err := users.CountAll(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
