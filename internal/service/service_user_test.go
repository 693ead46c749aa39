package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/mock"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

func strPtr(s string) *string { return &s }

func newUserService(t *testing.T, repo store.UserRepository) UserService {
	t.Helper()
	return NewUserService(repo, testAppConfig(), logger.Nop())
}

// ─────────────────────────────────────────────
// UpdateUser
// ─────────────────────────────────────────────

func TestUpdateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := newUserService(t, repo)
	id := uuid.New()

	repo.EXPECT().
		UpdateUser(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update models.UserUpdate) (models.User, error) {
			require.NotNil(t, update.Username)
			assert.Equal(t, "bob", *update.Username)
			require.NotNil(t, update.Email)
			assert.Equal(t, "bob@example.com", *update.Email, "email must be lowercased")
			assert.Nil(t, update.PasswordHash)
			return models.User{ID: id, Username: "bob", Email: "bob@example.com"}, nil
		})

	updated, err := svc.UpdateUser(context.Background(), id, models.UpdateUserRequest{
		Username: strPtr("bob"),
		Email:    strPtr("Bob@Example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Username)
}

func TestUpdateUser_PasswordIsHashed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := newUserService(t, repo)
	id := uuid.New()

	repo.EXPECT().
		UpdateUser(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update models.UserUpdate) (models.User, error) {
			require.NotNil(t, update.PasswordHash)
			assert.NotEqual(t, "n3w-pass", *update.PasswordHash)
			assert.True(t, utils.CheckPassword("n3w-pass", *update.PasswordHash))
			return models.User{ID: id}, nil
		})

	_, err := svc.UpdateUser(context.Background(), id, models.UpdateUserRequest{
		Password: strPtr("n3w-pass"),
	})

	require.NoError(t, err)
}

// TestUpdateUser_EmptyPasswordIgnored covers clients that always submit the
// whole profile form: an empty password field must not clear credentials.
func TestUpdateUser_EmptyPasswordIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := newUserService(t, repo)
	id := uuid.New()

	repo.EXPECT().
		UpdateUser(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update models.UserUpdate) (models.User, error) {
			assert.Nil(t, update.PasswordHash)
			require.NotNil(t, update.Username)
			return models.User{ID: id}, nil
		})

	_, err := svc.UpdateUser(context.Background(), id, models.UpdateUserRequest{
		Username: strPtr("bob"),
		Password: strPtr(""),
	})

	require.NoError(t, err)
}

func TestUpdateUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := newUserService(t, repo)
	id := uuid.New()

	tests := []struct {
		name string
		req  models.UpdateUserRequest
	}{
		{name: "empty patch", req: models.UpdateUserRequest{}},
		{name: "explicit empty username", req: models.UpdateUserRequest{Username: strPtr("")}},
		{name: "explicit empty email", req: models.UpdateUserRequest{Email: strPtr("")}},
		{name: "only empty password", req: models.UpdateUserRequest{Password: strPtr("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateUser(context.Background(), id, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUpdateUser_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := newUserService(t, repo)
	id := uuid.New()

	repo.EXPECT().
		UpdateUser(gomock.Any(), id, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.UpdateUser(context.Background(), id, models.UpdateUserRequest{
		Email: strPtr("taken@example.com"),
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// DeleteUser
// ─────────────────────────────────────────────

func TestDeleteUser_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := newUserService(t, repo)
	id := uuid.New()

	repo.EXPECT().DeleteUser(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.DeleteUser(context.Background(), id))
}

func TestDeleteUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := newUserService(t, repo)
	id := uuid.New()

	repo.EXPECT().DeleteUser(gomock.Any(), id).Return(store.ErrNoUserWasFound)

	err := svc.DeleteUser(context.Background(), id)

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
