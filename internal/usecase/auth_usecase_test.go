package usecase

import (
	"context"
	"testing"

	"chaseplus/internal/entity"
	"chaseplus/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashedAdmin(t *testing.T, password string, active bool) *entity.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Admin{ID: "admin-1", Email: "admin@example.com", Password: string(hash), IsActive: active}
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockAdminRepository)
	tokens := new(MockTokenIssuer)
	uc := NewAuthUseCase(repo, tokens, logger.NewNop())

	repo.On("GetByEmail", mock.Anything, "admin@example.com").Return(hashedAdmin(t, "password123", true), nil)
	tokens.On("GenerateToken", "admin-1", "admin@example.com").Return("signed-token", nil)

	admin, token, err := uc.Login(context.Background(), " Admin@Example.com ", "password123")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "admin-1", admin.ID)
	assert.Empty(t, admin.Password)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := new(MockAdminRepository)
	tokens := new(MockTokenIssuer)
	uc := NewAuthUseCase(repo, tokens, logger.NewNop())

	repo.On("GetByEmail", mock.Anything, "admin@example.com").Return(hashedAdmin(t, "password123", true), nil)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, entity.NotFound("admin", "nobody@example.com"))

	_, _, err := uc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	_, _, err = uc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestLogin_Deactivated(t *testing.T) {
	repo := new(MockAdminRepository)
	tokens := new(MockTokenIssuer)
	uc := NewAuthUseCase(repo, tokens, logger.NewNop())

	repo.On("GetByEmail", mock.Anything, "admin@example.com").Return(hashedAdmin(t, "password123", false), nil)

	_, _, err := uc.Login(context.Background(), "admin@example.com", "password123")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestGetAdmin(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := NewAuthUseCase(repo, new(MockTokenIssuer), logger.NewNop())

	repo.On("GetByID", mock.Anything, "admin-1").Return(hashedAdmin(t, "password123", true), nil)

	admin, err := uc.GetAdmin(adminContext())
	require.NoError(t, err)
	assert.Empty(t, admin.Password)

	_, err = uc.GetAdmin(context.Background())
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestGetAdmin_Deactivated(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := NewAuthUseCase(repo, new(MockTokenIssuer), logger.NewNop())

	repo.On("GetByID", mock.Anything, "admin-1").Return(hashedAdmin(t, "password123", false), nil)

	_, err := uc.GetAdmin(adminContext())
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := NewAuthUseCase(repo, new(MockTokenIssuer), logger.NewNop())

	repo.On("GetByID", mock.Anything, "admin-1").Return(hashedAdmin(t, "password123", true), nil)
	repo.On("UpdatePassword", mock.Anything, "admin-1", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password")) == nil
	})).Return(nil)

	require.NoError(t, uc.ChangePassword(adminContext(), "password123", "new-password"))
	assert.ErrorIs(t, uc.ChangePassword(adminContext(), "wrong", "new-password"), entity.ErrUnauthorized)
	assert.ErrorIs(t, uc.ChangePassword(adminContext(), "password123", "short"), entity.ErrValidation)

	repo.AssertNumberOfCalls(t, "UpdatePassword", 1)
}

func TestEnsureAdmin(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := NewAuthUseCase(repo, new(MockTokenIssuer), logger.NewNop())

	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, entity.NotFound("admin", "new@example.com"))
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Admin")).Return(nil)
	repo.On("GetByEmail", mock.Anything, "admin@example.com").Return(hashedAdmin(t, "password123", true), nil)

	admin, created, err := uc.EnsureAdmin(context.Background(), "New@Example.com", "password123", "New Admin")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new@example.com", admin.Email)
	assert.Empty(t, admin.Password)

	_, created, err = uc.EnsureAdmin(context.Background(), "admin@example.com", "", "")
	require.NoError(t, err)
	assert.False(t, created)

	_, _, err = uc.EnsureAdmin(context.Background(), "", "password123", "")
	assert.ErrorIs(t, err, entity.ErrValidation)
}
