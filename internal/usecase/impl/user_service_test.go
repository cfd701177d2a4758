package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	mockRepo "shop/internal/mocks/repository"
	mockSvc "shop/internal/mocks/service"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	notifier     *mockSvc.MockNotifier
	hook         *mockUsecase.MockUserCreatedHook
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	notifier := mockSvc.NewMockNotifier(t)
	hook := mockUsecase.NewMockUserCreatedHook(t)

	srv := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Notifier:     notifier,
		Hooks:        []usecase.UserCreatedHook{hook},
		Config:       newTestConfig(""),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		notifier:     notifier,
		hook:         hook,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    " Test@Example.com ",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "test@example.com" && u.PasswordHash == "hashed_password" && u.Role == entity.RoleCustomer
		})).
		Return(nil)
	fx.hook.EXPECT().OnUserCreated(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	fx.notifier.EXPECT().
		Notify(ctx, service.EventUserCreated, mock.AnythingOfType("service.UserCreatedPayload")).
		Return().
		Once()

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_RegisterUser_HookFailureKeepsUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.co").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Password123!").Return("hash", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.hook.EXPECT().OnUserCreated(ctx, mock.Anything).Return(errors.New("wallet store down"))
	fx.notifier.EXPECT().Notify(ctx, service.EventUserCreated, mock.Anything).Return()

	output, err := fx.service.RegisterUser(ctx, usecase.RegisterUserInput{Name: "A", Email: "a@b.co", Password: "Password123!"})

	require.NoError(t, err)
	assert.NotNil(t, output.User)
}

func TestUserService_RegisterUser_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   usecase.RegisterUserInput
		setup   func(fx userServiceFixtures)
		wantErr error
	}{
		{
			name:    "blank name",
			input:   usecase.RegisterUserInput{Name: " ", Email: "a@b.co", Password: "Password123!"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "malformed email",
			input:   usecase.RegisterUserInput{Name: "A", Email: "not-an-email", Password: "Password123!"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "short password",
			input:   usecase.RegisterUserInput{Name: "A", Email: "a@b.co", Password: "short"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "email taken",
			input: usecase.RegisterUserInput{Name: "A", Email: "a@b.co", Password: "Password123!"},
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.co").Return(&entity.User{}, nil)
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name:  "lost insert race",
			input: usecase.RegisterUserInput{Name: "A", Email: "a@b.co", Password: "Password123!"},
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.co").Return(nil, repository.ErrUserNotFound)
				fx.hasher.EXPECT().Hash("Password123!").Return("hash", nil)
				fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserAlreadyExists)
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			output, err := fx.service.RegisterUser(ctx, tt.input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed", Role: entity.RoleCustomer}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"customer"}).Return("access", "refresh", nil)

		output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "TEST@example.com", Password: "Password123!"})

		require.NoError(t, err)
		assert.Equal(t, "access", output.AccessToken)
		assert.Equal(t, "refresh", output.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	t.Run("issues a new pair", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"customer"}).Return("access2", "refresh2", nil)

		output, err := fx.service.RefreshToken(ctx, "refresh")

		require.NoError(t, err)
		assert.Equal(t, "access2", output.AccessToken)
	})

	t.Run("access token refused", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("access").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeAccess}, nil)

		_, err := fx.service.RefreshToken(ctx, "access")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("garbage").Return(nil, errors.New("malformed"))

		_, err := fx.service.RefreshToken(ctx, "garbage")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RefreshToken(ctx, "refresh")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestUserService_EmailOf(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	known, unknown := uuid.New(), uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, known).Return(&entity.User{ID: known, Email: "k@example.com"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, unknown).Return(nil, repository.ErrUserNotFound)

	email, err := fx.service.EmailOf(ctx, known)
	require.NoError(t, err)
	assert.Equal(t, "k@example.com", email)

	_, err = fx.service.EmailOf(ctx, unknown)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed"}

	t.Run("known email emits the reset event", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Fingerprint("hashed").Return("fp-1")
		fx.tokenService.EXPECT().GeneratePasswordResetToken(user.ID, "fp-1").Return("reset-token", nil)
		fx.notifier.EXPECT().
			Notify(ctx, service.EventPasswordResetRequested, service.PasswordResetRequestedPayload{
				UserID: user.ID.String(),
				Email:  user.Email,
				Token:  "reset-token",
			}).
			Return().
			Once()

		require.NoError(t, fx.service.RequestPasswordReset(ctx, " Test@Example.com"))
	})

	t.Run("unknown email is silent", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		require.NoError(t, fx.service.RequestPasswordReset(ctx, "ghost@example.com"))
	})

	t.Run("malformed email", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.RequestPasswordReset(ctx, "not-an-email")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed"}
	resetClaims := &service.Claims{UserID: user.ID, Type: service.TokenTypePasswordReset, Fingerprint: "fp-1"}

	t.Run("stores the new hash", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("reset-token").Return(resetClaims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Fingerprint("hashed").Return("fp-1")
		fx.hasher.EXPECT().Hash("NewPassword1!").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-hash").Return(nil).Once()

		err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "NewPassword1!"})

		require.NoError(t, err)
	})

	t.Run("token already used", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("reset-token").Return(resetClaims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Fingerprint("hashed").Return("fp-2")

		err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "NewPassword1!"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	})

	t.Run("refresh token refused", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().
			ValidateToken("refresh").
			Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)

		err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "refresh", NewPassword: "NewPassword1!"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))

		err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "stale", NewPassword: "NewPassword1!"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	})

	t.Run("short password", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "short"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
