package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	notifier          service.Notifier
	hooks             []usecase.UserCreatedHook
	minPasswordLength int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.Notifier
	Hooks        []usecase.UserCreatedHook `group:"user_created_hooks"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	minPasswordLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &userService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		notifier:          params.Notifier,
		hooks:             params.Hooks,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

// RegisterUser creates the account, runs the user-created hooks and emits user.created.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is invalid")
	}
	if len(input.Password) < srv.minPasswordLength {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// Hook failures do not undo the registration; the user.created consumer repairs them.
	for _, hook := range srv.hooks {
		if err := hook.OnUserCreated(ctx, user); err != nil {
			srv.log(ctx).Error("User created hook failed", slog.Any("userID", user.ID), slog.Any("error", err))
		}
	}

	srv.notifier.Notify(ctx, service.EventUserCreated, service.UserCreatedPayload{
		UserID: user.ID.String(),
		Email:  user.Email,
	})

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return srv.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "invalid refresh token")
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "not a refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueTokens(user)
}

// RequestPasswordReset emits password.reset_requested for a known email.
func (srv *userService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("email is invalid")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password reset requested for unknown email")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	token, err := srv.tokenService.GeneratePasswordResetToken(user.ID, srv.hasher.Fingerprint(user.PasswordHash))
	if err != nil {
		return errors.Wrap(err, "failed to generate password reset token")
	}

	srv.notifier.Notify(ctx, service.EventPasswordResetRequested, service.PasswordResetRequestedPayload{
		UserID: user.ID.String(),
		Email:  user.Email,
		Token:  token,
	})

	srv.log(ctx).Info("Password reset requested", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword checks the token against the current password hash, so a
// token stops working as soon as the password changes.
func (srv *userService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if len(input.NewPassword) < srv.minPasswordLength {
		return errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	claims, err := srv.tokenService.ValidateToken(input.Token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidResetToken, "token rejected")
	}
	if claims.Type != service.TokenTypePasswordReset {
		return errors.Wrap(domainerrors.ErrInvalidResetToken, "not a password reset token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrInvalidResetToken, "user no longer exists")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if claims.Fingerprint != srv.hasher.Fingerprint(user.PasswordHash) {
		return errors.Wrap(domainerrors.ErrInvalidResetToken, "password changed since the token was issued")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	if err := srv.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

// EmailOf resolves the contact email of a user.
func (srv *userService) EmailOf(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", errors.Wrap(domainerrors.ErrUserNotFound, userID.String())
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find user")
	}

	return user.Email, nil
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
