// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and persists the new account. The hash is
// computed before any store interaction, so nothing is written on a hashing
// fault. The single INSERT is the only side effect; the store's unique
// constraint decides duplicate emails.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.log(ctx).Debug("Email already registered", slog.String("email", input.Email))

			return errors.Wrap(err, "registration rejected")
		}
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to create account during registration")
	}

	srv.log(ctx).Info("Account registered", slog.Any("accountID", account.ID))

	return nil
}

// Login looks up the account by email and verifies the password against the
// stored hash. Read-only; no state is touched on any path.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Debug("Login for unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "login failed")
		}
		srv.log(ctx).Error("Failed to load account for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account during login")
	}

	// bcrypt's comparison is constant-time and CPU-bound.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Info("Login successful", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Name: account.Name}, nil
}
