package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/safepass/safepass/internal/config"
	"github.com/safepass/safepass/internal/logger"
	"github.com/safepass/safepass/internal/store"
	"github.com/safepass/safepass/internal/utils"
	"github.com/safepass/safepass/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, account recovery and
// JWT token lifecycle, using a UserRepository for persistence and bcrypt
// for password and recovery key hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is hashed with bcrypt before storage, and a one-time recovery
// key is generated and returned in plaintext exactly once; only its bcrypt
// hash is persisted.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login already
//     taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, login, password string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid registration data provided")
		return models.User{}, "", ErrInvalidDataProvided
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.User{}, "", fmt.Errorf("error hashing password: %w", err)
	}

	recoveryKey, err := utils.GenerateRecoveryKey()
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error generating recovery key")
		return models.User{}, "", err
	}

	recoveryKeyHash, err := bcrypt.GenerateFromPassword([]byte(recoveryKey), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing recovery key")
		return models.User{}, "", fmt.Errorf("error hashing recovery key: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:           login,
		PasswordHash:    string(passwordHash),
		RecoveryKeyHash: string(recoveryKeyHash),
	})
	if err != nil {
		log.Err(err).Str("login", login).Msg("user creation ended with error")
		return models.User{}, "", fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, recoveryKey, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("login", foundUser.Login).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// RecoverAccount resets the password of an account whose recovery key the
// caller can present. On success the old recovery key is invalidated, the
// new password hash is stored and a freshly generated recovery key is
// returned in plaintext exactly once.
//
// Returns:
//   - ErrInvalidDataProvided if any argument is empty.
//   - A wrapped storage error if the lookup fails.
//   - ErrWrongRecoveryKey if the presented key does not match the stored hash.
func (a *authService) RecoverAccount(ctx context.Context, login, recoveryKey, newPassword string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	if login == "" || recoveryKey == "" || newPassword == "" {
		log.Error().Str("login", login).Msg("invalid recovery data provided")
		return models.User{}, "", ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, "", fmt.Errorf("user search by login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.RecoveryKeyHash), []byte(recoveryKey)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("login", foundUser.Login).
			Msg("wrong recovery key")
		return models.User{}, "", ErrWrongRecoveryKey
	}

	newPasswordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RecoverAccount").Msg("error hashing new password")
		return models.User{}, "", fmt.Errorf("error hashing new password: %w", err)
	}

	newRecoveryKey, err := utils.GenerateRecoveryKey()
	if err != nil {
		log.Err(err).Str("func", "*authService.RecoverAccount").Msg("error generating recovery key")
		return models.User{}, "", err
	}

	newRecoveryKeyHash, err := bcrypt.GenerateFromPassword([]byte(newRecoveryKey), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RecoverAccount").Msg("error hashing recovery key")
		return models.User{}, "", fmt.Errorf("error hashing recovery key: %w", err)
	}

	if err := a.userRepository.UpdateUserSecrets(ctx, foundUser.UserID, string(newPasswordHash), string(newRecoveryKeyHash)); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("updating user secrets failed")
		return models.User{}, "", fmt.Errorf("updating user secrets failed: %w", err)
	}

	foundUser.PasswordHash = string(newPasswordHash)
	foundUser.RecoveryKeyHash = string(newRecoveryKeyHash)

	return foundUser, newRecoveryKey, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
