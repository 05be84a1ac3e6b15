// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wilberforce44
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/Wilberforce44/notes-api/internal/config"
	"github.com/Wilberforce44/notes-api/internal/logger"
	"github.com/Wilberforce44/notes-api/internal/store"
	"github.com/Wilberforce44/notes-api/internal/utils"
	"github.com/Wilberforce44/notes-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenTTL controls how long a newly issued access token remains valid.
	accessTokenTTL time.Duration

	// refreshTokenTTL controls how long a newly issued refresh token remains valid.
	refreshTokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessTokenTTL:  cfg.AccessTokenTTL(),
		refreshTokenTTL: cfg.RefreshTokenTTL(),
		logger:          logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that email is a parseable address and that password is
// non-empty, hashes the password with bcrypt, and delegates persistence to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email is malformed or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, email string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := mail.ParseAddress(email); err != nil || password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Email: email, PasswordHash: passwordHash})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a fresh token pair.
//
// A missing account and a wrong password both collapse to
// ErrInvalidCredentials so the response does not reveal whether the email is
// registered.
//
// Returns the issued token pair or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the account does not exist or the password does
//     not match.
//   - A wrapped ErrTokenCreationFailed if JWT generation fails.
func (a *authService) Login(ctx context.Context, email string, password string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.TokenPair{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", email).Msg("login attempt for unknown email")
			return models.TokenPair{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, password) {
		log.Info().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	return a.issueTokenPair(foundUser)
}

// RefreshTokenPair exchanges a valid refresh token for a brand-new pair.
//
// The token must be a refresh token (its "type" claim is checked), its owner
// must still exist, and its "ver" claim must match the account's current
// token_version. Any failure is normalised to ErrUnauthenticated so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) RefreshTokenPair(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Info().Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, ErrUnauthenticated
	}

	if token.Claims.TokenType != models.TokenTypeRefresh {
		log.Info().Int64("id", token.UserID).Str("type", string(token.Claims.TokenType)).Msg("refresh attempted with non-refresh token")
		return models.TokenPair{}, ErrUnauthenticated
	}

	foundUser, err := a.currentUserForToken(ctx, token)
	if err != nil {
		return models.TokenPair{}, err
	}

	return a.issueTokenPair(foundUser)
}

// Authenticate resolves a raw access token string to its owning user.
//
// The signature, issuer, and expiry are verified, the user is looked up by the
// "sub" claim, and the token's "ver" claim is compared against the account's
// current token_version. A bumped version invalidates every previously issued
// token at once.
//
// Returns the user record on success or ErrUnauthenticated on any failure.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Info().Err(err).Msg("access token rejected")
		return models.User{}, ErrUnauthenticated
	}

	return a.currentUserForToken(ctx, token)
}

// Logout revokes every outstanding token of the given user by bumping the
// account's token_version. Tokens issued before the bump carry a stale "ver"
// claim and fail all later Authenticate and RefreshTokenPair calls.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	newVersion, err := a.userRepository.BumpTokenVersion(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Int64("id", userID).Msg("logout for unknown user")
			return ErrUnauthenticated
		}
		log.Err(err).Int64("id", userID).Msg("token version bump failed")
		return fmt.Errorf("token version bump failed: %w", err)
	}

	log.Info().Int64("id", userID).Int("tokenVersion", newVersion).Msg("all tokens revoked")
	return nil
}

// currentUserForToken loads the user named in token's "sub" claim and checks
// that the token's "ver" claim matches the account's current token_version.
func (a *authService) currentUserForToken(ctx context.Context, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Info().Err(err).Int64("id", token.UserID).Msg("token owner lookup failed")
		return models.User{}, ErrUnauthenticated
	}

	if token.Version != foundUser.TokenVersion {
		log.Info().
			Int64("id", foundUser.UserID).
			Int("tokenVersion", token.Version).
			Int("currentVersion", foundUser.TokenVersion).
			Msg("token version is stale")
		return models.User{}, ErrUnauthenticated
	}

	return foundUser, nil
}

// issueTokenPair signs a fresh access/refresh pair carrying user's current
// token_version in the "ver" claim.
func (a *authService) issueTokenPair(user models.User) (models.TokenPair, error) {
	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.TokenVersion, models.TokenTypeAccess, a.accessTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.TokenVersion, models.TokenTypeRefresh, a.refreshTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:   accessToken.SignedString,
		RefreshToken:  refreshToken.SignedString,
		TokenTypeHint: "bearer",
		ExpiresIn:     int64(a.accessTokenTTL.Seconds()),
	}, nil
}
