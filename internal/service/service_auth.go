// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/simonxoxoo/vinyl-app/internal/config"
	"github.com/simonxoxoo/vinyl-app/internal/crypto"
	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/store"
	"github.com/simonxoxoo/vinyl-app/internal/utils"
	"github.com/simonxoxoo/vinyl-app/internal/validators"
	"github.com/simonxoxoo/vinyl-app/models"
)

// authService is the concrete implementation of AuthService.
// It derives credentials through the keychain (argon2id, salted) and keeps
// all account state in the users mapping of the catalog store.
type authService struct {
	store     store.CatalogStore
	keychain  crypto.KeyChainService
	passwords validators.CredentialValidator

	// tokenSignKey is the HMAC secret used to sign and verify session
	// tokens. Must stay stable across restarts for remember-me to work.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session token.
	tokenIssuer string

	// tokenDuration controls how long a remembered session remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given catalog
// store and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(catalogStore store.CatalogStore, keychain crypto.KeyChainService, passwords validators.CredentialValidator, cfg config.ClientApp, logger *logger.Logger) AuthService {
	return &authService{
		store:         catalogStore,
		keychain:      keychain,
		passwords:     passwords,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new account.
//
// The password is checked against the strength policy and its confirmation,
// the security-question answers are normalized, and the credential is derived
// with a fresh random salt. Returns the persisted profile or:
//   - ErrInvalidDataProvided for an empty username or missing questions.
//   - A validators error for a weak or mismatched password.
//   - ErrUsernameTaken if the username already exists.
func (a *authService) Register(ctx context.Context, req RegisterRequest) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(req.Username)
	if username == "" {
		log.Error().Msg("empty username provided for registration")
		return models.UserProfile{}, ErrInvalidDataProvided
	}
	if req.SecurityQuestions.Question1 == "" || req.SecurityQuestions.Question2 == "" {
		log.Error().Str("username", username).Msg("security questions missing")
		return models.UserProfile{}, ErrInvalidDataProvided
	}

	if err := a.passwords.ValidateConfirmation(req.Password, req.ConfirmPassword); err != nil {
		return models.UserProfile{}, err
	}

	users := a.store.LoadUsers(ctx)
	if _, exists := users[username]; exists {
		log.Error().Str("username", username).Msg("username already taken")
		return models.UserProfile{}, ErrUsernameTaken
	}

	credentialHash, salt, err := a.deriveCredential(req.Password)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("credential derivation failed: %w", err)
	}

	theme := req.Theme
	if theme == "" {
		theme = models.ThemeAuto
	}
	if !theme.Valid() {
		return models.UserProfile{}, ErrInvalidDataProvided
	}
	if req.StreamingService != "" && !req.StreamingService.Valid() {
		return models.UserProfile{}, ErrInvalidDataProvided
	}

	profile := models.UserProfile{
		Username:         username,
		CredentialHash:   credentialHash,
		Salt:             salt,
		StreamingService: req.StreamingService,
		SecurityQuestions: models.SecurityQuestions{
			Question1: req.SecurityQuestions.Question1,
			Answer1:   models.NormalizeAnswer(req.SecurityQuestions.Answer1),
			Question2: req.SecurityQuestions.Question2,
			Answer2:   models.NormalizeAnswer(req.SecurityQuestions.Answer2),
		},
		Theme:     theme,
		CreatedAt: time.Now(),
	}

	users[username] = profile
	if err := a.store.SaveUsers(ctx, users); err != nil {
		log.Err(err).Str("username", username).Msg("failed to persist new user")
		return models.UserProfile{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return profile, nil
}

// Login authenticates an existing user and, when remember is set, persists a
// signed session entry for the next launch.
//
// Returns the authenticated profile or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrUserNotFound if the account does not exist.
//   - ErrWrongPassword if the credential does not verify.
func (a *authService) Login(ctx context.Context, username, password string, remember bool) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.UserProfile{}, ErrInvalidDataProvided
	}

	profile, err := a.verifyCredential(ctx, username, password)
	if err != nil {
		return models.UserProfile{}, err
	}

	session := models.Session{
		Username:   username,
		RememberMe: remember,
		At:         time.Now(),
	}
	if remember {
		token, err := utils.GenerateSessionToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
		if err != nil {
			log.Err(err).Str("username", username).Msg("session token generation failed")
			return models.UserProfile{}, fmt.Errorf("session token generation failed: %w", err)
		}
		session.Token = token.SignedString
	}

	if err := a.store.SaveSession(ctx, session); err != nil {
		log.Err(err).Str("username", username).Msg("failed to persist session")
		return models.UserProfile{}, fmt.Errorf("failed to persist session: %w", err)
	}

	return profile, nil
}

// RestoreSession restores a remembered session from the store.
//
// The session is restored only when all of the following hold: a session
// entry exists, its remember flag is set, its token verifies against the
// configured sign key and issuer, the token subject matches the stored
// username, and that username still exists in the users mapping.
func (a *authService) RestoreSession(ctx context.Context) (models.UserProfile, bool) {
	log := logger.FromContext(ctx)

	session, found := a.store.LoadSession(ctx)
	if !found || !session.RememberMe || session.Token == "" {
		return models.UserProfile{}, false
	}

	token, err := utils.ValidateAndParseSessionToken(session.Token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Warn().Err(err).Msg("stored session token rejected")
		return models.UserProfile{}, false
	}
	if token.Username != session.Username {
		log.Warn().Str("username", session.Username).Msg("session token subject mismatch")
		return models.UserProfile{}, false
	}

	profile, exists := a.store.LoadUsers(ctx)[session.Username]
	if !exists {
		log.Warn().Str("username", session.Username).Msg("remembered user no longer exists")
		return models.UserProfile{}, false
	}

	return profile, true
}

// Logout clears the persisted session entries.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.ClearSession(ctx)
}

// ChangePassword verifies the current password, then re-derives the
// credential with a fresh salt and persists the updated profile.
func (a *authService) ChangePassword(ctx context.Context, username, currentPassword, newPassword, confirmation string) error {
	log := logger.FromContext(ctx)

	if _, err := a.verifyCredential(ctx, username, currentPassword); err != nil {
		return err
	}

	if err := a.passwords.ValidateConfirmation(newPassword, confirmation); err != nil {
		return err
	}

	users := a.store.LoadUsers(ctx)
	profile := users[username]

	credentialHash, salt, err := a.deriveCredential(newPassword)
	if err != nil {
		return fmt.Errorf("credential derivation failed: %w", err)
	}
	profile.CredentialHash = credentialHash
	profile.Salt = salt

	users[username] = profile
	if err := a.store.SaveUsers(ctx, users); err != nil {
		log.Err(err).Str("username", username).Msg("failed to persist password change")
		return fmt.Errorf("failed to persist password change: %w", err)
	}

	return nil
}

// UpdateProfile applies the non-nil fields of update to the stored profile.
//
// Returns ErrUserNotFound when the account does not exist and
// ErrInvalidDataProvided for unsupported enum values.
func (a *authService) UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	users := a.store.LoadUsers(ctx)
	profile, exists := users[username]
	if !exists {
		return models.UserProfile{}, ErrUserNotFound
	}

	if update.StreamingService != nil {
		if !update.StreamingService.Valid() {
			return models.UserProfile{}, ErrInvalidDataProvided
		}
		profile.StreamingService = *update.StreamingService
	}
	if update.Theme != nil {
		if !update.Theme.Valid() {
			return models.UserProfile{}, ErrInvalidDataProvided
		}
		profile.Theme = *update.Theme
	}
	if update.ProfilePictureURL != nil {
		profile.ProfilePictureURL = *update.ProfilePictureURL
	}

	users[username] = profile
	if err := a.store.SaveUsers(ctx, users); err != nil {
		log.Err(err).Str("username", username).Msg("failed to persist profile update")
		return models.UserProfile{}, fmt.Errorf("failed to persist profile update: %w", err)
	}

	return profile, nil
}

// DeleteAccount verifies the password, removes the account from the users
// mapping, and cascades the deletion to the user's collection and to any
// persisted session referencing the account.
func (a *authService) DeleteAccount(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if _, err := a.verifyCredential(ctx, username, password); err != nil {
		return err
	}

	users := a.store.LoadUsers(ctx)
	delete(users, username)
	if err := a.store.SaveUsers(ctx, users); err != nil {
		log.Err(err).Str("username", username).Msg("failed to persist account deletion")
		return fmt.Errorf("failed to persist account deletion: %w", err)
	}

	collections := a.store.LoadCollections(ctx)
	if _, exists := collections[username]; exists {
		delete(collections, username)
		if err := a.store.SaveCollections(ctx, collections); err != nil {
			log.Err(err).Str("username", username).Msg("failed to cascade collection deletion")
			return fmt.Errorf("failed to cascade collection deletion: %w", err)
		}
	}

	if session, found := a.store.LoadSession(ctx); found && session.Username == username {
		if err := a.store.ClearSession(ctx); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
	}

	return nil
}

// verifyCredential looks the user up and checks the password against the
// stored salted credential.
func (a *authService) verifyCredential(ctx context.Context, username, password string) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	profile, exists := a.store.LoadUsers(ctx)[username]
	if !exists {
		log.Error().Str("username", username).Msg("user not found")
		return models.UserProfile{}, ErrUserNotFound
	}

	salt, err := base64.StdEncoding.DecodeString(profile.Salt)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("decode stored salt: %w", err)
	}
	credential, err := base64.StdEncoding.DecodeString(profile.CredentialHash)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("decode stored credential: %w", err)
	}

	if !a.keychain.VerifyCredential(password, salt, credential) {
		log.Error().Str("username", username).Msg("wrong password")
		return models.UserProfile{}, ErrWrongPassword
	}

	return profile, nil
}

// deriveCredential generates a fresh salt and derives the stored credential
// for password. Both values are base64-encoded for safe storage.
func (a *authService) deriveCredential(password string) (credentialHash, salt string, err error) {
	saltBytes, err := a.keychain.GenerateSalt()
	if err != nil {
		return "", "", fmt.Errorf("error generating salt: %w", err)
	}

	credential := a.keychain.DeriveCredential(password, saltBytes)

	return base64.StdEncoding.EncodeToString(credential), base64.StdEncoding.EncodeToString(saltBytes), nil
}
