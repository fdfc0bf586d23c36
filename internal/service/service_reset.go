// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/simonxoxoo/vinyl-app/internal/crypto"
	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/store"
	"github.com/simonxoxoo/vinyl-app/internal/validators"
	"github.com/simonxoxoo/vinyl-app/models"
)

// ResetState identifies the current step of a password-reset flow.
type ResetState int

const (
	// ResetAwaitingUsername expects SubmitUsername next.
	ResetAwaitingUsername ResetState = iota
	// ResetAwaitingAnswers expects SubmitAnswers next.
	ResetAwaitingAnswers
	// ResetAwaitingNewPassword expects SubmitNewPassword next.
	ResetAwaitingNewPassword
	// ResetDone means the password has been replaced; the flow is finished.
	ResetDone
)

// PasswordResetFlow drives a security-question based password reset as a
// strict three-step state machine: username, then answers, then the new
// password. Calling a step out of order returns ErrInvalidResetState.
//
// A flow instance is single-use and not safe for concurrent use.
type PasswordResetFlow struct {
	store     store.CatalogStore
	keychain  crypto.KeyChainService
	passwords validators.CredentialValidator
	logger    *logger.Logger

	state    ResetState
	username string
}

// NewPasswordResetFlow starts a fresh reset flow in the
// ResetAwaitingUsername state.
func NewPasswordResetFlow(catalogStore store.CatalogStore, keychain crypto.KeyChainService, passwords validators.CredentialValidator, logger *logger.Logger) *PasswordResetFlow {
	return &PasswordResetFlow{
		store:     catalogStore,
		keychain:  keychain,
		passwords: passwords,
		logger:    logger,
		state:     ResetAwaitingUsername,
	}
}

// State reports the current step of the flow.
func (f *PasswordResetFlow) State() ResetState {
	return f.state
}

// SubmitUsername looks up the account and returns its two security
// questions. On success the flow advances to ResetAwaitingAnswers.
func (f *PasswordResetFlow) SubmitUsername(ctx context.Context, username string) (question1, question2 string, err error) {
	if f.state != ResetAwaitingUsername {
		return "", "", ErrInvalidResetState
	}
	if username == "" {
		return "", "", ErrInvalidDataProvided
	}

	profile, exists := f.store.LoadUsers(ctx)[username]
	if !exists {
		logger.FromContext(ctx).Error().Str("username", username).Msg("password reset for unknown user")
		return "", "", ErrUserNotFound
	}

	f.username = username
	f.state = ResetAwaitingAnswers

	return profile.SecurityQuestions.Question1, profile.SecurityQuestions.Question2, nil
}

// SubmitAnswers checks both security answers. Answers are compared after
// normalization, so case and surrounding whitespace do not matter. Both must
// match or the call fails with ErrSecurityAnswerMismatch and the flow stays
// in ResetAwaitingAnswers.
func (f *PasswordResetFlow) SubmitAnswers(ctx context.Context, answer1, answer2 string) error {
	if f.state != ResetAwaitingAnswers {
		return ErrInvalidResetState
	}

	profile, exists := f.store.LoadUsers(ctx)[f.username]
	if !exists {
		return ErrUserNotFound
	}

	if models.NormalizeAnswer(answer1) != profile.SecurityQuestions.Answer1 ||
		models.NormalizeAnswer(answer2) != profile.SecurityQuestions.Answer2 {
		logger.FromContext(ctx).Error().Str("username", f.username).Msg("security answers rejected")
		return ErrSecurityAnswerMismatch
	}

	f.state = ResetAwaitingNewPassword

	return nil
}

// SubmitNewPassword validates the replacement password, derives a new salted
// credential, and persists it. On success the flow moves to ResetDone.
func (f *PasswordResetFlow) SubmitNewPassword(ctx context.Context, newPassword, confirmation string) error {
	if f.state != ResetAwaitingNewPassword {
		return ErrInvalidResetState
	}

	if err := f.passwords.ValidateConfirmation(newPassword, confirmation); err != nil {
		return err
	}

	users := f.store.LoadUsers(ctx)
	profile, exists := users[f.username]
	if !exists {
		return ErrUserNotFound
	}

	salt, err := f.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("error generating salt: %w", err)
	}
	credential := f.keychain.DeriveCredential(newPassword, salt)

	profile.Salt = base64.StdEncoding.EncodeToString(salt)
	profile.CredentialHash = base64.StdEncoding.EncodeToString(credential)

	users[f.username] = profile
	if err := f.store.SaveUsers(ctx, users); err != nil {
		logger.FromContext(ctx).Err(err).Str("username", f.username).Msg("failed to persist reset password")
		return fmt.Errorf("failed to persist reset password: %w", err)
	}

	f.state = ResetDone

	return nil
}
