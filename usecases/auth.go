package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"health-server/entities"
	"health-server/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const patientIDAttempts = 3

type AuthUseCase struct {
	Users    repositories.UserRepository
	Log      *zap.Logger
	HashCost int
}

func NewAuthUseCase(users repositories.UserRepository, log *zap.Logger) *AuthUseCase {
	return &AuthUseCase{Users: users, Log: log.With(zap.String("component", "auth")), HashCost: bcrypt.DefaultCost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewPatientID returns "PID-" followed by 8 upper-case hex characters.
func NewPatientID() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate patient id: %w", err)
	}
	return "PID-" + strings.ToUpper(hex.EncodeToString(b)), nil
}

// Register creates the account and its empty profile in one transaction.
func (uc *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*entities.User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}

	exists, err := uc.Users.ExistsEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		uc.Log.Info("registration rejected: email taken", zap.String("email", in.Email))
		return nil, entities.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.HashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	for attempt := 1; ; attempt++ {
		patientID, err := NewPatientID()
		if err != nil {
			return nil, err
		}
		user := &entities.User{Email: in.Email, PasswordHash: string(hash)}
		err = uc.Users.CreateWithProfile(ctx, user, &entities.Profile{PatientID: patientID})
		if err == nil {
			uc.Log.Info("user registered", zap.String("user_id", user.ID))
			return user, nil
		}
		if errors.Is(err, repositories.ErrDuplicatePatientID) && attempt < patientIDAttempts {
			uc.Log.Warn("patient id collision, retrying", zap.Int("attempt", attempt))
			continue
		}
		if errors.Is(err, entities.ErrDuplicateEmail) {
			uc.Log.Info("registration rejected: email taken", zap.String("email", in.Email))
		}
		return nil, err
	}
}

// Authenticate never tells an unknown email apart from a wrong password.
func (uc *AuthUseCase) Authenticate(ctx context.Context, in LoginInput) (*entities.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, entities.ErrInvalidCredentials
	}
	user, err := uc.Users.GetByEmail(ctx, email)
	if errors.Is(err, entities.ErrNotFound) {
		uc.Log.Info("login failed", zap.String("email", email))
		return nil, entities.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.Log.Info("login failed", zap.String("email", email))
		return nil, entities.ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword checks the current password first, then that the new one is
// not blank, then that it matches its confirmation.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) error {
	user, err := uc.Users.GetByID(ctx, userID)
	if errors.Is(err, entities.ErrNotFound) {
		return entities.ErrUnauthenticated
	}
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return entities.ErrInvalidCredentials
	}
	if strings.TrimSpace(in.NewPassword) == "" {
		return entities.ErrEmptyPassword
	}
	if in.NewPassword != in.ConfirmPassword {
		return entities.ErrPasswordMismatch
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), uc.HashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := uc.Users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}
	uc.Log.Info("password changed", zap.String("user_id", userID))
	return nil
}

func (uc *AuthUseCase) User(ctx context.Context, userID string) (*entities.User, error) {
	return uc.Users.GetByID(ctx, userID)
}
