package usecase

import (
	"context"
	"fmt"
	"strings"

	"notebin/errs"
	"notebin/model"
	"notebin/services"
	"notebin/utils"
)

type UserService struct {
	UsersRepo UsersRepository
	Clock     Clock
}

// Register creates a new account. Emails are unique; everything except the
// credential hash and two-factor state is immutable afterwards.
func (svc *UserService) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return nil, fmt.Errorf("%w: email, name and password are required", errs.ErrValidation)
	}
	if !utils.ValidatePassword(password) {
		return nil, fmt.Errorf("%w: password does not meet requirements", errs.ErrValidation)
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:       utils.GenerateID(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    nowOr(svc.Clock),
	}

	if err := svc.UsersRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and, when enabled, the TOTP code. Both
// a missing account and a wrong password yield ErrInvalidCredentials.
func (svc *UserService) Authenticate(ctx context.Context, email, password, totpCode string) (*model.User, error) {
	user, err := svc.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, errs.ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.PasswordHash, password)
	if err != nil || !ok {
		utils.TrackAuthAttempt("failure", "login")
		return nil, errs.ErrInvalidCredentials
	}

	if user.TwoFactorEnabled {
		if !services.VerifyTOTP(totpCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "2fa")
			return nil, errs.ErrInvalidCredentials
		}
	}

	utils.TrackAuthAttempt("success", "login")
	return user, nil
}

// ChangePassword swaps the credential hash after verifying the old one.
func (svc *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := svc.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := services.VerifyPassword(user.PasswordHash, oldPassword)
	if err != nil || !ok {
		return errs.ErrInvalidCredentials
	}

	if !utils.ValidatePassword(newPassword) {
		return fmt.Errorf("%w: password does not meet requirements", errs.ErrValidation)
	}

	hash, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return svc.UsersRepo.UpdatePasswordByEmail(ctx, user.Email, hash)
}

// Profile returns the caller's own account record.
func (svc *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	return svc.UsersRepo.FindByID(ctx, userID)
}
