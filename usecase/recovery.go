package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"notebin/errs"
	"notebin/services"
	"notebin/utils"
)

// RecoveryService governs the password reset flow: a per-email sliding
// window in front of the token collaborator. Whether the email maps to an
// account is never revealed to the caller.
type RecoveryService struct {
	UsersRepo   UsersRepository
	Limiter     *services.SlidingWindowLimiter
	TokenMaxAge time.Duration
	Clock       Clock
}

// RequestReset returns a reset token for a known email, or "" for an
// unknown one; the handler responds identically in both cases. A throttled
// request issues nothing.
func (svc *RecoveryService) RequestReset(ctx context.Context, email, remoteAddr string) (string, error) {
	if !svc.Limiter.Allow(email, nowOr(svc.Clock)) {
		log.Printf("SECURITY: rate limit exceeded: password reset attempt for %s from %s", email, remoteAddr)
		utils.RateLimitDenials.Inc()
		return "", errs.ErrRateLimited
	}

	user, err := svc.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Printf("SECURITY: reset attempt for non-existent email %s from %s", email, remoteAddr)
			return "", nil
		}
		return "", err
	}

	token, err := services.GenerateResetToken(user.Email, svc.TokenMaxAge)
	if err != nil {
		return "", fmt.Errorf("failed to issue reset token: %w", err)
	}

	log.Printf("SECURITY: reset link generated for %s from %s", email, remoteAddr)
	return token, nil
}

// ResetPassword redeems a reset token and replaces the credential hash.
func (svc *RecoveryService) ResetPassword(ctx context.Context, token, password string) error {
	email, err := services.RedeemResetToken(token)
	if err != nil {
		log.Printf("SECURITY: reset failed: invalid or expired token")
		utils.TrackAuthAttempt("failure", "reset")
		return err
	}

	if !utils.ValidatePassword(password) {
		return fmt.Errorf("%w: password does not meet requirements", errs.ErrValidation)
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return err
	}

	if err := svc.UsersRepo.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		return err
	}

	log.Printf("SECURITY: password changed for %s", email)
	utils.TrackAuthAttempt("success", "reset")
	return nil
}
