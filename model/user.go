package model

import "time"

type User struct {
	UserID           string    `bson:"user_id" json:"user_id"`
	Email            string    `bson:"email" json:"email" validate:"required,email"`
	Name             string    `bson:"name" json:"name" validate:"required,min=1,max=150"`
	PasswordHash     string    `bson:"password_hash" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	TwoFactorSecret  string    `bson:"two_factor_secret,omitempty" json:"-"`
	TwoFactorEnabled bool      `bson:"two_factor_enabled" json:"two_factor_enabled"`
	RecoveryCodes    []string  `bson:"recovery_codes,omitempty" json:"-"`
}
