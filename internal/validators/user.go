// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/guest-nama/models"
)

// UserValidator implements Validator for models.User. It checks that an
// account is ready to be stored: the phone is already normalized and the
// password has been hashed.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator and returns it as Validator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User and *models.User. When no fields are given
// every field is checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldPhone, FieldRole, FieldPasswordHash}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(user.ID) == "" {
				return ErrInvalidID
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		case FieldPhone:
			if !isNormalizedPhone(user.Phone) {
				return ErrInvalidPhone
			}
		case FieldRole:
			if !user.Role.IsValid() {
				return ErrInvalidRole
			}
		case FieldPasswordHash:
			if !isSHA256Hex(user.PasswordHash) {
				return ErrInvalidPasswordHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isNormalizedPhone reports whether phone is non-empty, contains only ASCII
// digits and does not start with zero.
func isNormalizedPhone(phone string) bool {
	if phone == "" || phone[0] == '0' {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

func isSHA256Hex(s string) bool {
	if len(s) != 64 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
