package user

import (
	"fmt"
	"time"
	"unicode"

	"ouiimi/models"
	"ouiimi/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 30 * time.Minute

// VerifyPasswordComplexity requires at least 8 characters with a letter and a digit.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return &ValidationError{Message: "password must be at least 8 characters"}
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return &ValidationError{Message: "password must contain both letters and digits"}
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RequestPasswordReset creates a single-use reset token and emails it to the
// account holder. An unknown email is reported as success so the endpoint
// cannot be used to probe which addresses exist.
func (s *DefaultUserService) RequestPasswordReset(email string) error {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RequestPasswordReset: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to request password reset, please try again")
	}
	if userRec == nil {
		return nil
	}

	fp := &models.ForgetPass{
		ID:        uuid.New().String(),
		UserID:    userRec.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.ForgetPassRepo.Create(fp); err != nil {
		utils.GetLogger().Error("RequestPasswordReset: failed to store token", zap.Error(err))
		return fmt.Errorf("failed to request password reset, please try again")
	}

	s.Notification.SendPasswordReset(userRec, fp.Token)
	return nil
}

// ResetPassword consumes a reset token and sets the new password. A mismatched
// confirmation is rejected before anything is read or written.
func (s *DefaultUserService) ResetPassword(token, password, confirmPassword string) error {
	if password != confirmPassword {
		return &ValidationError{Message: "passwords do not match"}
	}
	if err := VerifyPasswordComplexity(password); err != nil {
		return err
	}

	fp, err := s.ForgetPassRepo.GetByToken(token)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to fetch token", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}
	if fp == nil || time.Now().After(fp.ExpiresAt) {
		return &ValidationError{Message: "invalid or expired reset token"}
	}

	hash, err := hashPassword(password)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}

	update := bson.M{"$set": bson.M{
		"password_hash": hash,
		"token_hash":    "",
		"updated_at":    time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(fp.UserID, update); err != nil {
		utils.GetLogger().Error("ResetPassword: failed to update password", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}

	_ = s.ForgetPassRepo.DeleteByUserID(fp.UserID)
	return nil
}

// UpdateUserPassword changes the password for a signed-in user after checking
// the current one.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("UpdateUserPassword: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to update password, please try again")
	}
	if userRec == nil {
		return &ValidationError{Message: "user not found"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(currentPassword)); err != nil {
		return &ValidationError{Message: "current password is incorrect"}
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		utils.GetLogger().Error("UpdateUserPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to update password, please try again")
	}

	update := bson.M{"$set": bson.M{
		"password_hash": hash,
		"updated_at":    time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		utils.GetLogger().Error("UpdateUserPassword: failed to update password", zap.Error(err))
		return fmt.Errorf("failed to update password, please try again")
	}
	return nil
}
