package user

import (
	"context"
	"fmt"
	"time"

	"ouiimi/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies the credentials and issues a fresh token, rotating
// the stored token hash so earlier tokens stop validating.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, &ValidationError{Message: "invalid email or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, &ValidationError{Message: "invalid email or password"}
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	update := bson.M{"$set": bson.M{
		"token_hash": tokenHash,
		"updated_at": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(userRec.ID, update); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	s.cacheTokenHash(userRec.ID, tokenHash)

	return &AuthResponse{
		ID:          userRec.ID,
		Token:       token,
		Username:    userRec.Username,
		Email:       userRec.Email,
		PhoneNumber: userRec.PhoneNumber,
		Role:        userRec.Role,
	}, nil
}

// RevokeAuthToken invalidates the user's current token.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	update := bson.M{"$set": bson.M{
		"token_hash": "",
		"updated_at": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	if client := utils.GetAuthCacheClient(); client != nil {
		if err := client.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
			utils.GetLogger().Warn("failed to clear cached token hash", zap.String("userId", userID), zap.Error(err))
		}
	}
	return nil
}
