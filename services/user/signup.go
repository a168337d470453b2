package user

import (
	"context"
	"fmt"
	"time"

	"ouiimi/models"
	"ouiimi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

// Register validates the registration data, checks for duplicates, hashes the
// password, and persists the user. New accounts start as customers and are
// signed in immediately.
func (s *DefaultUserService) Register(data RegistrationData) (*AuthResponse, error) {
	if data.Email == "" || data.Password == "" || data.Username == "" {
		return nil, &ValidationError{Message: "username, email and password are required"}
	}
	if err := VerifyPasswordComplexity(data.Password); err != nil {
		return nil, err
	}

	available, err := s.Repo.IsAvailable(data.Email, data.Username)
	if err != nil {
		utils.GetLogger().Error("Register: availability check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if !available {
		return nil, &ConflictError{Message: "a user with this email or username already exists"}
	}

	hash, err := hashPassword(data.Password)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Username:     data.Username,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: hash,
		Role:         models.RoleCustomer,
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.cacheTokenHash(userObj.ID, userObj.TokenHash)

	return &AuthResponse{
		ID:          userObj.ID,
		Token:       token,
		Username:    userObj.Username,
		Email:       userObj.Email,
		PhoneNumber: userObj.PhoneNumber,
		Role:        userObj.Role,
	}, nil
}

// cacheTokenHash stores the current token hash in the auth cache so the auth
// middleware can validate without a DB round trip. Cache failures only cost a
// later DB lookup.
func (s *DefaultUserService) cacheTokenHash(userID, tokenHash string) {
	client := utils.GetAuthCacheClient()
	if client == nil {
		return
	}
	key := utils.AuthCachePrefix + userID
	if err := client.Set(context.Background(), key, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache token hash", zap.String("userId", userID), zap.Error(err))
	}
}
