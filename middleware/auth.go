package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "ouiimi/database/repository/user"
	"ouiimi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const tokenHashCacheTTL = time.Hour

// AuthMiddleware validates the Bearer token and checks its hash against the
// stored one, so revoked or rotated tokens stop working immediately. The hash
// is looked up in the auth cache first and falls back to the user document on
// a miss.
func AuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing or malformed Authorization header")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
			c.Abort()
			return
		}

		tokenHash := utils.HashToken(tokenString)
		storedHash, err := lookupTokenHash(c.Request.Context(), users, claims.UserID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to verify token")
			c.Abort()
			return
		}
		if storedHash == "" || storedHash != tokenHash {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "token has been revoked")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// lookupTokenHash returns the user's current token hash, consulting the auth
// cache before the database and refreshing the cache on a miss.
func lookupTokenHash(ctx context.Context, users userRepo.UserRepository, userID string) (string, error) {
	client := utils.GetAuthCacheClient()
	key := utils.AuthCachePrefix + userID

	if client != nil {
		cached, err := client.Get(ctx, key).Result()
		if err == nil {
			return cached, nil
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("auth cache read failed", zap.String("userId", userID), zap.Error(err))
		}
	}

	userRec, err := users.GetByIDWithProjection(userID, bson.M{"token_hash": 1})
	if err != nil {
		utils.GetLogger().Error("token hash lookup failed", zap.String("userId", userID), zap.Error(err))
		return "", err
	}
	if userRec == nil {
		return "", nil
	}

	if client != nil && userRec.TokenHash != "" {
		if err := client.Set(ctx, key, userRec.TokenHash, tokenHashCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("auth cache write failed", zap.String("userId", userID), zap.Error(err))
		}
	}
	return userRec.TokenHash, nil
}
