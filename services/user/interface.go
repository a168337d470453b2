package user

import (
	forgetpassRepo "ouiimi/database/repository/forgetpass"
	userRepo "ouiimi/database/repository/user"
	"ouiimi/models"
	"ouiimi/services/notification"
)

// RegistrationData carries the fields required to create an account.
type RegistrationData struct {
	Username    string
	Email       string
	PhoneNumber string
	Password    string
}

type UserService interface {
	// Registration / authentication
	Register(data RegistrationData) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error

	// User management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(userID string, updates map[string]interface{}) (*models.User, error)
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	DeleteUser(userID string) error
	SetRole(userID, role string) error

	// Password reset
	RequestPasswordReset(email string) error
	ResetPassword(token, password, confirmPassword string) error

	// Admin / utility
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo           userRepo.UserRepository
	ForgetPassRepo forgetpassRepo.ForgetPassRepository
	Notification   notification.NotificationService
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
}
