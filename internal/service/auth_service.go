package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/pkg/jwt"
	"github.com/Maspur102/elokalfa/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrSessionReplaced    = errors.New("session expired (logged in on another device or logged out)")
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	Logout(actor Actor) error
	Authenticate(tokenString string) (*Actor, error)
	Me(userID uint) (*model.UserResponse, error)
	ChangePassword(userID uint, req *ChangePasswordRequest) error
}

type LoginResponse struct {
	Token      string             `json:"token"`
	ExpiresAt  time.Time          `json:"expires_at"`
	User       model.UserResponse `json:"user"`
	Privileges []string           `json:"privileges"` // Flat privileges array for easy checking
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" form:"old_password" validate:"required"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required,min=6"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		now:      time.Now,
	}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	// 1. Find user by username
	user, err := s.userRepo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// 2. Verify password before revealing the account state
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 3. Single session: a new token version invalidates older tokens
	now := s.now()
	version := uuid.New().String()
	if err := s.userRepo.RecordLogin(user.ID, version, now); err != nil {
		return nil, errors.New("failed to update session")
	}
	user.TokenVersion = version
	user.LastLoginAt = &now

	// 4. Generate JWT token with the token version
	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.FullName, user.RoleCode(), user.GetPrivilegeCodes(), version)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:      token,
		ExpiresAt:  now.Add(s.tokens.TTL()),
		User:       user.ToResponse(),
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}

// Logout rotates the token version so the current token stops working.
func (s *authService) Logout(actor Actor) error {
	return s.userRepo.UpdateTokenVersion(actor.UserID, uuid.New().String())
}

// Authenticate checks the token, the account and the session version, and returns the acting user.
func (s *authService) Authenticate(tokenString string) (*Actor, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, ErrSessionReplaced
	}

	// privileges come from the database so role changes apply without a new login
	return actorFromUser(user), nil
}

func (s *authService) Me(userID uint) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *authService) ChangePassword(userID uint, req *ChangePasswordRequest) error {
	if msg := validator.FirstError(req); msg != "" {
		return validationError(msg)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if !user.CheckPassword(req.OldPassword) {
		return ErrWrongPassword
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return errors.New("failed to hash new password")
	}
	if err := s.userRepo.UpdatePassword(user.ID, user.Password); err != nil {
		return err
	}
	// tokens issued with the old password stop working
	return s.userRepo.UpdateTokenVersion(user.ID, uuid.New().String())
}
