package service

import (
	"errors"
	"strings"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(req *CreateUserRequest, actor Actor) (*model.UserResponse, error)
	UpdateUser(userID uint, req *UpdateUserRequest, actor Actor) (*model.UserResponse, error)
	DeleteUser(userID uint, actor Actor) error
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uint) (*model.UserResponse, error)
	GetRoles() ([]model.Role, error)
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"notblank,max=100"`
	RoleID   uint   `json:"role_id" validate:"required"`
}

type UpdateUserRequest struct {
	Username string  `json:"username" validate:"required,alphanum,min=3,max=50"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	FullName string  `json:"full_name" validate:"notblank,max=100"`
	RoleID   uint    `json:"role_id" validate:"required"`
	IsActive *bool   `json:"is_active"`
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *userService) CreateUser(req *CreateUserRequest, actor Actor) (*model.UserResponse, error) {
	// 1. Validate request
	if msg := validator.FirstError(req); msg != "" {
		return nil, validationError(msg)
	}

	// 2. Check if username already exists
	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, ErrUsernameExists
	}

	// 3. Validate role exists
	if _, err := s.roleRepo.FindByID(req.RoleID); err != nil {
		return nil, ErrRoleNotFound
	}

	// 4. Create user
	user := &model.User{
		Username:     req.Username,
		FullName:     strings.TrimSpace(req.FullName),
		RoleID:       &req.RoleID,
		IsActive:     true,
		TokenVersion: uuid.New().String(),
	}
	user.CreatedBy = actor.Name()
	user.UpdatedBy = actor.Name()
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.GetUserByID(user.ID)
}

func (s *userService) UpdateUser(userID uint, req *UpdateUserRequest, actor Actor) (*model.UserResponse, error) {
	// 1. Validate request
	if msg := validator.FirstError(req); msg != "" {
		return nil, validationError(msg)
	}

	// 2. Find existing user
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Check if username is being changed and already exists
	if req.Username != user.Username {
		if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
			return nil, ErrUsernameExists
		}
	}

	// 4. Validate role exists
	if _, err := s.roleRepo.FindByID(req.RoleID); err != nil {
		return nil, ErrRoleNotFound
	}

	// 5. Update user fields
	user.Username = req.Username
	user.FullName = strings.TrimSpace(req.FullName)
	user.RoleID = &req.RoleID
	user.Role = nil
	if req.IsActive != nil {
		if !*req.IsActive && userID == actor.UserID {
			return nil, validationError("you cannot deactivate your own account")
		}
		user.IsActive = *req.IsActive
	}
	user.UpdatedBy = actor.Name()

	// 6. A new password ends the user's current session
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
		user.TokenVersion = uuid.New().String()
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return s.GetUserByID(userID)
}

func (s *userService) DeleteUser(userID uint, actor Actor) error {
	if userID == actor.UserID {
		return ErrCannotDeleteSelf
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(userID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uint) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) GetRoles() ([]model.Role, error) {
	return s.roleRepo.FindAll()
}
