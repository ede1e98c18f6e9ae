package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/jwt"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/services/users"
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates an account and returns it with a fresh token. An
// unrecognized role falls back to driver so self-registration can never
// mint an admin by accident.
func (uc *userUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	role := req.Role
	if role != models.RoleAdmin {
		role = models.RoleDriver
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return uc.authResponse(user)
}

// Login verifies credentials and returns the account with a fresh token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (uc *userUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return uc.authResponse(user)
}

// GetMe returns the authenticated user's own account
func (uc *userUC) GetMe(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// CreateDriver registers a driver account on behalf of an admin
func (uc *userUC) CreateDriver(ctx context.Context, req models.CreateDriverRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Photo:        req.Photo,
		Role:         models.RoleDriver,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListDrivers returns every driver account
func (uc *userUC) ListDrivers(ctx context.Context) ([]models.User, error) {
	return uc.userRepo.ListUsersByRole(ctx, models.RoleDriver)
}

// GetDriver returns a driver account by id. Accounts holding another role
// read as missing.
func (uc *userUC) GetDriver(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleDriver {
		return nil, errs.ErrDriverNotFound
	}
	return user, nil
}

// UpdateDriver merges the supplied fields onto a driver account
func (uc *userUC) UpdateDriver(ctx context.Context, id uuid.UUID, req models.UpdateDriverRequest) (*models.User, error) {
	user, err := uc.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Photo != nil {
		user.Photo = *req.Photo
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteDriver removes a driver account
func (uc *userUC) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.GetDriver(ctx, id); err != nil {
		return err
	}
	return uc.userRepo.DeleteUser(ctx, id)
}

func (uc *userUC) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, _, err := jwt.GenerateToken(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}
