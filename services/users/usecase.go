package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/models"
)

// UserUC defines the account and driver administration business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fleetops/fleetops/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*models.User, error)

	CreateDriver(ctx context.Context, req models.CreateDriverRequest) (*models.User, error)
	ListDrivers(ctx context.Context) ([]models.User, error)
	GetDriver(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateDriver(ctx context.Context, id uuid.UUID, req models.UpdateDriverRequest) (*models.User, error)
	DeleteDriver(ctx context.Context, id uuid.UUID) error
}
