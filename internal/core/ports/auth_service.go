package ports

import (
	"context"

	"github.com/tireshop/pos-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email, fullName, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
