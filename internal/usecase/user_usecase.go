package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidUserInput  = errors.New("invalid user input")
)

// IUserUseCase exposes visitor registration and lookup.

type IUserUseCase interface {
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) CreateUser(ctx context.Context, usr entities.User) (entities.User, error) {
	usr.Name = strings.TrimSpace(usr.Name)
	usr.Email = strings.TrimSpace(usr.Email)
	if usr.Name == "" || usr.Email == "" {
		return entities.User{}, ErrInvalidUserInput
	}

	// Email is the table PK; the conditional insert below is the real unique
	// guard. The read keeps the common duplicate path off the error branch.
	existing, err := u.repo.GetByEmail(ctx, usr.Email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.Email != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	usr.ID = uuid.NewString()
	usr.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, usr)
	if err != nil {
		// A concurrent registration can win the insert after the read above.
		if errors.Is(err, interfaces.ErrUserEmailTaken) {
			return entities.User{}, ErrUserAlreadyExists
		}
		return entities.User{}, err
	}
	log.Printf("[user][usecase] created user_id=%s email=%s", created.ID, created.Email)
	return created, nil
}

func (u *UserUseCase) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.User{}, ErrInvalidUserInput
	}

	usr, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if usr.Email == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}
