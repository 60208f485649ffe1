package interfaces

import (
	"context"
	"errors"

	"madinah_tours/internal/domain/entities"
)

// ErrUserEmailTaken is returned by Create when the email already has a row,
// including when a concurrent registration won the insert.
var ErrUserEmailTaken = errors.New("user email already registered")

// IUserRepository abstracts DynamoDB persistence for User. Email is the
// primary key; Create must fail with ErrUserEmailTaken when the email is
// already taken.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
