package request

import (
	"strings"

	"madinah_tours/internal/domain/entities"
)

type UserCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

func (r UserCreateRequest) ToEntity() entities.User {
	return entities.User{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
	}
}
