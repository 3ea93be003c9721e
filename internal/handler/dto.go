package handler

import (
	"time"

	"github.com/mvaldren/inkwell/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash never
// leaves the domain layer.
type UserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
