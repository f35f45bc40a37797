package serializer

import (
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
)

type UserRecord struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Image *string   `json:"image,omitempty"`
}

func User(u *model.User) UserRecord {
	return UserRecord{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
	}
}
