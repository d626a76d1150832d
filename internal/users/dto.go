package users

import (
	"github.com/google/uuid"

	"github.com/shopzo-app/shopzo-backend/pkg/db/models"
)

// UserDTO is the public shape of a user account returned by the API.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// FromModel converts a persisted user into its API representation.
func FromModel(user *models.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
