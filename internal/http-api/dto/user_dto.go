package dto

import "mediahub/internal/http-api/models"

// CreateUserDTO used for POST /user. The raw password is hashed before
// persistence and never stored or echoed.
type CreateUserDTO struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

func (d CreateUserDTO) ToModel() models.User {
	return models.User{
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
	}
}
