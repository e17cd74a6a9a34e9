package dto

import "github.com/adaskevich/tasktracker/internal/models"

// RoleDTO represents a role in API responses
type RoleDTO struct {
	ID          uint64 `json:"id"`
	Position    string `json:"position"`
	Description string `json:"description,omitempty"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID    uint64   `json:"id"`
	Login string   `json:"login"`
	Email string   `json:"email"`
	Role  *RoleDTO `json:"role"`
}

// TokenDTO is the login response body
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ToRoleDTO converts a Role model to RoleDTO
func ToRoleDTO(role models.Role) RoleDTO {
	return RoleDTO{
		ID:          role.ID,
		Position:    role.Position,
		Description: role.Description,
	}
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:    user.ID,
		Login: user.Login,
		Email: user.Email,
	}
	if user.Role != nil {
		role := ToRoleDTO(*user.Role)
		dto.Role = &role
	}
	return dto
}
