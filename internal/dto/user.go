package dto

import (
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
)

// RegisterRequest creates a new account. Business details are printed on invoices.
type RegisterRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	Name       string  `json:"name" binding:"required"`
	BusinessID *string `json:"businessId"`
	Address    *string `json:"address"`
	IBAN       *string `json:"iban"`
}

// UserResponse is the public view of a user profile.
type UserResponse struct {
	UserID     string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	BusinessID *string   `json:"businessId,omitempty"`
	Address    *string   `json:"address,omitempty"`
	IBAN       *string   `json:"iban,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Email:      user.Email,
		Name:       user.Name,
		BusinessID: user.BusinessID,
		Address:    user.Address,
		IBAN:       user.IBAN,
		CreatedAt:  user.CreatedAt,
	}
}
