package dto

import (
	"time"

	"github.com/seino914/user-auth-service/internal/auth/domain"
)

// UserOutput is the public projection of an account. It never carries
// the password hash or the lockout counters.
type UserOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserOutput(account *domain.Account) UserOutput {
	return UserOutput{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Company:   account.Company,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
