package mapping

import (
	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/SscSPs/freelance_books/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		BusinessID:   d.BusinessID,
		Address:      d.Address,
		IBAN:         d.IBAN,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		BusinessID:   m.BusinessID,
		Address:      m.Address,
		IBAN:         m.IBAN,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
