package domain

// User is an account holder. Its profile doubles as the seller identity
// printed on invoices.
type User struct {
	UserID       string  `json:"userID"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Name         string  `json:"name"`
	BusinessID   *string `json:"businessId,omitempty"`
	Address      *string `json:"address,omitempty"`
	IBAN         *string `json:"iban,omitempty"`
	AuditFields
}
