package models

// User is a row of the users table.
type User struct {
	UserID       string  `db:"user_id"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	Name         string  `db:"name"`
	BusinessID   *string `db:"business_id"`
	Address      *string `db:"address"`
	IBAN         *string `db:"iban"`
	AuditFields
}
