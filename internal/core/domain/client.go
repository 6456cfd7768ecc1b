package domain

// Client is a customer billed by its owner.
type Client struct {
	ClientID    string  `json:"clientID"`
	OwnerUserID string  `json:"ownerUserID"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	AuditFields
}

// Validate checks the client's required fields.
func (c Client) Validate() error {
	if err := validateRequired("ownerUserID", c.OwnerUserID); err != nil {
		return err
	}
	return validateRequired("name", c.Name)
}

// OwnedBy reports whether userID owns the client.
func (c Client) OwnedBy(userID string) bool {
	return c.OwnerUserID == userID
}
