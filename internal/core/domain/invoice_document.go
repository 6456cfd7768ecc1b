package domain

// InvoiceParty is the name and contact block of one side of an invoice.
type InvoiceParty struct {
	Name       string
	Address    *string
	Email      *string
	BusinessID *string
	IBAN       *string
}

// InvoiceDocument is everything a renderer needs. It holds no clock or
// randomness so rendering the same document twice gives the same bytes.
type InvoiceDocument struct {
	Invoice        Invoice
	Seller         InvoiceParty
	Buyer          InvoiceParty
	CurrencySymbol string
}

// SellerFromUser maps a user profile to the seller block.
func SellerFromUser(u User) InvoiceParty {
	email := u.Email
	return InvoiceParty{
		Name:       u.Name,
		Address:    u.Address,
		Email:      &email,
		BusinessID: u.BusinessID,
		IBAN:       u.IBAN,
	}
}

// BuyerFromClient maps a client to the buyer block.
func BuyerFromClient(c Client) InvoiceParty {
	return InvoiceParty{
		Name:    c.Name,
		Address: c.Address,
		Email:   c.Email,
	}
}

// RenderedInvoice is a finished document ready to be served.
type RenderedInvoice struct {
	FileName    string
	ContentType string
	Content     []byte
}

// InvoiceFileName is the download name of an invoice PDF.
func InvoiceFileName(invoiceNumber string) string {
	return "invoice-" + invoiceNumber + ".pdf"
}
