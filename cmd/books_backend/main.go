package main

// @title Freelance Books API
// @version 1.0
// @description Invoicing and bookkeeping backend for freelancers: clients, payment terms, numbered invoices with VAT and PDF export, expenses.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}
