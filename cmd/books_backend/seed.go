package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/freelance_books/internal/core/services"
	"github.com/SscSPs/freelance_books/internal/repositories/database/pgsql"
	"github.com/SscSPs/freelance_books/pkg/database"
	"github.com/spf13/cobra"
)

var seedTermsCmd = &cobra.Command{
	Use:   "seed-terms",
	Short: "Insert the default payment terms that are missing",
	Long: `seed-terms inserts the built in payment terms (7, 14 and 30 days net and
14 days -2% / 30 days net) unless a system term with the same label exists.
Running it twice is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
		if err != nil {
			return err
		}
		defer database.ClosePgxPool(pool)

		repos := pgsql.NewRepositoryProvider(pool)
		inserted, err := services.NewPaymentTermService(repos.PaymentTermRepo).SeedDefaultPaymentTerms(ctx)
		if err != nil {
			return err
		}
		logger.Info("Payment terms seeded", slog.Int("inserted", inserted))
		fmt.Fprintf(cmd.OutOrStdout(), "inserted %d payment terms\n", inserted)
		return nil
	},
}
