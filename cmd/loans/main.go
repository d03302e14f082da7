// Package main implements the loans service, which books and tracks
// customer loans.
package main

import (
	"log"

	"github.com/go-chi/chi/v5"

	"github.com/bunshock/hipbank/internal/api"
	"github.com/bunshock/hipbank/internal/app"
	"github.com/bunshock/hipbank/internal/idgen"
	"github.com/bunshock/hipbank/internal/platform/postgres"
	"github.com/bunshock/hipbank/internal/service"
)

func main() {
	if err := app.Run("loans", registerRoutes); err != nil {
		log.Fatalf("loans service failed: %v", err)
	}
}

func registerRoutes(r chi.Router, deps *app.Dependencies) error {
	loanStore := postgres.NewPostgresLoanStore(deps.DB, deps.Logger)
	loanNumbers := idgen.NewResolver(idgen.NewNumberGenerator(), "loan number")

	loanService, err := service.NewLoanService(loanStore, loanNumbers, deps.Logger)
	if err != nil {
		return err
	}

	api.NewLoanHandler(loanService, deps.Logger).RegisterRoutes(r)
	return nil
}
