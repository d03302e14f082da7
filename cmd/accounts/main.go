// Package main implements the accounts service, which manages customers
// and their bank accounts.
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
	if err := app.Run("accounts", registerRoutes); err != nil {
		log.Fatalf("accounts service failed: %v", err)
	}
}

func registerRoutes(r chi.Router, deps *app.Dependencies) error {
	customerStore := postgres.NewPostgresCustomerStore(deps.DB, deps.Logger)
	accountStore := postgres.NewPostgresAccountStore(deps.DB, deps.Logger)
	accountNumbers := idgen.NewResolver(idgen.NewNumberGenerator(), "account number")

	accountService, err := service.NewAccountService(
		deps.DB, customerStore, accountStore, accountNumbers, deps.Logger)
	if err != nil {
		return err
	}

	api.NewAccountHandler(accountService, deps.Config.Contact, deps.Logger).RegisterRoutes(r)
	return nil
}
