// Package main implements the cards service, which issues debit and credit
// cards and tracks spending against their limits.
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
	if err := app.Run("cards", registerRoutes); err != nil {
		log.Fatalf("cards service failed: %v", err)
	}
}

func registerRoutes(r chi.Router, deps *app.Dependencies) error {
	cardStore := postgres.NewPostgresCardStore(deps.DB, deps.Logger)
	cardNumbers := idgen.NewResolver(idgen.NewNumberGenerator(), "card number")

	cardService, err := service.NewCardService(cardStore, cardNumbers, deps.Logger)
	if err != nil {
		return err
	}

	api.NewCardHandler(cardService, deps.Logger).RegisterRoutes(r)
	return nil
}
