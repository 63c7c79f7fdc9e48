package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"github.com/duartecoelho/folioctl/internal/api"
	"github.com/duartecoelho/folioctl/internal/config"
	"github.com/duartecoelho/folioctl/internal/console"
	"github.com/duartecoelho/folioctl/internal/controller"
	"github.com/duartecoelho/folioctl/internal/credential"
	"github.com/duartecoelho/folioctl/internal/domain"
	"github.com/duartecoelho/folioctl/internal/session"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		zero.Fatal().Err(err).Msg("configuration error")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	creds, err := credential.OpenSqliteStore(cfg.CredentialsPath)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to open credential store")
	}
	defer creds.Close()

	client := api.New(cfg.BaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, creds)
	guard := session.New(client, creds)

	profileGw := api.NewSingletonGateway[domain.PersonalInformation](client, "personal information", "/personal-information")
	experienceGw := api.NewGateway[domain.Experience, domain.ExperienceDraft](client, "experience", "/experience")
	projectGw := api.NewGateway[domain.Project, domain.ProjectDraft](client, "project", "/project")

	profileCtl := controller.NewProfileController(profileGw)
	experienceCtl := controller.NewCollectionController(
		experienceGw,
		"experience",
		func(e domain.Experience) int { return e.ID },
		domain.Experience.Draft,
	)
	projectCtl := controller.NewCollectionController(
		projectGw,
		"project",
		func(p domain.Project) int { return p.ID },
		domain.Project.Draft,
	)
	loader := controller.NewPortfolioLoader(profileGw, experienceGw, projectGw)

	cons, err := console.New(guard, profileCtl, experienceCtl, projectCtl, loader)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to start console")
	}
	defer cons.Close()

	if err := cons.Run(context.Background()); err != nil {
		zero.Fatal().Err(err).Send()
	}
}
