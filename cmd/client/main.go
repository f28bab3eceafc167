package main

import (
	"os"

	"github.com/MKhiriev/fractal-cipher/internal/client"
	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewClientLogger("fractal-cipher-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var app client.Client
	app, err = client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
