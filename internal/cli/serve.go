package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taxi-service/internal/auth"
	httphandler "taxi-service/internal/http"
	"taxi-service/internal/http/middleware"
	"taxi-service/internal/service"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			return serve(a)
		},
	}
}

func serve(a *app) error {
	cfg := a.cfg

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	services := httphandler.Services{
		Manufacturers: service.NewManufacturerService(a.stores.Manufacturers, cfg.PageSize),
		Drivers:       service.NewDriverService(a.stores.Drivers, hasher, cfg.PageSize),
		Cars:          service.NewCarService(a.stores.Cars, a.stores.Manufacturers, a.stores.Drivers, cfg.PageSize),
		Auth:          service.NewAuthService(a.stores.Drivers, hasher, issuer),
		Index:         service.NewIndexService(a.stores),
	}

	production := cfg.Environment == "production"
	handler := httphandler.NewHandler(services, middleware.StaffOnly(cfg.Auth.LoginURL), production, a.log)
	authMiddleware := middleware.Auth(tokenParser, a.stores.Drivers, cfg.Auth.LoginURL)
	router := httphandler.NewRouter(handler, authMiddleware, a.log, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	a.log.Info().Str("addr", addr).Str("storage", cfg.DB.Driver).Msg("starting taxi service")

	if err := router.Run(addr); err != nil {
		a.log.Error().Err(err).Msg("failed to start server")
		return err
	}
	return nil
}
