package cli

import (
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			a.log.Info().Str("storage", a.cfg.DB.Driver).Msg("migrations applied")
			return nil
		},
	}
}
