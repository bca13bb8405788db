package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taxi-service/internal/auth"
	"taxi-service/internal/config"
	"taxi-service/internal/model"
	"taxi-service/internal/repository"
	"taxi-service/internal/service"
)

var errMemoryStorage = errors.New("createsuperuser needs persistent storage, STORAGE_DRIVER is memory")

func createSuperuserCmd() *cobra.Command {
	var input service.CreateSuperuserInput

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create a staff driver with full admin access",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			if a.cfg.DB.Driver == config.StorageDriverMemory {
				return errMemoryStorage
			}

			driver, err := createSuperuser(cmd.Context(), a.stores, a.cfg.Auth.BcryptCost, input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Superuser %s created.\n", driver.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Username, "username", "", "Username of the superuser")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password of the superuser")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address (optional)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func createSuperuser(ctx context.Context, stores repository.Stores, bcryptCost int, input service.CreateSuperuserInput) (*model.Driver, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	drivers := service.NewDriverService(stores.Drivers, auth.NewHasher(bcryptCost), 0)
	driver, err := drivers.CreateSuperuser(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create superuser: %w", err)
	}
	return driver, nil
}
