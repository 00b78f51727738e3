package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"mockshop/internal/config"
	"mockshop/internal/dataset"
	"mockshop/internal/metrics"
	"mockshop/internal/server"
)

// NewServeCommand runs the HTTP service.
func NewServeCommand(root *RootOptions) *cobra.Command {
	var addr string
	var seed int64

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dataset API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			log := root.Logger()
			store := dataset.NewStore(cfg.Seed, dataset.Limits{
				MaxUsers:    cfg.Limits.MaxUsers,
				MaxOrders:   cfg.Limits.MaxOrders,
				MaxProducts: cfg.Limits.MaxProducts,
			})
			srv := server.New(cfg, store, metrics.NewRegistry(), log)

			log.Info("listening", "addr", cfg.Addr, "seed", cfg.Seed)
			if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().Int64Var(&seed, "seed", 12345, "random source seed")

	return cmd
}
