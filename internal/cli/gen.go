package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mockshop/internal/config"
	"mockshop/internal/dataset"
)

// NewGenCommand generates one dataset and writes it out as JSONL fixture
// files for load testing or downstream tooling.
func NewGenCommand(root *RootOptions) *cobra.Command {
	var seed int64
	var users, orders, products int
	var outDir string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a dataset and write it as JSONL files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.ConfigPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}

			log := root.Logger()
			store := dataset.NewStore(seed, dataset.Limits{
				MaxUsers:    cfg.Limits.MaxUsers,
				MaxOrders:   cfg.Limits.MaxOrders,
				MaxProducts: cfg.Limits.MaxProducts,
			})
			res, err := store.Regenerate(dataset.Counts{Users: users, Orders: orders, Products: products})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("mkdir: %w", err)
			}
			if err := writeJSONL(filepath.Join(outDir, "users.jsonl"), store.Users()); err != nil {
				return err
			}
			if err := writeJSONL(filepath.Join(outDir, "products.jsonl"), store.Products()); err != nil {
				return err
			}
			if err := writeJSONL(filepath.Join(outDir, "orders.jsonl"), store.Orders()); err != nil {
				return err
			}
			if err := writeJSONL(filepath.Join(outDir, "user_rows.jsonl"), store.UserRows()); err != nil {
				return err
			}

			log.Info("dataset written", "dir", outDir,
				"users", res.Users, "orders", res.Orders, "products", res.Products)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 12345, "random source seed")
	cmd.Flags().IntVar(&users, "users", 1000, "number of users")
	cmd.Flags().IntVar(&orders, "orders", 5000, "number of orders")
	cmd.Flags().IntVar(&products, "products", 200, "number of products")
	cmd.Flags().StringVar(&outDir, "out", "./fixtures", "output directory")

	return cmd
}

// writeJSONL writes one record per line.
func writeJSONL[T any](path string, rows []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	for i := range rows {
		if err := enc.Encode(&rows[i]); err != nil {
			return fmt.Errorf("encode %s record %d: %w", path, i+1, err)
		}
	}
	return nil
}
