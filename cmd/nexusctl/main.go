// nexusctl is the operations CLI for the marketplace snapshot store. It
// talks straight to the configured backend; the API server does not need to
// be running.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/consultantnexus/marketplace-system/internal/core/ports"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
	"github.com/consultantnexus/marketplace-system/internal/infrastructure/config"
	"github.com/consultantnexus/marketplace-system/internal/infrastructure/db/mongo"
	"github.com/consultantnexus/marketplace-system/internal/infrastructure/db/redis"
)

func main() {
	root := &cobra.Command{
		Use:           "nexusctl",
		Short:         "Operate the marketplace snapshot store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(seedCmd(), wipeCmd(), dumpCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openStore connects to the backend selected by STORE_BACKEND.
func openStore(ctx context.Context) (ports.SnapshotStore, func(), error) {
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.StoreBackend {
	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		return mongo.NewSnapshotStore(db), func() { _ = client.Disconnect(context.Background()) }, nil
	case "redis":
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return redis.NewSnapshotStore(client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q, want mongo or redis", cfg.StoreBackend)
	}
}

// seedCmd writes the fixture collections, refusing to overwrite existing
// snapshots unless --force is given.
func seedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the seed fixtures to the snapshot store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, closeFn, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			if !force {
				for _, key := range ports.CollectionKeys {
					if _, err := store.Load(ctx, key); err == nil {
						return fmt.Errorf("snapshot %s already exists, use --force to overwrite", key)
					} else if !errors.Is(err, ports.ErrSnapshotNotFound) {
						return err
					}
				}
			}

			entries, err := seedEntries()
			if err != nil {
				return err
			}
			if err := store.SaveAll(ctx, entries); err != nil {
				return err
			}
			fmt.Printf("seeded %d collections\n", len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing snapshots")
	return cmd
}

// seedEntries encodes internal/core/state's fixtures so an explicit seed and
// a first-boot fallback produce the same marketplace.
func seedEntries() (map[string][]byte, error) {
	collections := map[string]any{
		ports.KeyUsers:        state.SeedUsers(),
		ports.KeyProjects:     state.SeedProjects(),
		ports.KeyProfiles:     state.SeedProfiles(),
		ports.KeyApplications: state.SeedApplications(),
		ports.KeyReviews:      state.SeedReviews(),
	}

	entries := make(map[string][]byte, len(collections))
	for key, v := range collections {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		entries[key] = data
	}
	return entries, nil
}

// wipeCmd deletes every collection snapshot.
func wipeCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete every collection snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return errors.New("wipe is destructive, pass --yes to confirm")
			}

			ctx := cmd.Context()
			store, closeFn, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			for _, key := range ports.CollectionKeys {
				if err := store.Delete(ctx, key); err != nil {
					return err
				}
			}
			fmt.Printf("deleted %d snapshots\n", len(ports.CollectionKeys))
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm the wipe")
	return cmd
}

// dumpCmd prints one snapshot, or all of them, as indented JSON.
func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [key]",
		Short: "Print snapshots as indented JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, closeFn, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			keys := ports.CollectionKeys
			if len(args) == 1 {
				keys = []string{args[0]}
			}

			for _, key := range keys {
				data, err := store.Load(ctx, key)
				if errors.Is(err, ports.ErrSnapshotNotFound) {
					fmt.Printf("%s: (missing)\n", key)
					continue
				}
				if err != nil {
					return err
				}

				var buf any
				if err := json.Unmarshal(data, &buf); err != nil {
					return fmt.Errorf("decode %s: %w", key, err)
				}
				pretty, err := json.MarshalIndent(buf, "", "  ")
				if err != nil {
					return err
				}
				fmt.Printf("%s:\n%s\n", key, pretty)
			}
			return nil
		},
	}
}
