package main

import (
	"fmt"
	"log"

	"github.com/nekoniyah/velvetdream-website-2-0/api"
	"github.com/nekoniyah/velvetdream-website-2-0/pkg/config"
	"github.com/nekoniyah/velvetdream-website-2-0/pkg/repository"
	"github.com/spf13/cobra"
)

// Version will be set during build with ldflags
var Version = "2.0.0"

func main() {
	root := &cobra.Command{
		Use:     "velvetdream",
		Short:   "VelvetDream community site backend",
		Version: Version,
	}
	root.AddCommand(newServeCmd(), newSeedCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := repository.NewDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			// First boot on an empty store gets the initial site content
			empty, err := repository.Empty(db)
			if err != nil {
				return err
			}
			if empty {
				if err := repository.Seed(db); err != nil {
					return err
				}
				log.Println("Database seeded with initial content")
			}

			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			log.Printf("Listening on %s", addr)
			return api.NewRouter(cfg, db).Run(addr)
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the catalog and news content to the initial site content",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := repository.NewDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repository.Seed(db); err != nil {
				return err
			}
			log.Println("Database seeded successfully")
			return nil
		},
	}
}
