package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"github.com/gatewerk/pipecheck/pkg/catalog"
	"github.com/gatewerk/pipecheck/pkg/config"
)

// catalogCmd groups node-type lookups against the schema catalog.
func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Query the node-type catalog",
	}

	lookupCmd := &cobra.Command{
		Use:   "lookup [class-id]",
		Short: "Look up a node type",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cat, err := buildCatalog(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "catalog unavailable: %v\n", err)
				os.Exit(2)
			}

			entry, err := cat.Lookup(cmd.Context(), args[0])
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "unknown node type '%s'\n", args[0])
				os.Exit(1)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(2)
			}
			fmt.Printf("%s version %d", entry.ClassID, entry.Version)
			if entry.Category != "" {
				fmt.Printf(" (%s)", entry.Category)
			}
			fmt.Println()
			if entry.Description != "" {
				fmt.Println(entry.Description)
			}
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search [token]",
		Short: "Search node types",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cat, err := buildCatalog(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "catalog unavailable: %v\n", err)
				os.Exit(2)
			}

			entries, err := cat.Search(cmd.Context(), args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(2)
			}
			for _, entry := range entries {
				fmt.Printf("%s\tversion %d\t%s\n", entry.ClassID, entry.Version, entry.Description)
			}
		},
	}

	cmd.AddCommand(lookupCmd, searchCmd)
	return cmd
}

// buildCatalog assembles the configured catalog client with its cache.
func buildCatalog(cfg *config.Config) (catalog.Catalog, error) {
	if cfg.Catalog.URL == "" {
		return nil, fmt.Errorf("no catalog URL configured (set PIPECHECK_CATALOG_URL)")
	}

	client := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Token)
	ttl := time.Duration(cfg.Catalog.CacheTTLSeconds) * time.Second

	var cache catalog.Cache
	switch cfg.Catalog.Cache {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Catalog.Redis.Addr,
			Password: cfg.Catalog.Redis.Password,
			DB:       cfg.Catalog.Redis.DB,
		})
		cache = catalog.NewRedisCache(rdb, ttl)
	default:
		cache = catalog.NewMemoryCache(ttl)
	}

	return catalog.NewCachingCatalog(client, cache), nil
}
