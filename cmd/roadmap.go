package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bilgisen/nexus/internal/logger"
	"github.com/bilgisen/nexus/internal/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:     "roadmap [niche]",
	Short:   "Generate a growth roadmap for a niche and print it as JSON",
	Example: `  nexus roadmap "Boutique dental clinics"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		provider, err := roadmap.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", roadmap.Message(err), err)
		}

		svc := roadmap.NewService(provider, cfg.AITimeout, logger.Component("roadmap"))
		strategies, err := svc.Generate(ctx, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("%s: %w", roadmap.Message(err), err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(strategies)
	},
}
