package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"MoveRadar/internal/universe"
)

func symbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "Refresh the NSE+BSE symbol universe and show its status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			um, err := universe.NewManager(cfg.Symbols.StateFile)
			if err != nil {
				return fmt.Errorf("init universe: %w", err)
			}
			if err := um.Refresh(cmd.Context(), newSources(cfg)...); err != nil {
				return fmt.Errorf("refresh universe: %w", err)
			}
			st := um.Status()
			fmt.Printf("Fetched %d unique symbols (nse=%d bse=%d)\n", len(st.Symbols), st.NSECount, st.BSECount)
			return nil
		},
	}
}
