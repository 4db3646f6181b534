package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	pruneKeep    int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent parses recorded by the API",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(cmd.Context(), cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		records, err := svc.History(cmd.Context(), historyLimit)
		if err != nil {
			log.Fatalf("Failed to load history: %v", err)
		}

		for _, r := range records {
			status := "ok"
			if !r.Success {
				status = fmt.Sprintf("error at %d:%d in state %s near `%s`",
					r.ErrorLine, r.ErrorColumn, r.ErrorState, r.ErrorToken)
			}
			fmt.Printf("%s  %s  %-20s %d relations  %s\n",
				r.CreatedAt.Format(time.RFC3339), r.ID, r.Name, r.RelationCount, status)
		}
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest parse records",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(cmd.Context(), cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		deleted, err := svc.PruneHistory(cmd.Context(), pruneKeep)
		if err != nil {
			log.Fatalf("Failed to prune history: %v", err)
		}

		fmt.Printf("Deleted %d parse records\n", deleted)
	},
}
