package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpandey/mentora/internal/store"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored tutoring sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		listings, err := s.SessionRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(listings) == 0 {
			fmt.Println("No sessions yet. Start one with: mentora chat")
			return nil
		}

		fmt.Printf("%-36s  %-15s  %-6s  %-8s  %s\n",
			"ID", "Mode", "Turns", "Status", "Updated")
		fmt.Println(strings.Repeat("─", 90))

		for _, l := range listings {
			status := "open"
			if l.Complete {
				status = "done"
			}
			fmt.Printf("%-36s  %-15s  %-6d  %-8s  %s\n",
				l.ID,
				l.Mode,
				l.TurnCount,
				status,
				l.UpdatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
