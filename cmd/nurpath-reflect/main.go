// Command nurpath-reflect is a thin terminal consumer of the reflection
// engine: it hydrates the profile, runs timed reflections, and manages the
// weekly goal against a Nurpath backend.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	client "github.com/nurpath/reflect-client"
	"github.com/nurpath/reflect-client/internal/cache"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var baseURL, userID string

	root := &cobra.Command{
		Use:           "nurpath-reflect",
		Short:         "Khutbah reflection companion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&baseURL, "server", os.Getenv("NURPATH_SERVER"), "backend base URL")
	root.PersistentFlags().StringVar(&userID, "user", os.Getenv("NURPATH_USER_ID"), "user id")

	root.AddCommand(newStatsCmd(&baseURL, &userID))
	root.AddCommand(newReflectCmd(&baseURL, &userID))
	root.AddCommand(newGoalCmd(&baseURL, &userID))
	root.AddCommand(newArchiveCmd(&baseURL, &userID))
	return root
}

func loadEngine(baseURL string) (*client.Engine, *cache.SQLiteStore, error) {
	if baseURL == "" {
		return nil, nil, fmt.Errorf("backend base URL required (--server or NURPATH_SERVER)")
	}
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	path, err := cache.ResolvePath()
	if err != nil {
		return nil, nil, err
	}
	store, err := cache.Open(path)
	if err != nil {
		return nil, nil, err
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	api := client.NewFromConfig(baseURL, cfg)
	eng := client.NewEngine(api, store,
		client.WithConfig(cfg),
		client.WithLogger(logger),
		client.WithEvents(consoleEvents{}),
	)
	return eng, store, nil
}

func newStatsCmd(baseURL, userID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show reflection progress for the week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, store, err := loadEngine(*baseURL)
			if err != nil {
				return err
			}
			defer func() { _ = eng.Close(); _ = store.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := eng.Hydrate(ctx, *userID); err != nil {
				fmt.Fprintf(os.Stderr, "warning: showing cached values: %v\n", err)
			}
			p := eng.Profile()
			fmt.Printf("Khutbahs:      %d\n", p.KhutbahCount)
			fmt.Printf("Reflections:   %d\n", p.ReflectionsCount)
			fmt.Printf("Nurbits:       %d\n", p.NurbitCount)
			fmt.Printf("This week:     %d / %d\n", p.WeeklyProgress, p.CurrentGoal)
			fmt.Printf("Weekly best:   %d\n", p.WeeklyBest)
			fmt.Printf("Goal ceiling:  %d\n", eng.MaxAllowedGoal())
			if p.GoalReached {
				fmt.Println("Weekly goal reached, mashaAllah.")
			}
			return nil
		},
	}
}

func newReflectCmd(baseURL, userID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reflect",
		Short: "Run a timed reflection and claim the reward",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, store, err := loadEngine(*baseURL)
			if err != nil {
				return err
			}
			defer func() { _ = eng.Close(); _ = store.Close() }()

			ctx := cmd.Context()
			if err := eng.Hydrate(ctx, *userID); err != nil {
				return err
			}
			if err := eng.StartReflection(ctx); err != nil {
				return err
			}

			s := eng.Session()
			if s.Placeholder {
				fmt.Println(s.SummaryText)
				eng.Abandon()
				return nil
			}
			fmt.Println(s.SummaryText)
			fmt.Println()

			for eng.Session().State == client.SessionCounting {
				select {
				case <-ctx.Done():
					eng.Abandon()
					return ctx.Err()
				case <-time.After(200 * time.Millisecond):
				}
			}
			return eng.MarkAsRead(ctx)
		},
	}
}

func newGoalCmd(baseURL, userID *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage the weekly reflections goal"}

	goal.AddCommand(&cobra.Command{
		Use:   "set <n>",
		Short: "Set this week's reflections goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("goal must be a number: %w", err)
			}
			eng, store, err := loadEngine(*baseURL)
			if err != nil {
				return err
			}
			defer func() { _ = eng.Close(); _ = store.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := eng.Hydrate(ctx, *userID); err != nil {
				return err
			}
			if err := eng.SetWeeklyGoal(ctx, n); err != nil {
				return err
			}
			fmt.Printf("Weekly goal set to %d.\n", n)
			return nil
		},
	})
	return goal
}

func newArchiveCmd(baseURL, userID *string) *cobra.Command {
	var query string

	archive := &cobra.Command{
		Use:   "archive",
		Short: "List or search archived khutbahs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if *baseURL == "" {
				return fmt.Errorf("backend base URL required (--server or NURPATH_SERVER)")
			}
			cfg, err := client.LoadConfig()
			if err != nil {
				return err
			}
			api := client.NewFromConfig(*baseURL, cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			var khutbahs []client.Khutbah
			if query != "" {
				khutbahs, err = api.SearchKhutbahs(ctx, *userID, query)
			} else {
				khutbahs, err = api.ListKhutbahs(ctx, *userID)
			}
			if err != nil {
				return err
			}
			for _, k := range khutbahs {
				marker := " "
				if k.IsFavorite {
					marker = "*"
				}
				fmt.Printf("%s %s  %s\n", marker, k.ID, firstWords(k.Summary, 8))
			}
			return nil
		},
	}
	archive.Flags().StringVar(&query, "query", "", "free-text search query")
	return archive
}

// consoleEvents renders engine notifications for the terminal.
type consoleEvents struct{}

func (consoleEvents) RewardGranted(total, gained int) {
	fmt.Printf("\n+%d Nurbits! Total: %d\n", gained, total)
}

func (consoleEvents) SessionChanged(s client.Session) {
	switch s.State {
	case client.SessionCounting:
		fmt.Printf("\rReading... %3ds left", s.RemainingSeconds)
	case client.SessionAwaitingAck:
		fmt.Printf("\rDone. Marking as read.   \n")
	}
}

func firstWords(s string, n int) string {
	words := 0
	for i, r := range s {
		if r == ' ' {
			words++
			if words == n {
				return s[:i] + "..."
			}
		}
	}
	return s
}
