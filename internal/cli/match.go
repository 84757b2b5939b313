package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchStatusCmd())
	cmd.AddCommand(newMatchLockCmd())
	cmd.AddCommand(newMatchPlayCmd())
	cmd.AddCommand(newMatchResetCmd())
	cmd.AddCommand(newMatchRematchCmd())
	cmd.AddCommand(newMatchHistoryCmd())
	cmd.AddCommand(newMatchChartCmd())

	return cmd
}

func newMatchStatusCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current match state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchState

			q := url.Values{}
			if mode != "" {
				q.Set("mode", mode)
			}
			path := "/api/v1/match"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Opponent mode: pvc or pvp")

	return cmd
}

func newMatchLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock <choice>",
		Short: "Lock Player 1's choice (Stone, Paper or Scissor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"choice": args[0]}

			if err := client.Post("/api/v1/match/lock", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Choice locked")
			return nil
		},
	}

	return cmd
}

func newMatchPlayCmd() *cobra.Command {
	var mode, difficulty, player2Choice string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Resolve the current round",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"mode":       mode,
				"difficulty": difficulty,
			}
			if player2Choice != "" {
				req["player2_choice"] = player2Choice
			}
			var result PlayResult

			if err := client.Post("/api/v1/match/play", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "pvc", "Opponent mode: pvc or pvp")
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "Computer difficulty: easy or hard")
	cmd.Flags().StringVar(&player2Choice, "choice2", "", "Player 2's choice (pvp mode)")

	return cmd
}

func newMatchResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the match to a fresh state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchState

			if err := client.Post("/api/v1/match/reset", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchRematchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rematch",
		Short: "Start a rematch",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchState

			if err := client.Post("/api/v1/match/rematch", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the rounds of the current match",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result History

			if err := client.Get("/api/v1/match/history", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchChartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Show per-player win counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Chart

			if err := client.Get("/api/v1/match/chart", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
