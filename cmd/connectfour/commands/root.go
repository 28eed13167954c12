package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/service/game"
	"github.com/iamasit07/connect-four/internal/transport/console"
)

type options struct {
	envFile      string
	rows         int
	columns      int
	rounds       int
	firstPlayer  string
	secondPlayer string
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "connectfour",
		Short:        "Play Connect Four against a friend in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return play(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", "", "env file to load (default .env)")
	flags.IntVar(&opts.rows, "rows", 0, "board rows, 5 to 9 (asked when unset)")
	flags.IntVar(&opts.columns, "columns", 0, "board columns, 5 to 9 (asked when unset)")
	flags.IntVarP(&opts.rounds, "rounds", "n", 0, "number of games to play (asked when unset)")
	flags.StringVar(&opts.firstPlayer, "first", "", "first player's name")
	flags.StringVar(&opts.secondPlayer, "second", "", "second player's name")

	return cmd
}

// loadConfig layers flags over the environment.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	log.SetOutput(io.Discard)

	var files []string
	if opts.envFile != "" {
		files = append(files, opts.envFile)
	}
	cfg, err := config.LoadConfig(files...)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = opts.rows
	}
	if flags.Changed("columns") {
		cfg.Columns = opts.columns
	}
	if flags.Changed("rounds") {
		cfg.Rounds = opts.rounds
	}
	if flags.Changed("first") {
		cfg.FirstPlayer = opts.firstPlayer
	}
	if flags.Changed("second") {
		cfg.SecondPlayer = opts.secondPlayer
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Debug {
		log.SetOutput(cmd.ErrOrStderr())
	}
	return cfg, nil
}

func play(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	term := console.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), console.ParseLanguage(cfg.Language))
	term.Say(console.Title)

	var err error
	if cfg.FirstPlayer == "" {
		if cfg.FirstPlayer, err = term.AskName(ctx, console.FirstPlayerPrompt); err != nil {
			return fmt.Errorf("read first player: %w", err)
		}
	}
	if cfg.SecondPlayer == "" {
		if cfg.SecondPlayer, err = term.AskName(ctx, console.SecondPlayerPrompt); err != nil {
			return fmt.Errorf("read second player: %w", err)
		}
	}
	if !cfg.BoardSet() {
		if cfg.Rows, cfg.Columns, err = term.AskDimensions(ctx); err != nil {
			return fmt.Errorf("read board dimensions: %w", err)
		}
	}
	if cfg.Rounds == 0 {
		if cfg.Rounds, err = term.AskRounds(ctx); err != nil {
			return fmt.Errorf("read number of games: %w", err)
		}
	}

	match, err := game.NewMatch(game.MatchConfig{
		Rounds:       cfg.Rounds,
		Rows:         cfg.Rows,
		Columns:      cfg.Columns,
		FirstPlayer:  cfg.FirstPlayer,
		SecondPlayer: cfg.SecondPlayer,
	}, term, term)
	if err != nil {
		return err
	}

	_, err = match.Run(ctx)
	return err
}
