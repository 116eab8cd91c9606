// Command wordletree runs the decision-tree solver from the command
// line, or serves it over HTTP. Mirrors original_source/src/main.cc's
// `solve <guesses> <solutions> [target]` contract as a `solve`
// subcommand, plus a `serve` subcommand (spec §6.3).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lorenzo-stoakes/wordle-solver/internal/config"
	"github.com/lorenzo-stoakes/wordle-solver/internal/historystore"
	"github.com/lorenzo-stoakes/wordle-solver/internal/httpserver"
	"github.com/lorenzo-stoakes/wordle-solver/internal/render"
	"github.com/lorenzo-stoakes/wordle-solver/internal/solver"
	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

func main() {
	cliCfg := config.LoadCLI()
	if lvl, err := zerolog.ParseLevel(cliCfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	root := &cobra.Command{
		Use:           "wordletree",
		Short:         "Wordle decision-tree solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("error")
		os.Exit(1)
	}
}

func newSolveCmd() *cobra.Command {
	var pruneLimit int

	cmd := &cobra.Command{
		Use:   "solve <valid_guesses_path> <solutions_path> [target_solution]",
		Short: "Build and print the decision tree for a word list pair",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args, pruneLimit)
		},
	}
	cmd.Flags().IntVar(&pruneLimit, "prune-limit", 8, "number of top-ranked guesses explored per node")
	return cmd
}

func runSolve(args []string, pruneLimit int) error {
	guessesPath, solutionsPath := args[0], args[1]

	list, err := wordle.LoadWordList(guessesPath, solutionsPath)
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}

	table := wordle.BuildMatchTable(list.Guesses, list.Solutions)
	engine := solver.NewEngine(table)

	begin := time.Now()
	result := engine.Solve(pruneLimit)
	elapsed := time.Since(begin)

	tree := render.New(table, list.Guesses, list.Solutions)

	if len(args) == 3 {
		line, err := tree.RenderSolution(result.Root, args[2])
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
		fmt.Print(line)
		return nil
	}

	fmt.Print(tree.Render(result.Root))

	stats := solver.ComputeStats(result.Root, result.NumSolutions)
	fmt.Println()
	fmt.Println("--- stats ---")
	for g := 1; g <= wordle.MaxGuesses; g++ {
		fmt.Printf("%d : %d\n", g, stats.Counts[g])
	}
	fmt.Printf("x : %d\n", stats.Unsolved)
	fmt.Printf("av: %v\n", stats.AverageGuesses())
	fmt.Println("-------------")
	fmt.Println()
	fmt.Printf("Took %d ms\n", elapsed.Milliseconds())

	return nil
}

func newServeCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfgPath)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "configs/server.yaml", "path to server configuration file")
	return cmd
}

func runServe(cfgPath string) error {
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return err
	}

	history, err := historystore.Open(cfg.History.DSN, cfg.History.MigrationsDir)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer history.Close()

	adminHash, err := bootstrapAdminHash(cfg.Auth.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := history.EnsureAdmin(cmdContext(), newAdminID(), cfg.Auth.AdminUsername, adminHash); err != nil {
		return fmt.Errorf("ensure admin account: %w", err)
	}

	srv := httpserver.New(cfg, history)
	log.Info().Int("port", cfg.HTTP.Port).Msg("starting wordletree server")
	return srv.Start(fmt.Sprintf(":%d", cfg.HTTP.Port))
}
