package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/screa/hashbrown-miner/internal/config"
	"github.com/screa/hashbrown-miner/internal/crypto"
	"github.com/screa/hashbrown-miner/internal/history"
	"github.com/screa/hashbrown-miner/internal/lights"
	logpkg "github.com/screa/hashbrown-miner/internal/logger"
	"github.com/screa/hashbrown-miner/internal/prompt"
	"github.com/screa/hashbrown-miner/internal/report"
	"github.com/screa/hashbrown-miner/pkg/difficulty"
	minerpkg "github.com/screa/hashbrown-miner/pkg/miner"
	"github.com/screa/hashbrown-miner/pkg/types"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.NewConfig()
	logger *logpkg.Logger

	newMiner = minerpkg.NewMiner
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "hashbrown",
		Short: "Proof-of-work mining simulator",
		Long: `Simulates proof-of-work mining: hashes a block with an increasing nonce
until the digest has enough leading zero bits, lighting an LED per new best.`,
		SilenceUsage: true,
		RunE:         runSimulations,
	}

	rootCmd.Flags().IntVarP(&cfg.Cycles, "cycles", "c", cfg.Cycles, "Number of times to run the simulation")
	rootCmd.Flags().IntVarP(&cfg.Difficulty, "difficulty", "d", cfg.Difficulty, fmt.Sprintf("Required leading zero bits [%d : %d]", difficulty.DifficultyMin, difficulty.DifficultyMax))
	rootCmd.Flags().StringVarP(&cfg.Algorithm, "algorithm", "a", cfg.Algorithm, "Hash algorithm (see 'hashbrown algorithms')")
	rootCmd.Flags().StringVarP(&cfg.BlockFile, "config", "f", cfg.BlockFile, "Block file with coinbase, txs and led_pins (physical header numbers unless pin_numbering is bcm)")
	rootCmd.Flags().StringVarP(&cfg.Lights, "lights", "L", cfg.Lights, "Indicator lights: gpio, log, bar or none")
	rootCmd.Flags().BoolVarP(&cfg.Interactive, "interactive", "I", false, "Prompt for cycles, difficulty and algorithm")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().StringVarP(&cfg.LogFile, "log-file", "l", "", "Log file for progress tracking (default: stdout)")
	rootCmd.Flags().IntVarP(&cfg.LogInterval, "log-interval", "i", cfg.LogInterval, "Logging interval in seconds")
	rootCmd.Flags().StringVarP(&cfg.History, "history", "H", "", "bbolt file to append run summaries to")
	rootCmd.Flags().IntVarP(&cfg.BlinkCount, "blink", "b", cfg.BlinkCount, "Times to blink all lights on success (0 disables)")
	rootCmd.Flags().DurationVar(&cfg.BlinkInterval, "blink-interval", cfg.BlinkInterval, "Pause between success blinks")
	rootCmd.Flags().BoolVar(&cfg.HostInfo, "host-info", false, "Include CPU and memory details in the statistics")

	rootCmd.AddCommand(algorithmsCmd(), historyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSimulations(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	block, err := loadBlock(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("lights") && block.Lights != "" {
		cfg.Lights = block.Lights
	}

	var prompter *prompt.Prompter
	if cfg.Interactive {
		prompter = prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to HashbrownPi")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil && !cfg.Interactive {
		return err
	}
	if err := cfg.ValidateBlock(block); err != nil {
		return err
	}

	bank, err := lights.New(cfg.Lights, block.Pins(), difficulty.DifficultyMax, os.Stderr, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := bank.Close(); err != nil {
			logger.Printf("Closing lights: %v", err)
		}
	}()

	return simulate(context.Background(), cmd, prompter, bank, block)
}

// simulate runs simulations until the prompter declines another one or a run
// is interrupted. Interrupts are only trapped while a run is mining, so Ctrl+C
// at a prompt ends the program.
func simulate(parent context.Context, cmd *cobra.Command, prompter *prompt.Prompter, bank lights.Bank, block *config.Block) error {
	for {
		if prompter != nil {
			answers, err := prompter.Ask()
			if err != nil {
				return err
			}
			cfg.Cycles = answers.Cycles
			cfg.Difficulty = answers.Difficulty
			cfg.Algorithm = answers.Algorithm
		}

		err := runSimulation(parent, cmd, bank, block)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}

		if prompter == nil {
			return nil
		}
		again, err := prompter.Again()
		if err != nil || !again {
			return err
		}
	}
}

func runSimulation(parent context.Context, cmd *cobra.Command, bank lights.Bank, block *config.Block) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Printf("Starting simulation: %s", cfg.Describe())
	logger.Printf("Lights: %s", cfg.Lights)

	miner, err := newMiner(cfg, logger, bank)
	if err != nil {
		return err
	}

	// Set up signal handling for Ctrl+C
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := miner.Mine(ctx, block.Message())
	if errors.Is(err, context.Canceled) {
		logger.Println("Received interrupt signal (Ctrl+C). Stopping miner...")
		if summary != nil && len(summary.Cycles) > 0 {
			_ = report.Write(cmd.OutOrStdout(), summary, nil)
		}
		if werr := report.WriteProgress(cmd.OutOrStdout(), miner.GetBestResult()); werr != nil {
			return werr
		}
		return err
	}
	if err != nil {
		return err
	}

	var host *report.Host
	if cfg.HostInfo {
		host = report.DetectHost()
	}
	if err := report.Write(cmd.OutOrStdout(), summary, host); err != nil {
		return err
	}

	if cfg.History != "" {
		if err := saveHistory(summary); err != nil {
			logger.Printf("History: %v", err)
		}
	}
	return nil
}

func loadBlock(cmd *cobra.Command) (*config.Block, error) {
	block, err := config.LoadBlock(cfg.BlockFile)
	if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		logger.Printf("No %s found, using the default block", cfg.BlockFile)
		return config.DefaultBlock(), nil
	}
	if err != nil {
		return nil, err
	}
	logger.Printf("Block file: %s (%d transactions)", cfg.BlockFile, len(block.Transactions))
	return block, nil
}

func setupLogging() (func(), error) {
	if cfg.LogFile != "" {
		// Log to file
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger = logpkg.NewWriter(file)
		logger.SetFlags(log.LstdFlags | log.Lmicroseconds)
		logger.SetVerbose(cfg.Verbose)
		return func() { _ = file.Close() }, nil
	}

	// Log to stdout
	logger = logpkg.New()
	logger.SetFlags(log.LstdFlags)
	logger.SetVerbose(cfg.Verbose)
	return func() {}, nil
}

func saveHistory(summary *types.Summary) error {
	store, err := history.Open(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(summary)
	if err != nil {
		return err
	}
	logger.Printf("Saved run #%d to %s", id, cfg.History)
	return nil
}

func algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported hash algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range crypto.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func historyCmd() *cobra.Command {
	var path string
	c := &cobra.Command{
		Use:   "history",
		Short: "Show the summaries of past simulations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}
			for _, r := range records {
				s := r.Summary
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s %s difficulty %d: %d cycles, average %.6fs, %.2f hashes/sec\n",
					r.ID, s.Started.Format("2006-01-02 15:04:05"), s.Algorithm, s.Difficulty,
					len(s.Cycles), s.AverageSeconds(), s.HashRate())
			}
			return nil
		},
	}
	c.Flags().StringVarP(&path, "file", "H", "hashbrown.db", "History database")
	return c
}
