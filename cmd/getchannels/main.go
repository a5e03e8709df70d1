package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/openepg/getchannels/internal/config"
	"github.com/openepg/getchannels/internal/fetcher"
	"github.com/openepg/getchannels/internal/logging"
	"github.com/openepg/getchannels/internal/service"
	"github.com/openepg/getchannels/internal/store"
)

var (
	configFile string
	outputDir  string
	logDir     string
	timeout    time.Duration
	workers    int
	skipProbe  bool
	noInput    bool
)

var rootCmd = &cobra.Command{
	Use:   "getchannels",
	Short: "Export filtered IPTV channel listings to CSV",
	Long: `getchannels fetches public channel listings (iptv-org, Free-TV),
keeps English-language channels from CA/US/GB/AU with sports, kids and
adult content removed, and writes one CSV file per source.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run())
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for the CSV files")
	rootCmd.Flags().StringVar(&logDir, "log-dir", "", "directory for run logs")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "per-source fetch timeout")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "number of sources fetched concurrently")
	rootCmd.Flags().BoolVar(&skipProbe, "skip-probe", false, "skip the connectivity check")
	rootCmd.Flags().BoolVar(&noInput, "no-input", false, "do not wait for ENTER before exiting")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() int {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if logDir != "" {
		cfg.LogDir = logDir
	}
	if timeout > 0 {
		cfg.FetchTimeout = timeout
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	// The log file comes up before anything that can fail, so every later
	// step leaves a trace.
	log, err := logging.New(cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		return 1
	}
	defer log.Close()

	if cwd, err := os.Getwd(); err == nil {
		log.Info("Running from: %s", cwd)
	}
	log.Info("Log file confirmed: %s", log.Path())
	log.Info("Output folder: %s", cfg.OutputDir)

	st, err := store.NewCSV(cfg.OutputDir)
	if err != nil {
		log.Error("output dir: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !skipProbe {
		log.Info("Testing internet...")
		if err := fetcher.Probe(ctx, cfg.ProbeURL, cfg.ProbeTimeout); err != nil {
			log.Error("No internet: %v", err)
			if !noInput {
				pause("Press ENTER to exit...")
			}
			return 1
		}
		log.Info("Internet connection OK")
	}

	opts := service.Options{Timeout: cfg.FetchTimeout, UserAgent: cfg.UserAgent}
	tasks := make([]service.Task, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		t, err := service.NewTask(src, st, opts)
		if err != nil {
			log.Error("task %s: %v", src.Name, err)
			return 1
		}
		tasks = append(tasks, t)
	}

	log.Info("Launching all %d sources in parallel (multi-threaded)...", len(tasks))
	for r := range service.Run(ctx, log, tasks, cfg.Workers) {
		log.Result("%s", r)
	}

	line := strings.Repeat("═", 70)
	log.Info("%s", line)
	log.Info("COMPLETED SUCCESSFULLY!")
	log.Info("CSVs saved to → %s", cfg.OutputDir)
	log.Info("Log file      → %s", log.Path())
	log.Info("%s", line)

	if !noInput {
		pause("\nPress ENTER to close...")
	}
	return 0
}

// pause blocks until the user presses ENTER, so double-click launches keep
// their window open long enough to read the summary.
func pause(prompt string) {
	fmt.Print(prompt)
	bufio.NewReader(os.Stdin).ReadString('\n')
}
