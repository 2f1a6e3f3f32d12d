// lockboxctl is an interactive console for the LockBox remote command
// interface. It connects to one instrument, then reads RCI lines from the
// terminal: lines ending in "?" are run as queries and their decoded reply
// printed, other lines are sent as directives. Dot-commands wrap the typed
// decoders:
//
//	.num <query>             decode the reply as a scalar (SI suffixes apply)
//	.wave <ch> <len> <query> fetch one waveform channel
//	.quit                    disconnect and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/ergochat/readline"

	lockbox "github.com/lumetric/lockbox-go"
)

const historyFileName = ".lockboxctl_history"

func main() {
	var (
		configPath = flag.String("config", "", "path to config.toml")
		host       = flag.String("host", "", "instrument hostname or IP")
		port       = flag.Int("port", 0, "RCI port (default 1998)")
		verbose    = flag.Bool("verbose", false, "log every exchange to stderr")
	)
	flag.Parse()

	cfg := consoleConfig{}
	if *configPath != "" {
		loaded, err := loadConsoleConfig(*configPath, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *verbose {
		cfg.Verbose = true
	}
	if cfg.Host == "" {
		fmt.Fprintln(os.Stderr, "lockboxctl: no host given (use -host or -config)")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "lockboxctl:", err)
		os.Exit(1)
	}
}

func run(cfg consoleConfig) error {
	logger := lockbox.NopLogger()
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	opts := []lockbox.Option{
		lockbox.WithHost(cfg.Host),
		lockbox.WithLogger(logger),
	}
	if cfg.Port != 0 {
		opts = append(opts, lockbox.WithPort(cfg.Port))
	}
	if cfg.DialTimeout != 0 {
		opts = append(opts, lockbox.WithDialTimeout(cfg.DialTimeout))
	}
	if cfg.ReadTimeout != 0 {
		opts = append(opts, lockbox.WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.SettleDelay != 0 {
		opts = append(opts, lockbox.WithSettleDelay(cfg.SettleDelay))
	}
	if cfg.RetryDelay != 0 {
		opts = append(opts, lockbox.WithRetryDelay(cfg.RetryDelay))
	}
	if cfg.PollWindow != 0 {
		opts = append(opts, lockbox.WithPollWindow(cfg.PollWindow))
	}
	if cfg.ChannelCount != 0 {
		opts = append(opts, lockbox.WithChannelCount(cfg.ChannelCount))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := lockbox.Dial(ctx, opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Printf("connected to %s; .help for commands\n", cfg.Host)

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:                 "rci> ",
		HistoryFile:            filepath.Join(homeDir(), historyFileName),
		HistoryLimit:           500,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveToHistory(line)

		if line == ".quit" || line == ".exit" {
			return nil
		}
		if err := dispatch(client, line); err != nil {
			if errors.Is(err, lockbox.ErrNotConnected) {
				return err
			}
			fmt.Println("error:", err)
		}
	}
}

// dispatch runs one console line against the client.
func dispatch(client lockbox.Client, line string) error {
	switch {
	case line == ".help":
		fmt.Print(helpText)
		return nil

	case strings.HasPrefix(line, ".num "):
		v, err := client.QueryNumeric(strings.TrimSpace(line[len(".num"):]))
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", v)
		return nil

	case strings.HasPrefix(line, ".wave "):
		fields := strings.Fields(line[len(".wave"):])
		if len(fields) < 3 {
			return fmt.Errorf("usage: .wave <channel> <length> <query>")
		}
		channel, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("channel: %w", err)
		}
		length, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("length: %w", err)
		}
		samples, err := client.QueryWaveform(strings.Join(fields[2:], " "), channel, length)
		if err != nil {
			return err
		}
		printSamples(samples)
		return nil

	case strings.HasSuffix(line, "?"):
		reply, err := client.Query(line)
		if err != nil {
			return err
		}
		if reply == "" {
			fmt.Println("(empty reply)")
			return nil
		}
		fmt.Println(reply)
		return nil

	default:
		return client.Send(line)
	}
}

func printSamples(samples []float64) {
	for i, v := range samples {
		if i > 0 {
			fmt.Print("\t")
		}
		fmt.Printf("%g", v)
	}
	fmt.Println()
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

const helpText = `lines ending in "?" run as queries; other lines are sent as directives
  .num <query>              query and decode as a scalar
  .wave <ch> <len> <query>  query and decode one waveform channel
  .help                     this text
  .quit                     disconnect and exit
`
