// Command ibancheck validates IBANs from arguments or stdin, or serves the
// validation API with "ibancheck serve".
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vortex-fintech/go-iban/bulk"
	"github.com/vortex-fintech/go-iban/iban"
	"github.com/vortex-fintech/go-iban/logger"
	"github.com/vortex-fintech/go-iban/observe"
	"github.com/vortex-fintech/go-iban/server"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitFailure = 2
)

type line struct {
	Value  string      `json:"value"`
	Result iban.Result `json:"result"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "ibancheck: config: %v\n", err)
		return exitFailure
	}

	log, err := logger.New("ibancheck", cfg.Env, logger.WithOutputPaths("stderr"))
	if err != nil {
		fmt.Fprintf(stderr, "ibancheck: %v\n", err)
		return exitFailure
	}
	defer log.SafeSync()

	if len(args) > 0 && args[0] == "serve" {
		err := server.Run(ctx, server.Config{
			Addr:            cfg.HTTPAddr,
			GRPCAddr:        cfg.GRPCAddr,
			Workers:         cfg.Workers,
			ShutdownTimeout: cfg.ShutdownTimeout,
			Logger:          log,
		})
		if err != nil {
			log.Errorw("server stopped", "err", err)
			return exitFailure
		}
		return exitOK
	}

	values := args
	if len(values) == 0 {
		if values, err = readLines(stdin); err != nil {
			fmt.Fprintf(stderr, "ibancheck: read stdin: %v\n", err)
			return exitFailure
		}
	}

	return check(ctx, observe.New(nil, observe.WithLogger(log)), values, cfg.Workers, stdout, stderr)
}

func check(ctx context.Context, v bulk.Validator, values []string, workers int, stdout, stderr io.Writer) int {
	results, err := bulk.Validate(ctx, v, values, workers)
	if err != nil {
		fmt.Fprintf(stderr, "ibancheck: %v\n", err)
		return exitFailure
	}

	enc := json.NewEncoder(stdout)
	code := exitOK
	for i, res := range results {
		if err := enc.Encode(line{Value: values[i], Result: res}); err != nil {
			fmt.Fprintf(stderr, "ibancheck: write: %v\n", err)
			return exitFailure
		}
		if res.Invalid() {
			code = exitInvalid
		}
	}
	return code
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			out = append(out, s)
		}
	}
	return out, sc.Err()
}
