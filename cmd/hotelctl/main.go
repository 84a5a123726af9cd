// Package main provides hotelctl, a command-line client for the hotel server.
//
// Usage:
//
//	hotelctl [-addr URL] all|booked|stats|reset
//	hotelctl [-addr URL] book N
//	hotelctl [-addr URL] history [LIMIT]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hotel/internal/client"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "hotel server base URL")
	timeout := flag.Duration("timeout", client.DefaultTimeout, "overall command timeout")
	verbose := flag.Bool("v", false, "log requests to stderr")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	err := run(ctx, client.New(*addr, logger), flag.Args(), os.Stdout)
	var rejected *client.RejectedError
	switch {
	case err == nil:
	case errors.As(err, &rejected):
		fmt.Fprintln(os.Stderr, rejected.Message)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "hotelctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("missing command: all, book, reset, booked, stats, history")
	}

	var (
		result any
		err    error
	)
	switch cmd := args[0]; cmd {
	case "all":
		result, err = c.All(ctx)
	case "book":
		if len(args) != 2 {
			return errors.New("usage: book N")
		}
		n, perr := strconv.Atoi(args[1])
		if perr != nil {
			return fmt.Errorf("parsing room count %q: %w", args[1], perr)
		}
		result, err = c.Book(ctx, n)
	case "reset":
		msg, rerr := c.Reset(ctx)
		if rerr != nil {
			return rerr
		}
		_, err = fmt.Fprintln(out, msg)
		return err
	case "booked":
		result, err = c.Booked(ctx)
	case "stats":
		result, err = c.Stats(ctx)
	case "history":
		limit := 20
		if len(args) > 1 {
			n, perr := strconv.Atoi(args[1])
			if perr != nil {
				return fmt.Errorf("parsing limit %q: %w", args[1], perr)
			}
			limit = n
		}
		result, err = c.History(ctx, limit)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
