/**
 * @description
 * bankctl is a small command line driver for the banking API client. It
 * exposes the operations the library offers: validating an account identifier
 * against the server and transferring funds, optionally authenticating first
 * or pre-validating both accounts.
 */
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/transfa/banking-client/internal/config"
	"github.com/transfa/banking-client/pkg/bankclient"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load .env file for local development. In production, env vars are set directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := bankclient.NewClientWithTimeout(cfg.BaseURL, cfg.Timeout())
	if err != nil {
		logger.Error("failed to create banking client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "validate":
		os.Exit(runValidate(ctx, logger, client, os.Args[2:]))
	case "transfer":
		os.Exit(runTransfer(ctx, logger, client, os.Args[2:]))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  bankctl validate <account-id>")
	fmt.Fprintln(os.Stderr, "  bankctl transfer -from <account-id> -to <account-id> -amount <value> [-authenticate] [-validate-first]")
}

func runValidate(ctx context.Context, logger *slog.Logger, client *bankclient.Client, args []string) int {
	if len(args) != 1 {
		usage()
		return 2
	}
	accountID := args[0]

	valid, err := client.ValidateAccount(ctx, accountID)
	if err != nil {
		reportFailure(logger, client.BaseURL(), err)
		return 1
	}
	if valid {
		fmt.Printf("account %s is valid\n", accountID)
	} else {
		fmt.Printf("account %s is invalid\n", accountID)
	}
	return 0
}

func runTransfer(ctx context.Context, logger *slog.Logger, client *bankclient.Client, args []string) int {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	from := fs.String("from", "", "source account id")
	to := fs.String("to", "", "destination account id")
	amount := fs.Float64("amount", 0, "amount to transfer")
	authenticate := fs.Bool("authenticate", false, "obtain a bearer token before transferring")
	validateFirst := fs.Bool("validate-first", false, "validate both accounts against the server before transferring")
	_ = fs.Parse(args)

	if *authenticate {
		if _, err := client.Authenticate(ctx); err != nil {
			reportFailure(logger, client.BaseURL(), err)
			return 1
		}
		logger.Info("authenticated with banking api")
	}

	call := bankclient.TransferCall{From: *from, To: *to, Amount: *amount}

	var result *bankclient.TransferResult
	var err error
	if *validateFirst {
		result, err = client.ExecuteWithValidation(ctx, call)
	} else {
		result, err = client.Execute(ctx, call)
	}
	if err != nil {
		reportFailure(logger, client.BaseURL(), err)
		return 1
	}

	if result.IsSuccessful() {
		fmt.Printf("transfer completed: transaction %s (%s -> %s, %.2f)\n",
			result.TransactionID, result.FromAccount, result.ToAccount, result.Amount)
	} else {
		fmt.Printf("transfer not successful: status=%s message=%s\n", result.Status, result.Message)
	}
	return 0
}

// reportFailure logs the typed failure and, for transport-level errors,
// reminds the operator that the banking server may not be running.
func reportFailure(logger *slog.Logger, baseURL string, err error) {
	var transportErr *bankclient.TransportError
	if errors.As(err, &transportErr) {
		logger.Error("banking server unreachable", "error", err)
		fmt.Fprintf(os.Stderr, "could not reach the banking server; check that it is running at %s\n", baseURL)
		return
	}

	var rejected *bankclient.TransferRejectedError
	if errors.As(err, &rejected) {
		logger.Error("transfer rejected", "status", rejected.StatusCode, "body", rejected.Body)
		return
	}

	logger.Error("banking operation failed", "error", err)
}
