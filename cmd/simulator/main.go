package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/transfersim/internal/domain"
	"github.com/simaogato/transfersim/internal/usecase/simulation"
)

func main() {
	// 1. Collect run parameters interactively
	cfg := promptConfig(bufio.NewScanner(os.Stdin))

	// 2. Run the simulation; one log line per successful transfer
	fmt.Printf("Starting concurrent transfers for a maximum of %s...\n", cfg.Deadline)

	recorder := newLogRecorder()
	supervisor := simulation.NewSupervisor(cfg, recorder)
	report := supervisor.Run(context.Background())

	// 3. Final report
	fmt.Println("\n--- Final Results ---")
	fmt.Printf("Final Balance Account 1: %s\n", report.Account1.Balance.StringFixed(2))
	fmt.Printf("Final Balance Account 2: %s\n", report.Account2.Balance.StringFixed(2))
	fmt.Printf("Successful Transfers (1->2): %d\n", report.Account1.SuccessfulTransfers)
	fmt.Printf("Successful Transfers (2->1): %d\n", report.Account2.SuccessfulTransfers)
	fmt.Printf("Termination Reason: %s\n", report.TerminationReason)
	fmt.Println("---------------------")
}

// promptConfig collects every run parameter from stdin, re-prompting
// until each value parses. Parsed values are accepted as-is; the
// engine permits zero and negative amounts.
func promptConfig(in *bufio.Scanner) simulation.Config {
	var cfg simulation.Config

	fmt.Println("--- Bank Account Conundrum Setup ---")
	cfg.Account1.InitialBalance = promptDecimal(in, "Account 1 Initial Balance: ")
	cfg.Account1.TransferAmount = promptDecimal(in, "Account 1 Transfer Amount: ")
	cfg.Account2.InitialBalance = promptDecimal(in, "Account 2 Initial Balance: ")
	cfg.Account2.TransferAmount = promptDecimal(in, "Account 2 Transfer Amount: ")
	cfg.Period = time.Duration(promptInt(in, "Transfer Period (ms): ")) * time.Millisecond
	cfg.Deadline = time.Duration(promptInt(in, "Global Deadline (seconds): ")) * time.Second
	fmt.Println("------------------------------------")

	return cfg
}

func promptDecimal(in *bufio.Scanner, label string) decimal.Decimal {
	for {
		fmt.Print(label)
		if !in.Scan() {
			log.Fatal("input closed before setup finished")
		}
		value, err := decimal.NewFromString(in.Text())
		if err == nil {
			return value
		}
		fmt.Println("Please enter a number.")
	}
}

func promptInt(in *bufio.Scanner, label string) int64 {
	for {
		fmt.Print(label)
		if !in.Scan() {
			log.Fatal("input closed before setup finished")
		}
		value, err := strconv.ParseInt(in.Text(), 10, 64)
		if err == nil {
			return value
		}
		fmt.Println("Please enter a whole number.")
	}
}

// logRecorder writes one line per successful transfer to stdout.
type logRecorder struct {
	logger *log.Logger
}

func newLogRecorder() *logRecorder {
	return &logRecorder{logger: log.New(os.Stdout, "", 0)}
}

func (r *logRecorder) Record(rec domain.TransferRecord) {
	r.logger.Printf("SUCCESS: %d -> %d | Amt: %s | New Balance %d: %s",
		rec.SourceID, rec.DestID, rec.Amount.StringFixed(2), rec.SourceID, rec.SourceBalance.StringFixed(2))
}
