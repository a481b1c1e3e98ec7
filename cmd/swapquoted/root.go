// Package main implements swapquoted, the operator CLI for a running
// swap quote sidecar.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverAddress string

var rootCmd = &cobra.Command{
	Use:   "swapquoted",
	Short: "CLI for the swap quote sidecar",
	Long: `swapquoted talks to a running swap quote sidecar over HTTP.

Examples:
  swapquoted quote --from BTC --from-chain bitcoin --to ETH --to-chain ethereum --amount 100000000 --from-wallet btc-wallet --to-wallet eth-wallet
  swapquoted health`,
	Version: "0.1.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddress, "server", "http://localhost:9092", "sidecar base URL")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}
