package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	quoteFromCurrency string
	quoteToCurrency   string
	quoteFromChain    string
	quoteToChain      string
	quoteAmount       string
	quoteQuoteFor     string
	quoteFromWallet   string
	quoteToWallet     string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Fetch a one-shot swap quote",
	Long: `Fetch a normalized swap quote from the sidecar.

Examples:
  swapquoted quote --from BTC --from-chain bitcoin --to ETH --to-chain ethereum --amount 100000000 --from-wallet btc-wallet --to-wallet eth-wallet
  swapquoted quote --from BTC --from-chain bitcoin --to ETH --to-chain ethereum --quote-for max --from-wallet btc-wallet --to-wallet eth-wallet`,
	Run: runQuote,
}

// quoteResponse mirrors the sidecar's quote reply.
type quoteResponse struct {
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
	FromChain    string `json:"from_chain"`
	ToChain      string `json:"to_chain"`

	DepositAddress string `json:"deposit_address"`
	Memo           string `json:"memo"`
	SpendAmount    string `json:"spend_amount"`

	PayoutCurrency   string `json:"payout_currency"`
	PayoutAmount     string `json:"payout_amount"`
	PayoutIsEstimate bool   `json:"payout_is_estimate"`

	ExpirationDate string `json:"expiration_date"`
	FeeSessionID   string `json:"fee_session_id"`
	Notes          string `json:"notes"`
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteFromCurrency, "from", "", "source currency code")
	quoteCmd.Flags().StringVar(&quoteToCurrency, "to", "", "destination currency code")
	quoteCmd.Flags().StringVar(&quoteFromChain, "from-chain", "", "source mainnet chain identifier")
	quoteCmd.Flags().StringVar(&quoteToChain, "to-chain", "", "destination mainnet chain identifier")
	quoteCmd.Flags().StringVar(&quoteAmount, "amount", "", "amount in native units of the quoted side")
	quoteCmd.Flags().StringVar(&quoteQuoteFor, "quote-for", "from", "which side the amount is for: from, to or max")
	quoteCmd.Flags().StringVar(&quoteFromWallet, "from-wallet", "", "source wallet id")
	quoteCmd.Flags().StringVar(&quoteToWallet, "to-wallet", "", "destination wallet id")

	_ = quoteCmd.MarkFlagRequired("from")
	_ = quoteCmd.MarkFlagRequired("to")
	_ = quoteCmd.MarkFlagRequired("from-chain")
	_ = quoteCmd.MarkFlagRequired("to-chain")
	_ = quoteCmd.MarkFlagRequired("from-wallet")
	_ = quoteCmd.MarkFlagRequired("to-wallet")
}

func runQuote(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	query := url.Values{}
	query.Set("fromCurrency", quoteFromCurrency)
	query.Set("toCurrency", quoteToCurrency)
	query.Set("fromChain", quoteFromChain)
	query.Set("toChain", quoteToChain)
	query.Set("quoteFor", quoteQuoteFor)
	query.Set("fromWalletID", quoteFromWallet)
	query.Set("toWalletID", quoteToWallet)
	if quoteAmount != "" {
		query.Set("amount", quoteAmount)
	}

	client := http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(serverAddress + "/quote?" + query.Encode())
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Errorf("sidecar returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
		os.Exit(1)
	}

	if jsonOutput {
		fmt.Println(string(body))
		return
	}

	var quote quoteResponse
	if err := json.Unmarshal(body, &quote); err != nil {
		printError(err)
		os.Exit(1)
	}

	displayQuote(quote)
}

func displayQuote(quote quoteResponse) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                        SWAP QUOTE")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Pair:            %s (%s) -> %s (%s)\n",
		quote.FromCurrency, quote.FromChain, quote.ToCurrency, quote.ToChain)
	fmt.Printf("  Spend:           %s %s\n", quote.SpendAmount, quote.FromCurrency)

	payoutLabel := quote.PayoutAmount
	if quote.PayoutIsEstimate {
		payoutLabel += " (estimate)"
	}
	fmt.Printf("  Receive:         %s %s\n", payoutLabel, quote.PayoutCurrency)

	fmt.Printf("  Deposit Address: %s\n", color.CyanString(quote.DepositAddress))
	fmt.Printf("  Memo:            %s\n", color.HiBlackString(quote.Memo))
	fmt.Printf("  Expires:         %s\n", quote.ExpirationDate)

	if quote.FeeSessionID != "" {
		fmt.Printf("  Fee Session:     %s\n", quote.FeeSessionID)
	}
	if quote.Notes != "" {
		fmt.Printf("  Notes:           %s\n", quote.Notes)
	}

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}
