package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the sidecar and its provider",
	Run:   runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(serverAddress + "/healthcheck")
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

	if jsonOutput {
		fmt.Println(strings.TrimSpace(string(body)))
		if resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		return
	}

	if resp.StatusCode != http.StatusOK {
		color.Red("Sidecar unhealthy (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
		os.Exit(1)
	}

	color.Green("Sidecar healthy: %s", strings.TrimSpace(string(body)))
}
