package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiowebux/shapecli/internal/cli"
	"github.com/studiowebux/shapecli/internal/config"
	"github.com/studiowebux/shapecli/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapecli",
	Short: "shapecli - terminal client for the model indexing service",
	Long: `shapecli is a terminal client for a multi-tenant 3D model indexing service.

Run without arguments to start the interactive TUI. Subcommands give
scripted access to the same backend calls.

Configuration comes from the environment:
  SHAPECLI_API_URL        base URL, %s is replaced by the tenant
  SHAPECLI_TOKEN_URL      OAuth2 token endpoint (defaults to <api>/oauth2/token)
  SHAPECLI_CLIENT_ID      OAuth2 client id
  SHAPECLI_CLIENT_SECRET  OAuth2 client secret

Tenants are listed in ~/.shapecli/tenants.json.

Examples:
  shapecli                         # Start the interactive TUI
  shapecli folders                 # List folders of the sole tenant
  shapecli models --folder 3       # List models in folder 3
  shapecli search "bracket" -o json
  shapecli history brack           # Fuzzy-search past queries`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List the tenant's folders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return cli.Folders(cmd.Context(), runOptions())
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models of one or more folders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return cli.Models(cmd.Context(), runOptions(), flagFolders)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the tenant's indexed models",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return cli.Search(cmd.Context(), runOptions(), args[0])
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [term]",
	Short: "Show past searches, fuzzy-filtered by term",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		term := ""
		if len(args) > 0 {
			term = args[0]
		}
		return cli.History(term, flagLimit, flagOutput)
	},
}

var (
	flagTenant  string
	flagOutput  string
	flagFolders []int
	flagLimit   int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagTenant, "tenant", "t", "", "Tenant to use (default: the sole configured tenant)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format (json/yaml/text)")

	modelsCmd.Flags().IntSliceVarP(&flagFolders, "folder", "f", nil, "Folder id, can be repeated")
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 50, "Maximum number of entries")

	rootCmd.AddCommand(foldersCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(historyCmd)
}

func runOptions() cli.RunOptions {
	return cli.RunOptions{
		Tenant:       flagTenant,
		OutputFormat: flagOutput,
	}
}
