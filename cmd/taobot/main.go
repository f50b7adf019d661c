package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/coolbeans/taobot/pkg/book"
	"github.com/coolbeans/taobot/pkg/notify"
	"github.com/coolbeans/taobot/pkg/quote"
)

var version = "0.1.0"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	quoteStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(1, 2)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taobot",
		Short: "Send random book quotations to Slack",
		Long: `Taobot reads a book kept in a fixed two-level heading format
(## section headings, ### chapter headings, blank-line separated
passages), selects one chapter at random, and posts it to a
Slack-compatible webhook.

The webhook URL is read from the SLACK_WEBHOOK environment variable.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(sendCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(statsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [path]",
		Short: "Select a random quotation and post it to the webhook",
		Long: `Select a random quotation and post it to the configured webhook.

The SLACK_WEBHOOK environment variable must hold the webhook URL. The
payload is a JSON object with "title" and "message" fields; any non-2xx
response is reported as a delivery failure with status and body.

Example:
  taobot send books/tao-te-ching.md
  taobot send books/tao-te-ching.md --timeout 10s
  taobot send books/tao-te-ching.md --options slack.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			optionsPath, _ := cmd.Flags().GetString("options")

			bk, _, err := loadBook(args[0])
			if err != nil {
				return err
			}

			selected, err := quote.NewSelector(nil).Pick(bk)
			if err != nil {
				return err
			}

			config, err := notify.ConfigFromEnv()
			if err != nil {
				return err
			}
			config.Timeout = timeout
			if optionsPath != "" {
				opts, err := notify.LoadOptions(optionsPath)
				if err != nil {
					return err
				}
				config.Options = opts
			}

			client := notify.NewClient(config)
			if err := client.Send(context.Background(), selected.Title, selected.Text); err != nil {
				return err
			}

			fmt.Println("Message sent")
			return nil
		},
	}

	cmd.Flags().Duration("timeout", notify.DefaultTimeout, "Per-request delivery timeout")
	cmd.Flags().String("options", "", "YAML file with Slack presentation options")

	return cmd
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Select a random quotation and print it locally",
		Long: `Select a random quotation and print it to the terminal without
sending anything over the network.

Example:
  taobot show books/tao-te-ching.md
  taobot show books/tao-te-ching.md --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bk, _, err := loadBook(args[0])
			if err != nil {
				return err
			}

			var chooser quote.Chooser
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetUint64("seed")
				chooser = quote.NewSeededChooser(seed)
			}

			selected, err := quote.NewSelector(chooser).Pick(bk)
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render(selected.Title))
			fmt.Println(quoteStyle.Render(selected.Text))
			return nil
		},
	}

	cmd.Flags().Uint64("seed", 0, "Seed for a deterministic selection")

	return cmd
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [path]",
		Short: "Parse a book and report structure statistics",
		Long: `Parse a book file and report section, chapter, and passage counts.
Useful for checking that a book file is well formed before wiring it to
a webhook.

Example:
  taobot stats books/tao-te-ching.md
  taobot stats books/tao-te-ching.md --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			bk, abs, err := loadBook(args[0])
			if err != nil {
				return err
			}
			stats := bk.Statistics()

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			case "text":
				fmt.Printf("Book: %s\n", abs)
				fmt.Printf("  Sections: %d\n", stats.Sections)
				fmt.Printf("  Chapters: %d\n", stats.Chapters)
				fmt.Printf("  Passages: %d\n", stats.Passages)
				for _, sectionName := range bk.SectionNames() {
					section := bk[sectionName]
					fmt.Printf("  %s: %d chapter(s)\n", sectionName, len(section))
				}
				return nil
			default:
				return fmt.Errorf("unknown format: %s (want text or json)", format)
			}
		},
	}

	cmd.Flags().String("format", "text", "Output format: text or json")

	return cmd
}

// loadBook resolves path to an absolute path, checks it exists, and
// parses it. Returns the parsed book and the absolute path.
func loadBook(path string) (book.Book, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolving path: %w", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return nil, "", fmt.Errorf("book file not found: %s", abs)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, "", fmt.Errorf("opening book file: %w", err)
	}
	defer f.Close()

	bk, err := book.NewParser().Parse(f)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", filepath.Base(abs), err)
	}
	return bk, abs, nil
}
