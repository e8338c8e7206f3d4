package cli

import (
	"fmt"
	"os"

	"github.com/postkit-labs/postkit/internal/frontmatter"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	showFrontMatter bool
	showCheck       bool
)

func init() {
	showCmd.Flags().BoolVar(&showFrontMatter, "front-matter", false, "Print only the parsed front-matter block")
	showCmd.Flags().BoolVar(&showCheck, "check", false, "Validate the front matter against the schema")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a scaffolded file",
	Long: `Print a file's contents to stdout.

With --front-matter, print only the parsed front-matter block re-encoded
as YAML. With --check, validate the front matter against the schema
instead and exit non-zero when it has issues.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if showCheck {
			result, err := frontmatter.ValidateFile(path)
			if err != nil {
				return err
			}
			if result.Valid {
				fmt.Printf("%s: front matter is valid\n", path)
				return nil
			}
			for _, issue := range result.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				fmt.Printf("  - %s\n", msg)
			}
			return fmt.Errorf("%s: front matter has %d issue(s)", path, len(result.Issues))
		}

		if showFrontMatter {
			fm, err := frontmatter.ParseFile(path)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(fm)
			if err != nil {
				return fmt.Errorf("encoding front matter: %w", err)
			}
			fmt.Print(string(out))
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		fmt.Print(string(data))
		return nil
	},
}
