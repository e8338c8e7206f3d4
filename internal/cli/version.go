package cli

import (
	"encoding/json"
	"fmt"

	"github.com/postkit-labs/postkit/internal/branding"
	"github.com/postkit-labs/postkit/internal/version"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionShort {
			fmt.Println(buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		suffix := ""
		if !version.IsRelease(buildVersion) {
			suffix = " (unreleased)"
		}
		fmt.Printf("%s version %s%s (commit: %s, built: %s)\n",
			branding.CLIName(), version.Normalize(buildVersion), suffix, buildCommit, buildDate)
		return nil
	},
}
