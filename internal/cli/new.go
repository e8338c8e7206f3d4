package cli

import (
	"fmt"
	"time"

	"github.com/postkit-labs/postkit/internal/config"
	"github.com/postkit-labs/postkit/internal/frontmatter"
	"github.com/postkit-labs/postkit/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	newWords      []string
	newDest       string
	newDrafts     bool
	newExt        string
	newSiteRoot   string
	newTitle      string
	newAuthor     string
	newCategories string
	newTags       string
)

func init() {
	newCmd.Flags().StringArrayVarP(&newWords, "filename", "f", nil, "Word combined into the file name (repeatable)")
	newCmd.Flags().StringVarP(&newDest, "dest", "d", "", "Subpath appended under the base directory")
	newCmd.Flags().BoolVar(&newDrafts, "drafts", false, "Create a draft in _drafts instead of a post in _posts")
	newCmd.Flags().StringVar(&newExt, "ext", ".md", "Output file extension")
	newCmd.Flags().StringVar(&newSiteRoot, "site-root", "", "Site repository root (default: site.root config, then working directory)")
	newCmd.Flags().StringVar(&newTitle, "title", "", "Front-matter title (default: <title> placeholder)")
	newCmd.Flags().StringVar(&newAuthor, "author", "", "Front-matter author (default: <author> placeholder)")
	newCmd.Flags().StringVar(&newCategories, "categories", "", "Front-matter categories (default: <categories> placeholder)")
	newCmd.Flags().StringVar(&newTags, "tags", "", "Front-matter tags (default: <tag> placeholder)")
	_ = newCmd.MarkFlagRequired("filename")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new post or draft file",
	Long: `Scaffold a dated blog post or draft with a front-matter block.

The file name is the current date followed by the lower-cased -f words
joined with dashes, e.g. 2024-03-15-my-first-post.md. Unless front-matter
flags are given, the block contains placeholder tokens for hand-editing.

Examples:
  postkit new -f My -f First -f Post
  postkit new -f draft -f idea -d ideas --drafts`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := config.SiteRoot(newSiteRoot)
		if err != nil {
			return err
		}

		kind := scaffold.Post
		if newDrafts {
			kind = scaffold.Draft
		}

		values := frontmatter.DefaultValues()
		if newAuthor != "" {
			values.Author = newAuthor
		}
		if newTitle != "" {
			values.Title = newTitle
		}
		if newCategories != "" {
			values.Categories = newCategories
		}
		if newTags != "" {
			values.Tags = newTags
		}

		result, err := scaffold.Generate(scaffold.Params{
			Words:    newWords,
			Ext:      newExt,
			Kind:     kind,
			Subpath:  newDest,
			SiteRoot: root,
			Values:   values,
			Date:     time.Now(),
		})
		if err != nil {
			return err
		}

		printResult(kind, result)

		if newTitle == "" {
			fmt.Println("\nNext steps:")
			fmt.Println("  1. Fill in the front-matter placeholders")
			fmt.Println("  2. Write your content below the closing ---")
		}
		return nil
	},
}

func printResult(kind scaffold.Kind, result *scaffold.Result) {
	fmt.Printf("Created %s at %s\n", kind, result.Path)
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
