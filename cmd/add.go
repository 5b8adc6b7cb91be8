package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ewintr.nl/ytcatalog/catalog"
	"ewintr.nl/ytcatalog/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <youtube url>...",
	Short: "Add YouTube videos to the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		override, err := model.ParseDifficulty(difficulty)
		if err != nil {
			return err
		}
		pipeline, err := newPipeline(cmd.Context())
		if err != nil {
			return err
		}
		session, err := newSession(cmd.Context(), pipeline)
		if err != nil {
			return err
		}

		return addProjects(cmd.Context(), cmd.OutOrStdout(), session, args, override)
	},
}

func init() {
	addCmd.Flags().String("difficulty", "", "Use this difficulty instead of the derived one")
}

// addProjects adds every url and reports on each. Duplicates are not
// counted as failures.
func addProjects(ctx context.Context, w io.Writer, session *catalog.Session, urls []string, override model.Difficulty) error {
	var failed int
	for _, u := range urls {
		project, err := session.Add(ctx, u, override)
		switch {
		case err == nil:
			fmt.Fprintf(w, "added %q by %s (%s, %s)\n", project.VideoName, project.YoutubeChannel, project.Difficulty, project.Link)
		case errors.Is(err, model.ErrDuplicate):
			fmt.Fprintf(w, "skipped %s: already in the catalog\n", u)
		case errors.Is(err, model.ErrInvalidURL):
			failed++
			fmt.Fprintf(w, "failed %s: not a youtube video url\n", u)
		case errors.Is(err, model.ErrNotFound):
			failed++
			fmt.Fprintf(w, "failed %s: video not found\n", u)
		default:
			failed++
			fmt.Fprintf(w, "failed %s: %v\n", u, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d urls could not be added", failed, len(urls))
	}

	return nil
}
