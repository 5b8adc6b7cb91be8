package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Show the values that can be used as list filters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession(cmd.Context(), nil)
		if err != nil {
			return err
		}
		f := session.Facets()
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, renderList("Video names", f.VideoNames))
		fmt.Fprintln(w, renderList("Channels", f.Channels))
		fmt.Fprintln(w, renderList("Tech stack", f.TechStack))

		return nil
	},
}
