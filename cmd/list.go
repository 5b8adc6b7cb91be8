package cmd

import (
	"fmt"
	"io"

	"ewintr.nl/ytcatalog/filter"
	"ewintr.nl/ytcatalog/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the projects in the catalog",
	Example: `  ytcatalog list --channel "Dev Channel" --difficulty beginner
  ytcatalog list --min-hours 2 --max-hours "5-10 hours" --tech "go react"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := filterState(cmd)
		if err != nil {
			return err
		}
		session, err := newSession(cmd.Context(), nil)
		if err != nil {
			return err
		}
		session.SetFilters(state)
		printProjects(cmd.OutOrStdout(), session.Displayed(), len(session.Records()))

		return nil
	},
}

func init() {
	addFilterFlags(listCmd)
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Only show projects with exactly this video name")
	cmd.Flags().String("channel", "", "Only show projects from exactly this channel")
	cmd.Flags().Float64("min-hours", 0, "Minimum length in hours")
	cmd.Flags().String("max-hours", "", `Length range: "0-5 hours", "5-10 hours" or "Above 10 hours"`)
	cmd.Flags().String("tech", "", "Space separated keywords, any of which must occur in the tech stack")
	cmd.Flags().String("difficulty", "", "Beginner, Intermediate or Advanced")
}

func filterState(cmd *cobra.Command) (filter.State, error) {
	flags := cmd.Flags()
	name, _ := flags.GetString("name")
	channel, _ := flags.GetString("channel")
	minHours, _ := flags.GetFloat64("min-hours")
	maxHours, _ := flags.GetString("max-hours")
	tech, _ := flags.GetString("tech")
	difficulty, _ := flags.GetString("difficulty")

	if minHours < 0 {
		return filter.State{}, fmt.Errorf("--min-hours must not be negative")
	}
	bucket, err := filter.ParseBucket(maxHours)
	if err != nil {
		return filter.State{}, err
	}
	level, err := model.ParseDifficulty(difficulty)
	if err != nil {
		return filter.State{}, err
	}

	return filter.State{
		VideoName:      name,
		YoutubeChannel: channel,
		MinHours:       minHours,
		MaxHoursBucket: bucket,
		TechStack:      tech,
		Difficulty:     level,
	}, nil
}

func printProjects(w io.Writer, projects []model.Project, total int) {
	if len(projects) == 0 {
		fmt.Fprintf(w, "No projects match (%d in catalog)\n", total)
		return
	}
	fmt.Fprintln(w, renderProjects(projects))
	fmt.Fprintf(w, "%d of %d projects\n", len(projects), total)
}
