package cmd

import (
	"strings"

	"ewintr.nl/ytcatalog/duration"
	"ewintr.nl/ytcatalog/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderProjects(projects []model.Project) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Video", "Channel", "Length", "Tech stack", "Difficulty", "Link"})
	for _, p := range projects {
		tw.AppendRow(table.Row{
			p.VideoName,
			p.YoutubeChannel,
			duration.Format(p.LengthInHours),
			strings.Join(p.TechStack, ", "),
			string(p.Difficulty),
			p.Link,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, WidthMax: 40},
	})

	return tw.Render()
}

func renderList(title string, values []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{title})
	for _, v := range values {
		tw.AppendRow(table.Row{v})
	}

	return tw.Render()
}
