package model

type YoutubeVideoID string

// VideoDetail is the raw result of a metadata lookup for a single video.
type VideoDetail struct {
	ID           YoutubeVideoID
	Title        string
	ChannelTitle string
	Duration     string
	Description  string
}
