package fetcher

import (
	"context"
	"fmt"

	"ewintr.nl/ytcatalog/model"
	"google.golang.org/api/youtube/v3"
)

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

// FetchVideo looks up title, channel, duration and description for a single
// video. An unknown id results in model.ErrNotFound, any other failure in a
// *model.ProviderError.
func (y *Youtube) FetchVideo(ctx context.Context, ytID model.YoutubeVideoID) (model.VideoDetail, error) {
	call := y.Client.Videos.
		List([]string{"snippet,contentDetails"}).
		Id(string(ytID)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return model.VideoDetail{}, &model.ProviderError{VideoID: ytID, Err: err}
	}

	for _, item := range response.Items {
		if item.Snippet == nil {
			return model.VideoDetail{}, &model.ProviderError{VideoID: ytID, Err: fmt.Errorf("response item %s has no snippet", item.Id)}
		}
		md := model.VideoDetail{
			ID:           ytID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
		}
		if item.ContentDetails != nil {
			md.Duration = item.ContentDetails.Duration
		}

		return md, nil
	}

	return model.VideoDetail{}, fmt.Errorf("%w: %s", model.ErrNotFound, ytID)
}
