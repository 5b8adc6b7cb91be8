package fetcher

import (
	"context"

	"ewintr.nl/ytcatalog/model"
)

type MetadataFetcher interface {
	FetchVideo(ctx context.Context, ytID model.YoutubeVideoID) (model.VideoDetail, error)
}
