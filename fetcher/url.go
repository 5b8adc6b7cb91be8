package fetcher

import (
	"net/url"
	"regexp"
	"strings"

	"ewintr.nl/ytcatalog/model"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ExtractVideoID returns the video identifier from a YouTube watch URL
// (youtube.com/...?v=<id>, v may appear anywhere in the query) or a short
// link (youtu.be/<id>). The scheme and www. prefix are optional. ok is false
// for anything else.
func ExtractVideoID(raw string) (model.YoutubeVideoID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	// a scheme can only appear before the first path, query or fragment
	// delimiter
	if i := strings.IndexAny(raw, "/?#"); i <= 0 || raw[i-1] != ':' {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}

	var id string
	host := strings.ToLower(u.Hostname())
	switch {
	case host == "youtu.be" || host == "www.youtu.be":
		id, _, _ = strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		id = u.Query().Get("v")
	default:
		return "", false
	}

	if !videoIDPattern.MatchString(id) {
		return "", false
	}

	return model.YoutubeVideoID(id), true
}
