package process

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed keywords.json
var defaultKeywords []byte

type keywordFile struct {
	Keywords []string `json:"keywords"`
}

// LoadKeywords reads the tech stack keyword list from a JSON file of the
// form {"keywords": [...]}. An empty path returns the built-in list.
func LoadKeywords(path string) ([]string, error) {
	data := defaultKeywords
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read keywords file: %w", err)
		}
	}

	var kf keywordFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse keywords: %w", err)
	}

	return kf.Keywords, nil
}

// MatchKeywords returns the keywords that occur in text, ignoring case. The
// result keeps the order of keywords and is never nil.
func MatchKeywords(text string, keywords []string) []string {
	text = strings.ToLower(text)
	seen := make(map[string]bool, len(keywords))
	matched := []string{}
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		lower := strings.ToLower(keyword)
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		if strings.Contains(text, lower) {
			matched = append(matched, keyword)
		}
	}

	return matched
}
