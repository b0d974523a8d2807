// Package batch loads time-ordered article batches from JSONL files, the
// handoff format between the orchestrating bot and the pipeline.
package batch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cognicore/trendsift/pkg/trendsift"
)

// Item is one raw article row.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	Text        string    `json:"text"`
}

// LoadJSONL reads articles from a JSONL file, skipping malformed lines
// with a warning. Rows are returned in published-at order so the trend
// detector's old/new split stays meaningful.
func LoadJSONL(path string) ([]trendsift.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch %s: %w", path, err)
	}

	var items []Item
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var item Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			slog.Warn("skipping malformed batch line", "path", path, "line", i+1, "err", err)
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no valid articles in %s", path)
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].PublishedAt.Before(items[b].PublishedAt)
	})

	articles := make([]trendsift.Article, len(items))
	for i, item := range items {
		articles[i] = trendsift.Article{
			ID:          item.ID,
			PublishedAt: item.PublishedAt,
			Text:        item.Text,
		}
	}
	return articles, nil
}
