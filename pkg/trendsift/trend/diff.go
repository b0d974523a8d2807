// Package trend surfaces emerging terms in a time-ordered batch of
// tokenized articles. The batch splits into an old and a new half, per-term
// frequencies are diffed, clustering over the diff distribution finds the
// boundary of the trending prefix, and a frequency-weighted word cloud is
// rendered over it.
package trend

import (
	"fmt"
	"sort"

	"github.com/cognicore/trendsift/pkg/trendsift/internalerr"
)

// MinBatch is the minimum number of articles for a meaningful trend split.
const MinBatch = 20

// DiffEntry is one term with its new-minus-old frequency difference.
type DiffEntry struct {
	Term string
	Diff int
}

// FrequencyDiff splits the batch at its midpoint, counts tokens per half
// and returns per-term (new − old) differences sorted descending. The new
// half is trimmed to an even length, dropping its leading article when
// odd, so the diff stays symmetric. Ties keep first-seen counting order,
// which makes the downstream boundary scan deterministic.
//
// The batch must be in time order: index 0 oldest.
func FrequencyDiff(batch [][]string) ([]DiffEntry, error) {
	if len(batch) < MinBatch {
		return nil, fmt.Errorf("%w: %d articles, need at least %d to find trends",
			internalerr.ErrBatchTooShort, len(batch), MinBatch)
	}

	half := len(batch) / 2
	oldHalf := batch[:half]
	newLen := half - half%2
	newHalf := batch[len(batch)-newLen:]

	diffs := make(map[string]int)
	var order []string

	for _, article := range newHalf {
		for _, tok := range article {
			if tok == "" {
				continue
			}
			if _, seen := diffs[tok]; !seen {
				order = append(order, tok)
			}
			diffs[tok]++
		}
	}
	for _, article := range oldHalf {
		for _, tok := range article {
			if tok == "" {
				continue
			}
			if _, seen := diffs[tok]; !seen {
				order = append(order, tok)
			}
			diffs[tok]--
		}
	}

	entries := make([]DiffEntry, len(order))
	for i, term := range order {
		entries[i] = DiffEntry{Term: term, Diff: diffs[term]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Diff > entries[j].Diff
	})

	return entries, nil
}
