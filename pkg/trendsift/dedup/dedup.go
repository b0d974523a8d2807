// Package dedup removes near-duplicate articles from a batch by pairwise
// semantic comparison of their digests.
//
// The pass is split in two: an immutable similarity graph over digest
// indices is computed first (pairwise model calls fan out over a bounded
// worker pool), then a serial read pass selects the removal set. A removal
// that finds its target already removed is recorded as a skip, never an
// error.
package dedup

import (
	"context"
	"strings"
	"sync"

	"github.com/cognicore/trendsift/pkg/trendsift/semantic"
)

// DefaultThreshold is the similarity at or above which two digests count
// as near-duplicates.
const DefaultThreshold = 0.87

// DefaultWorkers bounds the similarity fan-out.
const DefaultWorkers = 4

// Options configures a deduplication pass.
type Options struct {
	// Threshold overrides DefaultThreshold when > 0.
	Threshold float64
	// Workers overrides DefaultWorkers when > 0.
	Workers int
}

// Edge is one near-duplicate pair in the similarity graph, I < J.
type Edge struct {
	I, J       int
	Similarity float64
}

// Removal records one removed digest and the pair that doomed it.
type Removal struct {
	Index      int
	PairedWith int
	Similarity float64
}

// Result of a deduplication pass over a batch of digests.
type Result struct {
	// Keep holds the surviving indices in input order.
	Keep []int
	// Removed holds the removal decisions in pair order.
	Removed []Removal
	// Skipped counts near-duplicate pairs whose removal candidate was
	// already gone when the pair was reached.
	Skipped int
	// Edges is the full near-duplicate graph, in pair order.
	Edges []Edge
}

// Dedupe compares every unordered digest pair and removes near-duplicates.
// For each pair over threshold the digest with the longer sequence is the
// removal candidate; equal lengths retain the lexicographically first
// digest. Survivor order follows input order. Cost is O(n²) similarity
// calls, acceptable for batches of tens to low hundreds of articles.
func Dedupe(ctx context.Context, digests [][]string, model semantic.Model, opts Options) (Result, error) {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	edges, err := similarityGraph(ctx, digests, model, threshold, opts.Workers)
	if err != nil {
		return Result{}, err
	}

	res := Result{Edges: edges}
	removed := make([]bool, len(digests))

	for _, e := range edges {
		candidate := candidateIndex(digests, e.I, e.J)
		if removed[candidate] {
			res.Skipped++
			continue
		}
		removed[candidate] = true
		partner := e.I
		if candidate == e.I {
			partner = e.J
		}
		res.Removed = append(res.Removed, Removal{
			Index:      candidate,
			PairedWith: partner,
			Similarity: e.Similarity,
		})
	}

	for i := range digests {
		if !removed[i] {
			res.Keep = append(res.Keep, i)
		}
	}
	return res, nil
}

// candidateIndex picks which side of a near-duplicate pair to remove: the
// longer digest loses; on equal length the lexicographically later digest
// loses, so the first-sorting digest is always retained.
func candidateIndex(digests [][]string, i, j int) int {
	di, dj := digests[i], digests[j]
	switch {
	case len(di) > len(dj):
		return i
	case len(dj) > len(di):
		return j
	}
	if strings.Join(di, " ") <= strings.Join(dj, " ") {
		return j
	}
	return i
}

// similarityGraph computes all pairwise similarities at or above threshold.
// Model calls run concurrently; the returned edge list is in deterministic
// pair order regardless of scheduling.
func similarityGraph(ctx context.Context, digests [][]string, model semantic.Model, threshold float64, workers int) ([]Edge, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	type pair struct {
		i, j int
	}
	var pairs []pair
	for i := 0; i < len(digests); i++ {
		for j := i + 1; j < len(digests); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	sims := make([]float64, len(pairs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				p := pairs[idx]
				sim, err := model.Similarity(ctx, digests[p.i], digests[p.j])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				sims[idx] = sim
			}
		}()
	}

	for idx := range pairs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	var edges []Edge
	for idx, p := range pairs {
		if sims[idx] >= threshold {
			edges = append(edges, Edge{I: p.i, J: p.j, Similarity: sims[idx]})
		}
	}
	return edges, nil
}
