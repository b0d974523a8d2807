package trend

import (
	"fmt"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// trendClusters is the fixed number of clusters over the diff
// distribution: roughly "trending", "flat" and "fading".
const trendClusters = 3

// Clusterer assigns one of k labels to each value of a 1-D distribution.
// Labels are arbitrary identifiers; only changes between adjacent ranked
// positions matter to the boundary scan.
type Clusterer interface {
	Labels(values []float64, k int) ([]int, error)
}

// KMeans clusters with Lloyd's algorithm. Centroid seeding is randomized,
// so exact cluster membership can vary between runs on ambiguous data;
// the boundary scan only relies on well-separated groups.
type KMeans struct{}

// Labels partitions the values into k clusters and maps every value to
// its nearest cluster index.
func (KMeans) Labels(values []float64, k int) ([]int, error) {
	if len(values) < k {
		return nil, fmt.Errorf("cluster %d values into %d clusters", len(values), k)
	}

	var obs clusters.Observations
	for _, v := range values {
		obs = append(obs, clusters.Coordinates{v})
	}

	km := kmeans.New()
	partition, err := km.Partition(obs, k)
	if err != nil {
		return nil, fmt.Errorf("kmeans partition: %w", err)
	}

	labels := make([]int, len(values))
	for i, v := range values {
		labels[i] = partition.Nearest(clusters.Coordinates{v})
	}
	return labels, nil
}

// Trending returns the prefix of the ranked diff list that forms the top
// cluster: every entry before the first position whose label differs from
// its predecessor's. No label change across the whole list yields an empty
// set — with fewer than three distinct diff levels the clustering cannot
// separate a trending group.
func Trending(entries []DiffEntry, clusterer Clusterer) ([]DiffEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Diff)
	}

	labels, err := clusterer.Labels(values, trendClusters)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(labels); i++ {
		if labels[i] != labels[i-1] {
			return entries[:i], nil
		}
	}
	return nil, nil
}
