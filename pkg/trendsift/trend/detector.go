package trend

import "time"

// Detector bundles the clustering strategy and rendering assets for the
// full detect-and-render flow.
type Detector struct {
	Clusterer Clusterer
	Cloud     CloudConfig
}

// NewDetector creates a detector with k-means clustering and the given
// rendering assets.
func NewDetector(cloud CloudConfig) *Detector {
	return &Detector{Clusterer: KMeans{}, Cloud: cloud}
}

// Detect ranks the batch's frequency diff and extracts the trending
// prefix.
func (d *Detector) Detect(batch [][]string) ([]DiffEntry, error) {
	entries, err := FrequencyDiff(batch)
	if err != nil {
		return nil, err
	}
	return Trending(entries, d.Clusterer)
}

// Render writes the word cloud for a trending set and returns the file
// path.
func (d *Detector) Render(trending []DiffEntry, now time.Time) (string, error) {
	return RenderCloud(trending, d.Cloud, now)
}
