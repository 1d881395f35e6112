package music

import (
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/zmb3/spotify/v2"
)

// numClusters is the number of groups candidate tracks are partitioned
// into before picking the one closest to the mood target.
const numClusters = 3

// candidate pairs a track with the audio features used for clustering.
type candidate struct {
	track   spotify.SimpleTrack
	energy  float64
	valence float64
}

// candidateObservation wraps a candidate to implement clusters.Observation.
type candidateObservation struct {
	index  int
	coords clusters.Coordinates
}

func (o candidateObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o candidateObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// selectByMood partitions candidates by energy and valence and returns up to
// limit tracks from the cluster nearest the mood target, topping up from the
// remainder in original order. Falls back to the first candidates when there
// are too few to cluster or partitioning fails.
func selectByMood(candidates []candidate, targetEnergy, targetValence float64, limit int) []candidate {
	if limit <= 0 {
		return nil
	}
	if len(candidates) <= limit || len(candidates) < numClusters {
		return capCandidates(candidates, limit)
	}

	var obs clusters.Observations
	for i, c := range candidates {
		obs = append(obs, candidateObservation{
			index:  i,
			coords: clusters.Coordinates{c.energy, c.valence},
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, numClusters)
	if err != nil {
		return capCandidates(candidates, limit)
	}

	centers := make([]clusters.Coordinates, len(result))
	for i, cluster := range result {
		centers[i] = clusters.Coordinates(cluster.Center)
	}
	best := closestIndex(centers, clusters.Coordinates{targetEnergy, targetValence})

	picked := make(map[int]bool)
	var selected []candidate
	for _, o := range result[best].Observations {
		co, ok := o.(candidateObservation)
		if !ok {
			continue
		}
		selected = append(selected, candidates[co.index])
		picked[co.index] = true
		if len(selected) == limit {
			return selected
		}
	}

	// Cluster smaller than limit: top up from the rest in original order.
	for i, c := range candidates {
		if picked[i] {
			continue
		}
		selected = append(selected, c)
		if len(selected) == limit {
			break
		}
	}
	return selected
}

// closestIndex returns the index of the center nearest the target point.
func closestIndex(centers []clusters.Coordinates, target clusters.Coordinates) int {
	best := 0
	bestDist := centers[0].Distance(target)
	for i := 1; i < len(centers); i++ {
		if d := centers[i].Distance(target); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func capCandidates(cands []candidate, n int) []candidate {
	if len(cands) > n {
		return cands[:n]
	}
	return cands
}
