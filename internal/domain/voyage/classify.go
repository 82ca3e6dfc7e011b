package voyage

import (
	"time"

	"shiplog/internal/domain/entity"
)

// DefaultLandRatioThreshold is the fraction of water-tagged entries reporting
// land above which a voyage is classified as land activity. The threshold
// tolerates GPS jitter near shorelines without discarding short coastal hops
// or counting long drives.
const DefaultLandRatioThreshold = 0.6

// IsMaritime decides whether a voyage represents a real maritime passage
// rather than a land-based GPS artifact.
//
// Only entries carrying a defined on-water signal vote. A voyage with no
// tagged entries is classified maritime: absence of evidence is not evidence
// of a land track.
func IsMaritime(group *entity.VoyageGroup, landRatioThreshold float64) bool {
	var tagged, land int
	for _, entry := range group.Entries {
		if entry.IsOnWater == nil {
			continue
		}
		tagged++
		if !*entry.IsOnWater {
			land++
		}
	}

	if tagged == 0 {
		return true
	}

	return float64(land)/float64(tagged) < landRatioThreshold
}

// ComputeCareerTotals aggregates maritime-classified voyages across the
// user's entire history, active and archived. Voyages whose entries come
// from GPX imports or the community feed never count; a voyage is attributed
// to the effective source of its newest entry.
//
// Career distance accumulates the maximum cumulative-distance value seen in
// each included voyage. Career time accumulates the span between each
// included voyage's earliest and latest entry; voyages with fewer than two
// entries contribute zero time.
func ComputeCareerTotals(groups []*entity.VoyageGroup, landRatioThreshold float64) entity.CareerTotals {
	totals := entity.CareerTotals{}

	for _, group := range groups {
		if len(group.Entries) == 0 {
			continue
		}
		if !group.Entries[0].EffectiveSource().CountsForCareer() {
			continue
		}
		if !IsMaritime(group, landRatioThreshold) {
			totals.ExcludedVoyages++

			continue
		}

		totals.VoyageCount++
		totals.DistanceNM += maxCumulativeDistanceNM(group.Entries)
		if len(group.Entries) >= 2 {
			totals.TimeUnderway += entrySpan(group.Entries)
		}
	}

	return totals
}

func entrySpan(entries []*entity.LogEntry) time.Duration {
	earliest, latest := entries[0].Timestamp, entries[0].Timestamp
	for _, entry := range entries[1:] {
		if entry.Timestamp.Before(earliest) {
			earliest = entry.Timestamp
		}
		if entry.Timestamp.After(latest) {
			latest = entry.Timestamp
		}
	}

	return latest.Sub(earliest)
}

func maxCumulativeDistanceNM(entries []*entity.LogEntry) float64 {
	var maxNM float64
	for _, entry := range entries {
		if entry.CumulativeDistanceNM != nil && *entry.CumulativeDistanceNM > maxNM {
			maxNM = *entry.CumulativeDistanceNM
		}
	}

	return maxNM
}
