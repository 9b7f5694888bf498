package view

import (
	"math"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

const (
	// RadarBaseline is the raw value every axis starts from.
	RadarBaseline = 10.0
	// RadarCeiling is the fixed raw value that maps to 100. It is a
	// calibration constant, not the maximum reachable with a catalog.
	RadarCeiling = 150.0
)

// Radar computes the normalised radar statistics of an allocation.
// Scaling skills add weight * rank; keystones add their weight once.
// Each axis is reported as min(100, raw / RadarCeiling * 100).
func Radar(cat *catalog.Catalog, alloc domain.Allocation) domain.Radar {
	raw := RawRadar(cat, alloc)

	out := make(domain.Radar, len(raw))
	for stat, v := range raw {
		out[stat] = math.Min(100, v/RadarCeiling*100)
	}
	return out
}

// RawRadar returns the un-normalised axis values.
func RawRadar(cat *catalog.Catalog, alloc domain.Allocation) map[domain.Stat]float64 {
	raw := make(map[domain.Stat]float64, len(domain.Stats()))
	for _, stat := range domain.Stats() {
		raw[stat] = RadarBaseline
	}

	for _, s := range cat.Skills() {
		rank := alloc.Rank(s.ID)
		if rank <= 0 {
			continue
		}
		multiplier := float64(rank)
		if s.IsKeystone() {
			multiplier = 1
		}
		for stat, weight := range s.Stats {
			raw[stat] += weight * multiplier
		}
	}
	return raw
}
