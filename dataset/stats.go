package dataset

import (
	"sort"
	"strings"
)

// popularColorLimit caps how many top colors each level's stats report.
const popularColorLimit = 5

// ColorCount is one recommended color with its occurrence count across a
// level's rows.
type ColorCount struct {
	Color string `json:"color"`
	Count int    `json:"count"`
}

// LevelStats aggregates the dataset rows for one skin tone level.
type LevelStats struct {
	SkinToneLevel     int          `json:"skinToneLevel"`
	SkinToneName      string       `json:"skinToneName"`
	PopularColors     []ColorCount `json:"mostPopularColors"`
	TotalCombinations int          `json:"totalCombinations"`
}

// Stats groups the dataset by skin tone level and reports the most
// frequent recommended colors per level. Ties order by count descending,
// then color name ascending, so results are deterministic.
func Stats(rows []Row) []LevelStats {
	type levelAgg struct {
		name   string
		counts map[string]int
		total  int
	}

	byLevel := make(map[int]*levelAgg)
	var levels []int
	for _, row := range rows {
		agg, ok := byLevel[row.SkinToneLevel]
		if !ok {
			agg = &levelAgg{name: row.SkinToneName, counts: make(map[string]int)}
			byLevel[row.SkinToneLevel] = agg
			levels = append(levels, row.SkinToneLevel)
		}
		agg.total++
		for _, color := range strings.Split(row.UpperWearColors, ",") {
			color = strings.TrimSpace(color)
			if color != "" {
				agg.counts[color]++
			}
		}
	}
	sort.Ints(levels)

	stats := make([]LevelStats, 0, len(levels))
	for _, level := range levels {
		agg := byLevel[level]

		counts := make([]ColorCount, 0, len(agg.counts))
		for color, count := range agg.counts {
			counts = append(counts, ColorCount{Color: color, Count: count})
		}
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].Count != counts[j].Count {
				return counts[i].Count > counts[j].Count
			}
			return counts[i].Color < counts[j].Color
		})
		if len(counts) > popularColorLimit {
			counts = counts[:popularColorLimit]
		}

		stats = append(stats, LevelStats{
			SkinToneLevel:     level,
			SkinToneName:      agg.name,
			PopularColors:     counts,
			TotalCombinations: agg.total,
		})
	}

	return stats
}
