package dataset

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCrossProduct(t *testing.T) {
	rows, err := Build()
	require.NoError(t, err)
	require.Len(t, rows, 30)

	seen := make(map[string]bool)
	for _, row := range rows {
		assert.NotEmpty(t, row.SkinToneName)
		assert.GreaterOrEqual(t, row.SkinToneLevel, 1)
		assert.LessOrEqual(t, row.SkinToneLevel, 10)
		assert.Contains(t, []string{"warm", "cool", "neutral"}, row.UndertoneType)

		assert.Len(t, strings.Split(row.UpperWearColors, ", "), 10)
		assert.Len(t, strings.Split(row.ExampleOutfitIdeas, " | "), 2)

		key := row.SkinToneName + "/" + row.UndertoneType
		assert.False(t, seen[key], "duplicate combination %s", key)
		seen[key] = true
	}
	assert.Len(t, seen, 30)
}

func TestBuildIsDeterministic(t *testing.T) {
	first, err := Build()
	require.NoError(t, err)
	second, err := Build()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStats(t *testing.T) {
	rows, err := Build()
	require.NoError(t, err)

	stats := Stats(rows)
	require.Len(t, stats, 10)

	for i, levelStats := range stats {
		assert.Equal(t, i+1, levelStats.SkinToneLevel)
		assert.NotEmpty(t, levelStats.SkinToneName)
		assert.Equal(t, 3, levelStats.TotalCombinations)
		// 30 distinct colors per level, each seen once; capped at top 5
		require.Len(t, levelStats.PopularColors, 5)
		for _, count := range levelStats.PopularColors {
			assert.Equal(t, 1, count.Count)
		}
	}

	// all counts are 1, so the tie-break sorts by name
	names := make([]string, 0, 5)
	for _, count := range stats[0].PopularColors {
		names = append(names, count.Color)
	}
	assert.IsNonDecreasing(t, names)
}

func TestStatsCountsRepeatedColors(t *testing.T) {
	rows := []Row{
		{SkinToneName: "Tan", SkinToneLevel: 6, UndertoneType: "warm", UpperWearColors: "Camel, Terracotta"},
		{SkinToneName: "Tan", SkinToneLevel: 6, UndertoneType: "cool", UpperWearColors: "Camel, Navy Blue"},
	}

	stats := Stats(rows)
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].TotalCombinations)
	require.NotEmpty(t, stats[0].PopularColors)
	assert.Equal(t, ColorCount{Color: "Camel", Count: 2}, stats[0].PopularColors[0])
}

func TestWriteCSV(t *testing.T) {
	rows, err := Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 31)

	assert.Equal(t, []string{
		"Skin_Tone_Name", "Skin_Tone_Level", "Undertone_Type",
		"Upper_Wear_Colors", "Example_Outfit_Ideas",
	}, records[0])

	first := records[1]
	assert.Equal(t, "Porcelain", first[0])
	assert.Equal(t, "1", first[1])
	assert.Equal(t, "warm", first[2])
	assert.Len(t, strings.Split(first[3], ", "), 10)
	assert.Len(t, strings.Split(first[4], " | "), 2)
}
