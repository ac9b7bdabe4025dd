package models

import (
	"github.com/google/uuid"

	"github.com/chromatone/api/skintone"
)

// AnalyzeRequest carries the sampled colors for one analysis call, each a
// "#RRGGBB" hex string.
type AnalyzeRequest struct {
	Colors []string `json:"colors"`
}

// ToneAnalysisResponse is the API shape of one completed analysis.
type ToneAnalysisResponse struct {
	AnalysisID           string   `json:"analysisId"`
	SkinToneLevel        int      `json:"skinToneLevel"`
	SkinToneName         string   `json:"skinToneName"`
	UndertoneType        string   `json:"undertoneType"`
	UndertoneDescription string   `json:"undertoneDescription"`
	Hue                  float64  `json:"hue"`
	Lightness            float64  `json:"lightness"`
	RecommendedColors    []string `json:"recommendedColors"`
	OutfitExamples       []string `json:"outfitExamples"`
}

// NewToneAnalysisResponse assembles the response for a classification,
// attaching the undertone's recommendations and a fresh analysis key.
func NewToneAnalysisResponse(analysis skintone.Analysis) (ToneAnalysisResponse, error) {
	colors, err := skintone.RecommendedColors(analysis.Undertone)
	if err != nil {
		return ToneAnalysisResponse{}, err
	}

	outfits, err := skintone.OutfitExamples(analysis.Undertone)
	if err != nil {
		return ToneAnalysisResponse{}, err
	}

	return ToneAnalysisResponse{
		AnalysisID:           uuid.New().String(),
		SkinToneLevel:        analysis.Level,
		SkinToneName:         analysis.LevelName,
		UndertoneType:        analysis.UndertoneType,
		UndertoneDescription: analysis.UndertoneDesc,
		Hue:                  analysis.Hue,
		Lightness:            analysis.Lightness,
		RecommendedColors:    colors,
		OutfitExamples:       outfits,
	}, nil
}

// RecommendationResponse is the API shape of a recommendation lookup.
type RecommendationResponse struct {
	UndertoneType     string   `json:"undertoneType"`
	Description       string   `json:"description"`
	RecommendedColors []string `json:"recommendedColors"`
	OutfitExamples    []string `json:"outfitExamples"`
}
