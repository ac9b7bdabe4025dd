package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chromatone/api/colorspace"
	"github.com/chromatone/api/dataset"
	"github.com/chromatone/api/models"
	"github.com/chromatone/api/skintone"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ChromaTone API")
}

// POST /v1/analyze - Classify sampled colors into a tone analysis
func (app *Application) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	analyzeReq := &models.AnalyzeRequest{}
	if err := json.NewDecoder(r.Body).Decode(analyzeReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	analysis, err := skintone.ClassifyHex(analyzeReq.Colors)
	if err != nil {
		var formatErr colorspace.InvalidColorFormatError
		if errors.Is(err, skintone.ErrNoSamples) || errors.As(err, &formatErr) {
			app.badRequest(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response, err := models.NewToneAnalysisResponse(analysis)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// GET /v1/tones/scale - Get the 10-level skin tone reference scale
func (app *Application) getToneScale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(skintone.Scale)
}

// GET /v1/tones/undertones - Get the undertone reference profiles
func (app *Application) getUndertones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(skintone.Profiles())
}

// GET /v1/recommendations?undertone=warm|cool|neutral
func (app *Application) getRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	undertone, err := skintone.ParseUndertone(r.URL.Query().Get("undertone"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	profile, err := skintone.GetProfile(undertone)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	outfits, err := skintone.OutfitExamples(undertone)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := models.RecommendationResponse{
		UndertoneType:     undertone.String(),
		Description:       profile.Description,
		RecommendedColors: profile.Colors,
		OutfitExamples:    outfits,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// GET /v1/dataset - Get the full 10x3 recommendation dataset
func (app *Application) getDataset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	rows, err := dataset.Build()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(rows)
}

// GET /v1/dataset/stats - Get per-level aggregate statistics
func (app *Application) getDatasetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	rows, err := dataset.Build()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dataset.Stats(rows))
}
