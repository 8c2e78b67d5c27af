package derive

import (
	"math"
	"time"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/model"
	"github.com/Nomet5/cake-app-sub003/internal/product/dto"
)

// Options holds the fixed thresholds and placeholder texts used when shaping
// product views. They stand in for features that do not exist yet.
type Options struct {
	DefaultRating       float64
	PopularThreshold    int
	NewWindow           time.Duration
	DescriptionFallback string
	CategoryFallback    string
	ChefFallback        string
}

func DefaultOptions() Options {
	return Options{
		DefaultRating:       4.5,
		PopularThreshold:    5,
		NewWindow:           7 * 24 * time.Hour,
		DescriptionFallback: "Описание отсутствует",
		CategoryFallback:    "Без категории",
		ChefFallback:        "Домашний пекарь",
	}
}

type Engine struct {
	opts Options
	now  func() time.Time
}

func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts, now: time.Now}
}

// Derive shapes one record at the current time.
func (e *Engine) Derive(rec model.ProductRecord) (dto.ProductView, []apperr.DerivationWarning) {
	return e.DeriveAt(rec, e.now())
}

// DeriveAt shapes one record as of now. Missing relations produce fallbacks and
// a warning each; the record itself is never dropped and never modified.
func (e *Engine) DeriveAt(rec model.ProductRecord, now time.Time) (dto.ProductView, []apperr.DerivationWarning) {
	var warnings []apperr.DerivationWarning
	fallback := func(field, text string) string {
		warnings = append(warnings, apperr.DerivationWarning{ProductID: rec.ID, Field: field, Fallback: text})
		return text
	}

	view := dto.ProductView{
		ID:        rec.ID,
		Name:      rec.Name,
		Price:     rec.Price,
		Image:     PrimaryImage(rec.Images),
		Rating:    AverageRating(rec.Ratings, e.opts.DefaultRating),
		Reviews:   rec.ReviewCount,
		IsPopular: rec.OrderItemCount > e.opts.PopularThreshold,
		IsNew:     rec.CreatedAt.After(now.Add(-e.opts.NewWindow)),
		CreatedAt: rec.CreatedAt,
	}

	// A count lower than the joined ratings means the counters were read from a
	// different snapshot; trust the ratings we actually have.
	if view.Reviews < len(rec.Ratings) {
		view.Reviews = len(rec.Ratings)
	}

	// An absent description is the common case, not a broken relation.
	if rec.Description != nil && *rec.Description != "" {
		view.Description = *rec.Description
	} else {
		view.Description = e.opts.DescriptionFallback
	}

	if rec.CategoryName != nil && *rec.CategoryName != "" {
		view.Category = *rec.CategoryName
	} else if rec.CategoryID != nil {
		view.Category = fallback("category", e.opts.CategoryFallback)
	} else {
		view.Category = e.opts.CategoryFallback
	}

	if rec.ChefName != nil && *rec.ChefName != "" {
		view.Chef = *rec.ChefName
	} else {
		view.Chef = fallback("chef", e.opts.ChefFallback)
	}
	if rec.ChefFirstName != nil {
		view.ChefName = *rec.ChefFirstName
	}

	return view, warnings
}

// AverageRating is the mean rounded to one decimal, or def when there are no
// ratings.
func AverageRating(ratings []int, def float64) float64 {
	if len(ratings) == 0 {
		return def
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return Round1(float64(sum) / float64(len(ratings)))
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PrimaryImage returns the URL of the first image flagged primary.
func PrimaryImage(images []model.ProductImage) *string {
	for _, img := range images {
		if img.IsPrimary {
			url := img.URL
			return &url
		}
	}
	return nil
}
