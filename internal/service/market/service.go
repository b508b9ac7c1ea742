// Package market turns the flat append-only price log into caller-facing
// views: latest-per-quality groupings, per-crop listings and history.
package market

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/akilima/akilima/internal/domain/apperr"
	"github.com/akilima/akilima/internal/domain/models"
	"github.com/akilima/akilima/internal/repository/mongodb"
)

const (
	defaultLatestLimit  = 10
	defaultHistoryLimit = 30
)

// Service exposes the market price operations.
type Service struct {
	repo       mongodb.PriceRepository
	validCrops map[string]struct{}
	logger     *zap.Logger
	now        func() time.Time
}

// NewService wires a new market service. validCrops is the closed crop
// enumeration submissions are checked against.
func NewService(repo mongodb.PriceRepository, validCrops []string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	crops := make(map[string]struct{}, len(validCrops))
	for _, crop := range validCrops {
		crops[strings.ToLower(crop)] = struct{}{}
	}

	return &Service{
		repo:       repo,
		validCrops: crops,
		logger:     logger,
		now:        time.Now,
	}
}

// GroupLatestByQuality reduces a newest-first record stream to at most one
// record per (crop, quality) pair, keeping the first record encountered for
// each pair. Scanning newest-first makes that the most recent price per
// quality tier. The input is not modified.
func GroupLatestByQuality(records []models.MarketPrice) map[string][]models.MarketPrice {
	grouped := make(map[string][]models.MarketPrice)

	for _, record := range records {
		seen := false
		for _, kept := range grouped[record.Crop] {
			if kept.Quality == record.Quality {
				seen = true
				break
			}
		}
		if !seen {
			grouped[record.Crop] = append(grouped[record.Crop], record)
		}
	}

	return grouped
}

// Grouped returns the latest price per quality tier for every crop.
func (s *Service) Grouped(ctx context.Context) (map[string][]models.MarketPrice, error) {
	records, err := s.repo.FindAllSorted(ctx)
	if err != nil {
		return nil, err
	}
	return GroupLatestByQuality(records), nil
}

// Latest returns the most recent records for one crop across all quality
// tiers. A crop with no records at all is a NotFound.
func (s *Service) Latest(ctx context.Context, crop string) ([]models.MarketPrice, error) {
	prices, err := s.repo.FindByCrop(ctx, strings.ToLower(crop), defaultLatestLimit)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("no prices for %s: %w", crop, apperr.ErrNotFound)
	}
	return prices, nil
}

// History returns up to limit records for one crop, newest-first. An empty
// result is valid here: unknown crops and crops without data are not told
// apart.
func (s *Service) History(ctx context.Context, crop string, limit int64) ([]models.MarketPrice, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	prices, err := s.repo.FindByCrop(ctx, strings.ToLower(crop), limit)
	if err != nil {
		return nil, err
	}
	if prices == nil {
		prices = []models.MarketPrice{}
	}
	return prices, nil
}

// Submit validates and appends a new price record attributed to the submitter
// and the current time. Quality and market fall back to regional defaults.
func (s *Service) Submit(ctx context.Context, req models.SubmitPriceRequest, submitter primitive.ObjectID) (models.MarketPrice, error) {
	crop := strings.ToLower(strings.TrimSpace(req.Crop))

	switch {
	case crop == "":
		return models.MarketPrice{}, fmt.Errorf("crop is required: %w", apperr.ErrValidation)
	case req.PricePerKg <= 0:
		return models.MarketPrice{}, fmt.Errorf("pricePerKg must be a positive number: %w", apperr.ErrValidation)
	}

	if _, ok := s.validCrops[crop]; !ok {
		return models.MarketPrice{}, fmt.Errorf("unknown crop %q: %w", crop, apperr.ErrValidation)
	}

	quality := req.Quality
	if quality == "" {
		quality = models.QualityStandard
	}
	switch quality {
	case models.QualityPremium, models.QualityStandard, models.QualityLow:
	default:
		return models.MarketPrice{}, fmt.Errorf("unknown quality %q: %w", quality, apperr.ErrValidation)
	}

	marketName := req.Market
	if marketName == "" {
		marketName = models.DefaultMarket
	}

	record := models.MarketPrice{
		Crop:       crop,
		PricePerKg: req.PricePerKg,
		Unit:       models.DefaultUnit,
		Market:     marketName,
		Quality:    quality,
		UpdatedBy:  submitter,
		Date:       s.now(),
	}

	created, err := s.repo.Insert(ctx, record)
	if err != nil {
		return models.MarketPrice{}, err
	}

	s.logger.Info("price record submitted",
		zap.String("crop", created.Crop),
		zap.Float64("pricePerKg", created.PricePerKg),
		zap.String("quality", created.Quality))

	return created, nil
}

// Remove hard-deletes one record by identity. Ids that cannot name an
// existing record, including malformed ones, are a NotFound.
func (s *Service) Remove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("price record %q: %w", id, apperr.ErrNotFound)
	}
	return s.repo.DeleteByID(ctx, oid)
}
