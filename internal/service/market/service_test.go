package market

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akilima/akilima/internal/domain/apperr"
	"github.com/akilima/akilima/internal/domain/models"
)

var testCrops = []string{"tea", "coffee", "bananas", "avocados"}

// fakePriceRepo keeps records in memory, newest-first like the real queries.
type fakePriceRepo struct {
	records []models.MarketPrice
}

func (f *fakePriceRepo) FindAllSorted(_ context.Context) ([]models.MarketPrice, error) {
	out := make([]models.MarketPrice, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakePriceRepo) FindByCrop(_ context.Context, crop string, limit int64) ([]models.MarketPrice, error) {
	var out []models.MarketPrice
	for _, record := range f.records {
		if record.Crop == crop {
			out = append(out, record)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakePriceRepo) Insert(_ context.Context, price models.MarketPrice) (models.MarketPrice, error) {
	price.ID = primitive.NewObjectID()
	f.records = append([]models.MarketPrice{price}, f.records...)
	return price, nil
}

func (f *fakePriceRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	for i, record := range f.records {
		if record.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func priceRecord(crop, quality string, price float64, date time.Time) models.MarketPrice {
	return models.MarketPrice{
		ID:         primitive.NewObjectID(),
		Crop:       crop,
		PricePerKg: price,
		Unit:       models.DefaultUnit,
		Market:     models.DefaultMarket,
		Quality:    quality,
		Date:       date,
	}
}

func TestGroupLatestByQuality(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	t.Run("newest record wins per quality tier", func(t *testing.T) {
		newest := priceRecord("tea", models.QualityStandard, 100, t3)
		premium := priceRecord("tea", models.QualityPremium, 110, t2)
		stale := priceRecord("tea", models.QualityStandard, 90, t1)

		grouped := GroupLatestByQuality([]models.MarketPrice{newest, premium, stale})

		require.Len(t, grouped["tea"], 2)
		assert.Equal(t, newest.ID, grouped["tea"][0].ID)
		assert.Equal(t, premium.ID, grouped["tea"][1].ID)
	})

	t.Run("crops do not bleed into each other", func(t *testing.T) {
		grouped := GroupLatestByQuality([]models.MarketPrice{
			priceRecord("tea", models.QualityStandard, 100, t2),
			priceRecord("coffee", models.QualityStandard, 250, t1),
		})

		assert.Len(t, grouped["tea"], 1)
		assert.Len(t, grouped["coffee"], 1)
	})

	t.Run("empty input yields empty map", func(t *testing.T) {
		assert.Empty(t, GroupLatestByQuality(nil))
	})
}

func TestLatest(t *testing.T) {
	t.Run("not found when crop has no records", func(t *testing.T) {
		svc := NewService(&fakePriceRepo{}, testCrops, nil)

		_, err := svc.Latest(context.Background(), "tea")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("crop matched case-insensitively with limit", func(t *testing.T) {
		repo := &fakePriceRepo{}
		base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		for i := 0; i < 15; i++ {
			repo.records = append(repo.records, priceRecord("tea", models.QualityStandard, float64(100+i), base.Add(-time.Duration(i)*time.Hour)))
		}
		svc := NewService(repo, testCrops, nil)

		prices, err := svc.Latest(context.Background(), "TEA")
		require.NoError(t, err)
		assert.Len(t, prices, 10)
		assert.Equal(t, float64(100), prices[0].PricePerKg)
	})
}

func TestHistory(t *testing.T) {
	t.Run("empty result is valid", func(t *testing.T) {
		svc := NewService(&fakePriceRepo{}, testCrops, nil)

		prices, err := svc.History(context.Background(), "tea", 0)
		require.NoError(t, err)
		assert.NotNil(t, prices)
		assert.Empty(t, prices)
	})

	t.Run("caller limit respected", func(t *testing.T) {
		repo := &fakePriceRepo{}
		base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			repo.records = append(repo.records, priceRecord("coffee", models.QualityStandard, float64(200+i), base.Add(-time.Duration(i)*time.Hour)))
		}
		svc := NewService(repo, testCrops, nil)

		prices, err := svc.History(context.Background(), "coffee", 3)
		require.NoError(t, err)
		assert.Len(t, prices, 3)
	})
}

func TestSubmit(t *testing.T) {
	fixedNow := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	submitter := primitive.NewObjectID()

	newService := func(repo *fakePriceRepo) *Service {
		svc := NewService(repo, testCrops, nil)
		svc.now = func() time.Time { return fixedNow }
		return svc
	}

	t.Run("applies defaults and attribution", func(t *testing.T) {
		repo := &fakePriceRepo{}
		svc := newService(repo)

		created, err := svc.Submit(context.Background(), models.SubmitPriceRequest{Crop: "Tea", PricePerKg: 50}, submitter)
		require.NoError(t, err)

		assert.Equal(t, "tea", created.Crop)
		assert.Equal(t, models.QualityStandard, created.Quality)
		assert.Equal(t, models.DefaultMarket, created.Market)
		assert.Equal(t, models.DefaultUnit, created.Unit)
		assert.Equal(t, submitter, created.UpdatedBy)
		assert.Equal(t, fixedNow, created.Date)
		assert.False(t, created.ID.IsZero())
		require.Len(t, repo.records, 1)
	})

	t.Run("rejects invalid submissions", func(t *testing.T) {
		svc := newService(&fakePriceRepo{})

		cases := map[string]models.SubmitPriceRequest{
			"missing crop":   {PricePerKg: 50},
			"negative price": {Crop: "tea", PricePerKg: -5},
			"zero price":     {Crop: "tea", PricePerKg: 0},
			"unknown crop":   {Crop: "maize", PricePerKg: 30},
			"bad quality":    {Crop: "tea", PricePerKg: 30, Quality: "export"},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := svc.Submit(context.Background(), req, submitter)
				assert.ErrorIs(t, err, apperr.ErrValidation)
			})
		}
	})

	t.Run("explicit quality and market kept", func(t *testing.T) {
		svc := newService(&fakePriceRepo{})

		created, err := svc.Submit(context.Background(), models.SubmitPriceRequest{
			Crop:       "coffee",
			PricePerKg: 320,
			Quality:    models.QualityPremium,
			Market:     "Keroka",
		}, submitter)
		require.NoError(t, err)
		assert.Equal(t, models.QualityPremium, created.Quality)
		assert.Equal(t, "Keroka", created.Market)
	})
}

func TestRemove(t *testing.T) {
	t.Run("deletes exactly the named record", func(t *testing.T) {
		keep := priceRecord("tea", models.QualityStandard, 100, time.Now())
		gone := priceRecord("tea", models.QualityPremium, 120, time.Now())
		repo := &fakePriceRepo{records: []models.MarketPrice{keep, gone}}
		svc := NewService(repo, testCrops, nil)

		require.NoError(t, svc.Remove(context.Background(), gone.ID.Hex()))
		require.Len(t, repo.records, 1)
		assert.Equal(t, keep.ID, repo.records[0].ID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := NewService(&fakePriceRepo{}, testCrops, nil)
		err := svc.Remove(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		svc := NewService(&fakePriceRepo{}, testCrops, nil)
		err := svc.Remove(context.Background(), "not-a-hex-id")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestGrouped(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	repo := &fakePriceRepo{records: []models.MarketPrice{
		priceRecord("bananas", models.QualityLow, 20, base.Add(2*time.Hour)),
		priceRecord("bananas", models.QualityLow, 25, base.Add(time.Hour)),
		priceRecord("avocados", models.QualityPremium, 80, base),
	}}
	svc := NewService(repo, testCrops, nil)

	grouped, err := svc.Grouped(context.Background())
	require.NoError(t, err)

	require.Len(t, grouped["bananas"], 1)
	assert.Equal(t, float64(20), grouped["bananas"][0].PricePerKg)
	require.Len(t, grouped["avocados"], 1)
	assert.True(t, strings.EqualFold("premium", grouped["avocados"][0].Quality))
}
