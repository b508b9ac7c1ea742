package advisory

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/akilima/akilima/internal/domain/apperr"
	"github.com/akilima/akilima/internal/domain/models"
)

// NoCropsSelectedMessage accompanies the empty result for a caller with no
// crop selection. Empty selection is a valid state, not an error.
const NoCropsSelectedMessage = "No crops selected. Please update your profile."

// Service exposes read-only lookups over the crop guidance catalog.
type Service struct {
	entries []models.CropAdvisory
	byID    map[string]models.CropAdvisory
	logger  *zap.Logger
}

// NewService wires a new advisory service over the provided catalog. The
// catalog is indexed once here and never mutated afterwards.
func NewService(catalog []models.CropAdvisory, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	byID := make(map[string]models.CropAdvisory, len(catalog))
	for _, entry := range catalog {
		byID[strings.ToLower(entry.ID)] = entry
	}

	return &Service{entries: catalog, byID: byID, logger: logger}
}

// ListAll returns every catalog entry in declaration order.
func (s *Service) ListAll() []models.CropAdvisory {
	out := make([]models.CropAdvisory, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the advisory for one crop id, matching case-insensitively.
func (s *Service) Get(id string) (models.CropAdvisory, error) {
	entry, ok := s.byID[strings.ToLower(id)]
	if !ok {
		return models.CropAdvisory{}, fmt.Errorf("advisory for crop %q: %w", id, apperr.ErrNotFound)
	}
	return entry, nil
}

// ForCrops maps a caller's selected crop ids to their catalog entries. Ids
// that do not resolve are dropped without error; a direct Get on the same id
// would fail instead. An empty selection yields an empty list together with
// NoCropsSelectedMessage.
func (s *Service) ForCrops(cropIDs []string) ([]models.CropAdvisory, string) {
	if len(cropIDs) == 0 {
		return []models.CropAdvisory{}, NoCropsSelectedMessage
	}

	out := make([]models.CropAdvisory, 0, len(cropIDs))
	for _, id := range cropIDs {
		entry, ok := s.byID[strings.ToLower(id)]
		if !ok {
			s.logger.Debug("dropping unknown crop from selection", zap.String("crop", id))
			continue
		}
		out = append(out, entry)
	}

	return out, ""
}
