package advisory

import "github.com/akilima/akilima/internal/domain/models"

// DefaultCatalog returns the reference guidance dataset for the Kisii County
// growing region. The returned slice is built fresh on every call so callers
// own their copy; the service treats whatever catalog it is handed as
// read-only.
func DefaultCatalog() []models.CropAdvisory {
	return []models.CropAdvisory{
		{
			ID:             "tea",
			Name:           "Tea",
			ScientificName: "Camellia sinensis",
			Overview:       "Tea is one of the most important cash crops in Kisii County, thriving in the high-altitude areas with adequate rainfall.",
			Climate: models.ClimateRequirements{
				Temperature: "18-25°C",
				Rainfall:    "1200-1400mm annually",
				Altitude:    "1500-2100m above sea level",
				Soil:        "Deep, well-drained acidic soils (pH 4.5-5.5)",
			},
			Planting: models.PlantingGuide{
				Season:      "Plant during rainy seasons (March-May or September-November)",
				Spacing:     "1.2m x 0.6m for optimal yield",
				Preparation: "Clear land, mark planting holes, add manure or compost",
			},
			Care: []string{
				"Weed regularly, especially during first 3 years",
				"Prune annually to maintain bush height at 0.6-1m",
				"Apply fertilizer (NPK 25:5:5) at 150kg per acre twice yearly",
				"Mulch around plants to retain moisture",
			},
			Pests: []string{
				"Tea mosquito bug - spray with approved pesticides",
				"Thrips - use neem-based solutions",
				"Root diseases - ensure good drainage",
			},
			Harvesting: models.HarvestingGuide{
				Time:   "Begin plucking 3-4 years after planting",
				Method: "Pluck two leaves and a bud every 7-10 days",
				Yield:  "1500-2500 kg green leaf per acre annually",
			},
			Market: "Sell through KTDA tea factories or cooperative societies",
		},
		{
			ID:             "coffee",
			Name:           "Coffee",
			ScientificName: "Coffea arabica",
			Overview:       "Coffee is a premium cash crop in Kisii County, known for producing high-quality Arabica beans with good market demand.",
			Climate: models.ClimateRequirements{
				Temperature: "15-24°C",
				Rainfall:    "1000-1800mm annually",
				Altitude:    "1400-2100m above sea level",
				Soil:        "Well-drained volcanic soils, rich in organic matter (pH 5.5-6.5)",
			},
			Planting: models.PlantingGuide{
				Season:      "Plant at onset of long rains (March-April)",
				Spacing:     "2.75m x 2.75m (standard) or 2m x 2m (high density)",
				Preparation: "Dig holes 60cm x 60cm x 60cm, fill with topsoil mixed with manure",
			},
			Care: []string{
				"Mulch heavily around coffee trees",
				"Apply NPK fertilizer: 150g per tree for young plants, 300g for mature trees",
				"Prune after harvesting to maintain tree shape",
				"Control weeds through manual weeding or mulching",
			},
			Pests: []string{
				"Coffee Berry Disease (CBD) - spray with copper-based fungicides",
				"Coffee Leaf Rust - use systemic fungicides",
				"Antestia bugs - use approved insecticides",
			},
			Harvesting: models.HarvestingGuide{
				Time:   "Main harvest: October-December; Fly crop: May-July",
				Method: "Handpick only ripe red cherries",
				Yield:  "5-15 kg of clean coffee per tree annually",
			},
			Market: "Sell through cooperative societies or directly at coffee mills",
		},
		{
			ID:             "bananas",
			Name:           "Bananas",
			ScientificName: "Musa species",
			Overview:       "Bananas are a vital food and income crop in Kisii County, serving both subsistence and commercial purposes.",
			Climate: models.ClimateRequirements{
				Temperature: "20-30°C",
				Rainfall:    "1000-2000mm annually, evenly distributed",
				Altitude:    "Up to 2000m above sea level",
				Soil:        "Deep, fertile, well-drained loamy soils (pH 6-7)",
			},
			Planting: models.PlantingGuide{
				Season:      "Plant at onset of rains",
				Spacing:     "3m x 3m for cooking bananas; 2m x 2m for sweet bananas",
				Preparation: "Dig holes 60cm deep, add manure and topsoil mixture",
			},
			Care: []string{
				"Mulch heavily with banana leaves and crop residues",
				"Apply manure or compost: 10-20kg per mat every 6 months",
				"Remove dead leaves and suckers regularly",
				"Prop bunches with poles to prevent breaking",
			},
			Pests: []string{
				"Panama disease - use disease-free suckers, practice crop rotation",
				"Banana weevils - use clean planting material, apply wood ash",
				"Nematodes - use certified planting material",
			},
			Harvesting: models.HarvestingGuide{
				Time:   "9-12 months after planting",
				Method: "Harvest when fingers are full and rounded",
				Yield:  "30-50kg per bunch, multiple harvests per year",
			},
			Market: "Local markets, urban centers, or through farmer cooperatives",
		},
		{
			ID:             "avocados",
			Name:           "Avocados",
			ScientificName: "Persea americana",
			Overview:       "Avocados are an increasingly important export crop in Kisii County with growing international demand.",
			Climate: models.ClimateRequirements{
				Temperature: "15-30°C",
				Rainfall:    "1000-1600mm annually",
				Altitude:    "1200-2400m above sea level",
				Soil:        "Well-drained soils, rich in organic matter (pH 5.5-7)",
			},
			Planting: models.PlantingGuide{
				Season:      "Plant during rainy seasons",
				Spacing:     "8m x 8m to 10m x 10m",
				Preparation: "Dig holes 60cm x 60cm x 60cm, add 2-3 debes of manure",
			},
			Care: []string{
				"Mulch around trees to conserve moisture",
				"Apply manure: 50kg per tree annually",
				"Prune to maintain manageable height and shape",
				"Water during dry spells, especially young trees",
			},
			Pests: []string{
				"Anthracnose - spray with copper fungicides",
				"Avocado thrips - use neem oil or approved insecticides",
				"Root rot - ensure good drainage",
			},
			Harvesting: models.HarvestingGuide{
				Time:   "Trees begin bearing after 3-5 years",
				Method: "Pick when fruit reaches mature size, allow to ripen off tree",
				Yield:  "50-200kg per tree depending on variety and age",
			},
			Market: "Export markets (Europe), local supermarkets, or cooperative societies",
		},
	}
}
