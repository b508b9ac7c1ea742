package models

// ClimateRequirements describes growing-condition ranges as free-text values.
type ClimateRequirements struct {
	Temperature string `json:"temperature"`
	Rainfall    string `json:"rainfall"`
	Altitude    string `json:"altitude"`
	Soil        string `json:"soil"`
}

// PlantingGuide covers when and how to establish the crop.
type PlantingGuide struct {
	Season      string `json:"season"`
	Spacing     string `json:"spacing"`
	Preparation string `json:"preparation"`
}

// HarvestingGuide covers harvest timing, technique and expected yields.
type HarvestingGuide struct {
	Time   string `json:"time"`
	Method string `json:"method"`
	Yield  string `json:"yield"`
}

// CropAdvisory is one crop's full guidance entry. The catalog of advisories is
// built once at startup and never mutated afterwards.
type CropAdvisory struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	ScientificName string              `json:"scientificName"`
	Overview       string              `json:"overview"`
	Climate        ClimateRequirements `json:"climate"`
	Planting       PlantingGuide       `json:"planting"`
	Care           []string            `json:"care"`
	Pests          []string            `json:"pests"`
	Harvesting     HarvestingGuide     `json:"harvesting"`
	Market         string              `json:"market"`
}
