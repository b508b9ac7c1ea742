package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quality tiers for a market price record.
const (
	QualityPremium  = "premium"
	QualityStandard = "standard"
	QualityLow      = "low"
)

// Regional defaults applied when a submission omits the optional fields.
const (
	DefaultUnit   = "KES/kg"
	DefaultMarket = "Kisii County"
)

// MarketPrice is one submitted price point. Records are append-only: a price
// change is a new record, never an in-place update.
type MarketPrice struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Crop       string             `bson:"crop" json:"crop"`
	PricePerKg float64            `bson:"pricePerKg" json:"pricePerKg"`
	Unit       string             `bson:"unit" json:"unit"`
	Market     string             `bson:"market" json:"market"`
	Quality    string             `bson:"quality" json:"quality"`
	UpdatedBy  primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy"`
	Date       time.Time          `bson:"date" json:"date"`
}

// SubmitPriceRequest is the inbound payload for a new price submission.
type SubmitPriceRequest struct {
	Crop       string  `json:"crop"`
	PricePerKg float64 `json:"pricePerKg"`
	Quality    string  `json:"quality"`
	Market     string  `json:"market"`
}
