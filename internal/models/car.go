package models

import (
	"encoding/json"
	"time"
)

// MaxCarFeatures caps the features list of a car.
const MaxCarFeatures = 12

// CarStage names one of the four listing steps.
type CarStage string

const (
	CarStageBasics   CarStage = "basics"
	CarStageSpecs    CarStage = "specs"
	CarStagePricing  CarStage = "pricing"
	CarStageLocation CarStage = "location"
)

// CarState is the listing progress derived from the populated field groups.
type CarState string

const (
	CarStateSpecsPending    CarState = "specs_pending"
	CarStatePricingPending  CarState = "pricing_pending"
	CarStateLocationPending CarState = "location_pending"
	CarStateComplete        CarState = "complete"
)

// CarDB represents a car listing row. Every field group except the owner
// is nullable because the row is written stage by stage.
type CarDB struct {
	ID     int64 `json:"id" db:"id"`
	HostID int64 `json:"host_id" db:"host_id"`

	// Basics
	Name        *string `json:"name" db:"name"`
	Model       *string `json:"model" db:"model"`
	BodyType    *string `json:"body_type" db:"body_type"`
	Year        *int    `json:"year" db:"year"`
	Description *string `json:"description" db:"description"`

	// Technical specs
	Seats        *int    `json:"seats" db:"seats"`
	FuelType     *string `json:"fuel_type" db:"fuel_type"`
	Transmission *string `json:"transmission" db:"transmission"`
	Color        *string `json:"color" db:"color"`
	Mileage      *int    `json:"mileage" db:"mileage"`
	Features     *string `json:"features" db:"features"` // JSON encoded list

	// Pricing and rules
	DailyRate         *float64 `json:"daily_rate" db:"daily_rate"`
	WeeklyRate        *float64 `json:"weekly_rate" db:"weekly_rate"`
	MonthlyRate       *float64 `json:"monthly_rate" db:"monthly_rate"`
	MinRentalDays     *int     `json:"min_rental_days" db:"min_rental_days"`
	MaxRentalDays     *int     `json:"max_rental_days" db:"max_rental_days"` // nil means no cap
	MinAgeRequirement *int     `json:"min_age_requirement" db:"min_age_requirement"`
	Rules             *string  `json:"rules" db:"rules"`

	// Location: either a name or a coordinate pair
	LocationName *string  `json:"location_name" db:"location_name"`
	Latitude     *float64 `json:"latitude" db:"latitude"`
	Longitude    *float64 `json:"longitude" db:"longitude"`

	IsComplete bool      `json:"is_complete" db:"is_complete"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// State reports how far the listing has progressed. Stages may run in any
// order, so this only looks at which groups are populated.
func (c *CarDB) State() CarState {
	switch {
	case c.IsComplete:
		return CarStateComplete
	case c.DailyRate != nil:
		return CarStateLocationPending
	case c.Seats != nil:
		return CarStatePricingPending
	default:
		return CarStateSpecsPending
	}
}

// FeatureList decodes the stored features. A missing or unreadable value
// yields nil.
func (c *CarDB) FeatureList() []string {
	if c.Features == nil || *c.Features == "" {
		return nil
	}
	var features []string
	if err := json.Unmarshal([]byte(*c.Features), &features); err != nil {
		return nil
	}
	return features
}

// EncodeFeatures serializes a features list for storage. An empty list is
// stored as NULL.
func EncodeFeatures(features []string) (*string, error) {
	if len(features) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// CarBasics is the input of the first listing stage.
type CarBasics struct {
	Name        string
	Model       string
	BodyType    string
	Year        int
	Description string
}

// CarSpecs is the input of the technical specs stage.
type CarSpecs struct {
	Seats        int
	FuelType     string
	Transmission string
	Color        string
	Mileage      int
	Features     []string
}

// CarPricing is the input of the pricing and rules stage.
// MaxRentalDays of nil or 0 means no maximum.
type CarPricing struct {
	DailyRate         float64
	WeeklyRate        float64
	MonthlyRate       float64
	MinRentalDays     int
	MaxRentalDays     *int
	MinAgeRequirement int
	Rules             string
}

// CarLocation is the input of the final stage. Exactly one of LocationName
// or the Latitude/Longitude pair is set.
type CarLocation struct {
	LocationName *string
	Latitude     *float64
	Longitude    *float64
}
