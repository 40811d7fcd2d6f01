package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

// ErrValidation is wrapped by every error returned from this package.
var ErrValidation = errors.New("validation failed")

// MaxPageSize bounds the limit of paginated listings.
const MaxPageSize = 100

var (
	mpesaRegex = regexp.MustCompile(`^\d{9,15}$`)
	cardRegex  = regexp.MustCompile(`^\d{16}$`)
	cvcRegex   = regexp.MustCompile(`^\d{3,4}$`)
)

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, fmt.Sprintf(format, args...))
}

func stringLength(value, field string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		if min == 1 {
			return invalid(field, "cannot be empty")
		}
		return invalid(field, "must be at least %d characters", min)
	}
	if max > 0 && n > max {
		return invalid(field, "must be at most %d characters", max)
	}
	return nil
}

func intRange(value int, field string, min, max int) error {
	if value < min || value > max {
		return invalid(field, "must be between %d and %d", min, max)
	}
	return nil
}

func positive(value float64, field string) error {
	if value <= 0 {
		return invalid(field, "must be positive")
	}
	return nil
}

// ValidateRegistration checks the account registration fields.
func ValidateRegistration(fullName, email, password, confirmation string) error {
	if err := stringLength(fullName, "full_name", 1, 255); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if password != confirmation {
		return invalid("password_confirmation", "does not match password")
	}
	return nil
}

// ValidateEmail accepts a bare address such as john@example.com.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email", "is not a valid email address")
	}
	return nil
}

// ValidatePassword enforces the length bounds. bcrypt ignores everything
// past 72 bytes, so longer secrets are rejected.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return invalid("password", "must be at least 8 characters")
	}
	if len(password) > 72 {
		return invalid("password", "must be at most 72 bytes")
	}
	return nil
}

// ValidateProfile checks the optional profile fields.
func ValidateProfile(p models.AccountProfile) error {
	if p.MobileNumber != nil {
		if err := stringLength(*p.MobileNumber, "mobile_number", 0, 50); err != nil {
			return err
		}
	}
	if p.IDNumber != nil {
		if err := stringLength(*p.IDNumber, "id_number", 0, 100); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCarBasics checks the first listing stage.
func ValidateCarBasics(b models.CarBasics) error {
	if err := stringLength(b.Name, "name", 1, 255); err != nil {
		return err
	}
	if err := stringLength(b.Model, "model", 1, 100); err != nil {
		return err
	}
	if err := stringLength(b.BodyType, "body_type", 1, 50); err != nil {
		return err
	}
	if err := intRange(b.Year, "year", 1900, 2100); err != nil {
		return err
	}
	return stringLength(b.Description, "description", 1, 0)
}

// ValidateCarSpecs checks the technical specs stage.
func ValidateCarSpecs(s models.CarSpecs) error {
	if err := intRange(s.Seats, "seats", 1, 50); err != nil {
		return err
	}
	if err := stringLength(s.FuelType, "fuel_type", 1, 50); err != nil {
		return err
	}
	if err := stringLength(s.Transmission, "transmission", 1, 50); err != nil {
		return err
	}
	if err := stringLength(s.Color, "color", 1, 50); err != nil {
		return err
	}
	if s.Mileage < 0 {
		return invalid("mileage", "must be non-negative")
	}
	if len(s.Features) > models.MaxCarFeatures {
		return invalid("features", "must contain at most %d items", models.MaxCarFeatures)
	}
	return nil
}

// ValidateCarPricing checks the pricing stage. A max_rental_days of 0 is
// accepted and means no maximum.
func ValidateCarPricing(p models.CarPricing) error {
	if err := positive(p.DailyRate, "daily_rate"); err != nil {
		return err
	}
	if err := positive(p.WeeklyRate, "weekly_rate"); err != nil {
		return err
	}
	if err := positive(p.MonthlyRate, "monthly_rate"); err != nil {
		return err
	}
	if p.MinRentalDays < 1 {
		return invalid("min_rental_days", "must be at least 1")
	}
	if p.MaxRentalDays != nil && *p.MaxRentalDays < 0 {
		return invalid("max_rental_days", "must be greater than or equal to 1 if provided")
	}
	if err := intRange(p.MinAgeRequirement, "min_age_requirement", 18, 100); err != nil {
		return err
	}
	return stringLength(p.Rules, "rules", 1, 0)
}

// ValidateCarLocation requires either a location name or a complete
// coordinate pair, never both.
func ValidateCarLocation(l models.CarLocation) error {
	hasName := l.LocationName != nil && *l.LocationName != ""
	hasLat, hasLng := l.Latitude != nil, l.Longitude != nil

	if hasLat != hasLng {
		return invalid("location", "requires both latitude and longitude")
	}
	if hasName && hasLat {
		return invalid("location", "must be either location_name or coordinates, not both")
	}
	if !hasName && !hasLat {
		return invalid("location", "requires location_name or both latitude and longitude")
	}
	if hasName {
		return stringLength(*l.LocationName, "location_name", 1, 255)
	}
	return ValidateCoordinates(*l.Latitude, *l.Longitude)
}

// ValidateCoordinates validates latitude and longitude values.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return invalid("latitude", "must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return invalid("longitude", "must be between -180 and 180")
	}
	return nil
}

// ValidatePagination validates skip/limit query parameters.
func ValidatePagination(skip, limit int) error {
	if skip < 0 {
		return invalid("skip", "must be non-negative")
	}
	return intRange(limit, "limit", 1, MaxPageSize)
}

// ValidateMpesaNumber accepts 9 to 15 digits, e.g. 254712345678.
func ValidateMpesaNumber(number string) error {
	if !mpesaRegex.MatchString(number) {
		return invalid("mpesa_number", "must be 9-15 digits")
	}
	return nil
}

// NormalizeCardNumber strips spaces and dashes.
func NormalizeCardNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}

// ValidateCard checks a card against its declared brand and the current
// month. The card number is expected to be normalized already.
func ValidateCard(card models.CardInput, now time.Time) error {
	if !cardRegex.MatchString(card.CardNumber) {
		return invalid("card_number", "must be exactly 16 digits")
	}

	switch models.PaymentMethodType(card.CardType) {
	case models.PaymentMethodVisa:
		if card.CardNumber[0] != '4' {
			return invalid("card_number", "visa cards must start with 4")
		}
	case models.PaymentMethodMastercard:
		if card.CardNumber[0] != '5' {
			return invalid("card_number", "mastercard cards must start with 5")
		}
	default:
		return invalid("card_type", "must be visa or mastercard")
	}

	if !cvcRegex.MatchString(card.CVC) {
		return invalid("cvc", "must be 3 or 4 digits")
	}
	if err := intRange(card.ExpiryMonth, "expiry_month", 1, 12); err != nil {
		return err
	}

	year, month := now.Year(), int(now.Month())
	if card.ExpiryYear < year || (card.ExpiryYear == year && card.ExpiryMonth < month) {
		return invalid("expiry", "card has expired")
	}
	return nil
}
