package dto

import (
	"fmt"
	"net/url"

	"github.com/heavensaji/fundtos/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_url", validateSafeURL)
	}
}

// validateSafeURL accepts only http/https URLs.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// ParseAmount parses a user-entered amount string into a positive decimal.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a number", raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}

// ParseCategory maps the API category encoding to the domain enum.
func ParseCategory(raw string) (domain.CampaignCategory, error) {
	switch raw {
	case "regular":
		return domain.CategoryRegular, nil
	case "seed_funding":
		return domain.CategorySeedFunding, nil
	default:
		return 0, fmt.Errorf("unknown category %q", raw)
	}
}
