// Package content holds the marketing content shown around the marketplace: home-screen
// banners, free-form CMS entries and the promotion catalogue.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
)

// Banner is a home-screen banner. Active banners are shown ordered by position.
type Banner struct {
	ID        kernel.UUID
	Title     string
	ImageURL  string
	Link      string
	Position  int
	IsActive  bool
	CreatedAt time.Time
}

// NewBanner creates an active banner.
func NewBanner(id kernel.UUID, title, imageURL, link string, position int, now time.Time) (*Banner, error) {
	var errList []error
	errList = append(errList, id.Validate())
	if strings.TrimSpace(title) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("title"))
	}
	if strings.TrimSpace(imageURL) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("image_url"))
	}
	if position < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("position", fmt.Errorf("%d is negative", position)))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Banner{
		ID:        id,
		Title:     strings.TrimSpace(title),
		ImageURL:  strings.TrimSpace(imageURL),
		Link:      strings.TrimSpace(link),
		Position:  position,
		IsActive:  true,
		CreatedAt: now.UTC(),
	}, nil
}

var cmsKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_\-]{0,63}$`)

// CMSEntry is a keyed JSON document, e.g. "social_links" or "platform_name".
type CMSEntry struct {
	Key       string
	Value     json.RawMessage
	UpdatedAt time.Time
}

// NewCMSEntry validates the key and that value is well-formed JSON.
func NewCMSEntry(key string, value json.RawMessage, now time.Time) (*CMSEntry, error) {
	if !cmsKeyPattern.MatchString(key) {
		return nil, errs.NewValueIsInvalidErrorWithCause("key", fmt.Errorf("%q is not a valid cms key", key))
	}
	if len(value) == 0 || !json.Valid(value) {
		return nil, errs.NewValueIsInvalidError("value")
	}
	return &CMSEntry{Key: key, Value: append(json.RawMessage(nil), value...), UpdatedAt: now.UTC()}, nil
}

// Promotion is a catalogue entry describing a running promotion.
type Promotion struct {
	ID        kernel.UUID
	Name      string
	PromoType string
	Config    json.RawMessage
	IsActive  bool
	CreatedAt time.Time
}

func NewPromotion(id kernel.UUID, name, promoType string, config json.RawMessage, active bool, now time.Time) (
	*Promotion, error,
) {
	var errList []error
	errList = append(errList, id.Validate())
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(promoType) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("promo_type"))
	}
	if len(config) == 0 {
		config = json.RawMessage(`{}`)
	}
	if !json.Valid(config) {
		errList = append(errList, errs.NewValueIsInvalidError("config"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Promotion{
		ID:        id,
		Name:      strings.TrimSpace(name),
		PromoType: promoType,
		Config:    config,
		IsActive:  active,
		CreatedAt: now.UTC(),
	}, nil
}
