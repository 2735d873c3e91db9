package content_test

import (
	"encoding/json"
	"testing"
	"time"

	"hyperlocal/internal/core/domain/model/content"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBanner(t *testing.T) {
	b, err := content.NewBanner(kernel.NewUUID(), " Fresh Deals ", "https://img/1.png", "", 1, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Fresh Deals", b.Title)
	assert.True(t, b.IsActive)

	_, err = content.NewBanner(kernel.NewUUID(), "", "", "", -1, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "image_url")
	assert.Contains(t, err.Error(), "position")
}

func TestNewCMSEntry(t *testing.T) {
	e, err := content.NewCMSEntry("social_links", json.RawMessage(`{"facebook":"https://facebook.com"}`), time.Now())
	require.NoError(t, err)
	assert.JSONEq(t, `{"facebook":"https://facebook.com"}`, string(e.Value))

	_, err = content.NewCMSEntry("Bad Key", json.RawMessage(`1`), time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = content.NewCMSEntry("platform_name", json.RawMessage(`{oops`), time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPromotion(t *testing.T) {
	p, err := content.NewPromotion(kernel.NewUUID(), "Gift with Purchase", "gift", nil, true, time.Now())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(p.Config))

	_, err = content.NewPromotion(kernel.NewUUID(), "", "", json.RawMessage(`[`), true, time.Now())
	require.Error(t, err)
}
