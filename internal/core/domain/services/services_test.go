package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	shipper identity.Shipper
	carrier identity.Carrier
	admin   identity.Admin
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	shipper, err := identity.NewShipper(kernel.NewUUID(), "Acme Foods")
	require.NoError(t, err)
	carrier, err := identity.NewCarrier(kernel.NewUUID(), "Road Runner LLC", "MC-1")
	require.NoError(t, err)
	admin, err := identity.NewAdmin(kernel.NewUUID())
	require.NoError(t, err)
	return fixture{shipper: shipper, carrier: carrier, admin: admin}
}

func (f fixture) postedLoad(t *testing.T) *load.Load {
	t.Helper()
	details, err := load.NewDetails("Dallas, TX", "Tulsa, OK", now.Add(24*time.Hour), time.Time{}, 1000, "", "")
	require.NoError(t, err)
	rate, _ := kernel.NewMoney(100000)
	l, err := load.NewLoad(kernel.NewUUID(), f.shipper, details, rate, now)
	require.NoError(t, err)
	return l
}

func newOffer(t *testing.T, l *load.Load, carrier identity.Carrier, cents int64) *offer.Offer {
	t.Helper()
	amount, _ := kernel.NewMoney(cents)
	o, err := offer.NewOffer(kernel.NewUUID(), l.ID(), carrier, amount, "", now)
	require.NoError(t, err)
	return o
}
