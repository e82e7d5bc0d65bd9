package commands_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/chat"
	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetForShare(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load, expected load.Status) error {
	args := m.Called(ctx, l, expected)
	return args.Error(0)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Upsert(ctx context.Context, o *offer.Offer) (*offer.Offer, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindByCarrier(ctx context.Context, loadID, carrierID kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, loadID, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) RejectPendingExcept(ctx context.Context, loadID, acceptedID kernel.UUID) (int64, error) {
	args := m.Called(ctx, loadID, acceptedID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferRepository) RejectPendingOnClosedLoads(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockChatRepository struct{ mock.Mock }

func (m *MockChatRepository) Append(ctx context.Context, msg *chat.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockUoW) ChatRepository() ports.ChatRepository {
	args := m.Called()
	return args.Get(0).(ports.ChatRepository)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockMarketUoWFactory struct{ mock.Mock }

func (m *MockMarketUoWFactory) Create() commands.MarketUoW {
	args := m.Called()
	return args.Get(0).(commands.MarketUoW)
}

type MockChatUoWFactory struct{ mock.Mock }

func (m *MockChatUoWFactory) Create() commands.ChatUoW {
	args := m.Called()
	return args.Get(0).(commands.ChatUoW)
}

type MockOfferUoWFactory struct{ mock.Mock }

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OfferUoW)
}

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type parties struct {
	shipper identity.Shipper
	carrier identity.Carrier
	other   identity.Carrier
	admin   identity.Admin
}

func newParties(t *testing.T) parties {
	t.Helper()
	shipper, err := identity.NewShipper(kernel.NewUUID(), "Acme Foods")
	require.NoError(t, err)
	carrier, err := identity.NewCarrier(kernel.NewUUID(), "Road Runner LLC", "MC-100")
	require.NoError(t, err)
	other, err := identity.NewCarrier(kernel.NewUUID(), "Lone Star Haulers", "MC-200")
	require.NoError(t, err)
	admin, err := identity.NewAdmin(kernel.NewUUID())
	require.NoError(t, err)
	return parties{shipper: shipper, carrier: carrier, other: other, admin: admin}
}

func testDetails(t *testing.T) load.Details {
	t.Helper()
	d, err := load.NewDetails("Dallas, TX", "Tulsa, OK", now.Add(24*time.Hour), time.Time{}, 42000, "dry van", "")
	require.NoError(t, err)
	return d
}

func money(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func (p parties) postedLoad(t *testing.T) *load.Load {
	t.Helper()
	l, err := load.NewLoad(kernel.NewUUID(), p.shipper, testDetails(t), money(t, 185000), now)
	require.NoError(t, err)
	l.ClearDomainEvents()
	return l
}

// assignedLoad returns a load bound to p.carrier.
func (p parties) assignedLoad(t *testing.T) *load.Load {
	t.Helper()
	l := p.postedLoad(t)
	require.NoError(t, l.Assign(p.carrier.ID(), money(t, 150000), p.shipper, now))
	l.ClearDomainEvents()
	return l
}

func pendingOffer(t *testing.T, l *load.Load, carrier identity.Carrier, cents int64) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), l.ID(), carrier, money(t, cents), "", now)
	require.NoError(t, err)
	return o
}
