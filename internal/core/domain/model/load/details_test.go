package load_test

import (
	"strings"
	"testing"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetails(t *testing.T) {
	pickup := now.Add(24 * time.Hour)

	t.Run("should trim and keep fields", func(t *testing.T) {
		d, err := load.NewDetails(" Dallas, TX ", "Tulsa, OK", pickup, time.Time{}, 0, " reefer ", "")

		require.NoError(t, err)
		assert.Equal(t, "Dallas, TX", d.Origin())
		assert.Equal(t, "reefer", d.Equipment())
		assert.True(t, d.DeliverBy().IsZero())
	})

	tests := []struct {
		name      string
		origin    string
		dest      string
		pickup    time.Time
		deliverBy time.Time
		weight    int
		notes     string
		wantErr   error
	}{
		{name: "missing origin", dest: "B", pickup: pickup, wantErr: errs.ErrValueIsRequired},
		{name: "missing destination", origin: "A", pickup: pickup, wantErr: errs.ErrValueIsRequired},
		{name: "missing pickup", origin: "A", dest: "B", wantErr: errs.ErrValueIsRequired},
		{name: "deliver before pickup", origin: "A", dest: "B", pickup: pickup, deliverBy: pickup.Add(-time.Minute), wantErr: errs.ErrValueIsInvalid},
		{name: "negative weight", origin: "A", dest: "B", pickup: pickup, weight: -1, wantErr: errs.ErrValueIsOutOfRange},
		{name: "overweight", origin: "A", dest: "B", pickup: pickup, weight: 80001, wantErr: errs.ErrValueIsOutOfRange},
		{name: "notes too long", origin: "A", dest: "B", pickup: pickup, notes: strings.Repeat("n", 2001), wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load.NewDetails(tt.origin, tt.dest, tt.pickup, tt.deliverBy, tt.weight, "", tt.notes)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEdits_IsEmpty(t *testing.T) {
	assert.True(t, load.Edits{}.IsEmpty())

	weight := 100
	assert.False(t, load.Edits{WeightLbs: &weight}.IsEmpty())
}
