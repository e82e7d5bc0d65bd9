package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateLoadCommand_ValidInput(t *testing.T) {
	p := newParties(t)
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateLoadCommand(id, p.shipper, testDetails(t), money(t, 185000))

	require.NoError(t, err)
	assert.Equal(t, id, cmd.LoadID())
	assert.Equal(t, p.shipper, cmd.Actor())
	assert.Equal(t, "Dallas, TX", cmd.Details().Origin())
	assert.Equal(t, int64(185000), cmd.Rate().Cents())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateLoadCommand_InvalidInput(t *testing.T) {
	p := newParties(t)

	t.Run("zero id", func(t *testing.T) {
		_, err := commands.NewCreateLoadCommand(kernel.UUID{}, p.shipper, testDetails(t), money(t, 1))
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("missing actor", func(t *testing.T) {
		_, err := commands.NewCreateLoadCommand(kernel.NewUUID(), nil, testDetails(t), money(t, 1))
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero details", func(t *testing.T) {
		_, err := commands.NewCreateLoadCommand(kernel.NewUUID(), p.shipper, load.Details{}, money(t, 1))
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero rate", func(t *testing.T) {
		_, err := commands.NewCreateLoadCommand(kernel.NewUUID(), p.shipper, testDetails(t), kernel.Money{})
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestCreateLoadCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateLoadCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateLoadCommandIsNotConstructed)
}
