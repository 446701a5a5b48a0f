package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jquag/banner/internal/model"
)

func TestManager_PassThroughWhenIdle(t *testing.T) {
	b, bridge := newTestBanner(t)
	m := NewManager(b, nil)

	m.Show(req(t, "first", model.KindDefault))
	assert.Equal(t, PhasePresenting, b.Phase())
	assert.False(t, m.Pending())

	bridge.Settle()
	assert.Equal(t, PhaseVisible, b.Phase())
}

func TestManager_ParksWhileTransitioning(t *testing.T) {
	b, bridge := newTestBanner(t)
	m := NewManager(b, nil)

	m.Show(req(t, "first", model.KindDefault))
	require.Equal(t, PhasePresenting, b.Phase())

	// Banner is mid-entrance; the change is parked, not executed.
	m.Change(req(t, "second", model.KindDefault))
	assert.True(t, m.Pending())
	assert.Equal(t, "first", b.Current().Title)

	// Settling the entrance dispatches the parked change.
	bridge.Settle()
	assert.False(t, m.Pending())
	assert.Equal(t, "second", b.Current().Title)
	assert.Equal(t, PhaseVisible, b.Phase())
}

func TestManager_NewestParkedRequestWins(t *testing.T) {
	b, bridge := newTestBanner(t)
	m := NewManager(b, nil)

	m.Show(req(t, "first", model.KindDefault))
	m.Change(req(t, "second", model.KindDefault))
	m.Change(req(t, "third", model.KindDefault))
	assert.Equal(t, 1, m.Dropped)

	bridge.Settle()
	assert.Equal(t, "third", b.Current().Title)
}

func TestManager_ParkedHideSupersedesParkedShow(t *testing.T) {
	b, bridge := newTestBanner(t)
	m := NewManager(b, nil)

	m.Present(req(t, "first", model.KindDefault))
	m.Show(req(t, "second", model.KindDefault))
	m.Hide()
	assert.Equal(t, 1, m.Dropped)

	bridge.Settle()
	assert.Equal(t, PhaseHidden, b.Phase())
	assert.Nil(t, b.Current())
}

func TestManager_IsAPresenter(t *testing.T) {
	b, _ := newTestBanner(t)
	var p Presenter = NewManager(b, nil)
	assert.NotNil(t, p)
}
