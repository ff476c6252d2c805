package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects start and stop calls across services
type recorder struct {
	events []string
}

type fakeService struct {
	name     string
	rec      *recorder
	startErr error
}

func (s *fakeService) Start(ctx context.Context) error {
	s.rec.events = append(s.rec.events, "start "+s.name)
	return s.startErr
}

func (s *fakeService) Stop() {
	s.rec.events = append(s.rec.events, "stop "+s.name)
}

func TestRegistry_StartStopOrder(t *testing.T) {
	rec := &recorder{}
	registry := NewRegistry()
	registry.Register("storage", &fakeService{name: "storage", rec: rec})
	registry.Register("favorites", &fakeService{name: "favorites", rec: rec})
	registry.Register("server", &fakeService{name: "server", rec: rec})

	assert.Equal(t, []string{"storage", "favorites", "server"}, registry.Names())

	require.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()

	assert.Equal(t, []string{
		"start storage", "start favorites", "start server",
		"stop server", "stop favorites", "stop storage",
	}, rec.events)
}

func TestRegistry_StartFailureRollsBack(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("boom")

	registry := NewRegistry()
	registry.Register("first", &fakeService{name: "first", rec: rec})
	registry.Register("second", &fakeService{name: "second", rec: rec})
	registry.Register("broken", &fakeService{name: "broken", rec: rec, startErr: boom})
	registry.Register("never", &fakeService{name: "never", rec: rec})

	err := registry.StartAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")

	assert.Equal(t, []string{
		"start first", "start second", "start broken",
		"stop second", "stop first",
	}, rec.events)

	// nothing left to stop
	registry.StopAll()
	assert.Len(t, rec.events, 5)
}

func TestRegistry_StopWithoutStart(t *testing.T) {
	rec := &recorder{}
	registry := NewRegistry()
	registry.Register("idle", &fakeService{name: "idle", rec: rec})

	registry.StopAll()
	assert.Empty(t, rec.events)
}

func TestRegistry_Empty(t *testing.T) {
	registry := NewRegistry()
	assert.Empty(t, registry.Names())
	assert.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()
}
