package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l1jgo/quadscene/internal/geom"
)

func TestBusDeliversNextTick(t *testing.T) {
	b := NewBus()
	var got []EntitySpawned
	Subscribe(b, func(ev EntitySpawned) { got = append(got, ev) })

	Emit(b, EntitySpawned{EntityID: 1, Kind: "node", At: geom.Pt(1, 2)})
	Emit(b, EntitySpawned{EntityID: 2, Kind: "node"})
	require.Equal(t, 2, b.Pending())

	b.DispatchAll()
	require.Empty(t, got)

	b.SwapBuffers()
	require.Zero(t, b.Pending())
	b.DispatchAll()
	require.Len(t, got, 2)
	require.Equal(t, uint64(1), uint64(got[0].EntityID))
	require.Equal(t, geom.Pt(1, 2), got[0].At)

	b.SwapBuffers()
	b.DispatchAll()
	require.Len(t, got, 2)
}

func TestBusRoutesByType(t *testing.T) {
	b := NewBus()
	spawned, despawned := 0, 0
	Subscribe(b, func(EntitySpawned) { spawned++ })
	Subscribe(b, func(EntityDespawned) { despawned++ })
	Subscribe(b, func(EntityDespawned) { despawned++ })

	Emit(b, EntityDespawned{EntityID: 3})
	Emit(b, SpawnRejected{Kind: "node"})
	b.SwapBuffers()
	b.DispatchAll()

	require.Zero(t, spawned)
	require.Equal(t, 2, despawned)
}
