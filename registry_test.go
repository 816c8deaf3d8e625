package main

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFirstJoinerIsHost(t *testing.T) {
	reg := newRegistry()

	res, err := reg.join("1234", "a")
	require.NoError(t, err)
	assert.True(t, res.IsHost)
	assert.Equal(t, 1, res.Members)

	res, err = reg.join("1234", "b")
	require.NoError(t, err)
	assert.False(t, res.IsHost)
	assert.Equal(t, 2, res.Members)

	assert.True(t, reg.isHost("1234", "a"))
	assert.False(t, reg.isHost("1234", "b"))
}

func TestRegistryJoinIsIdempotent(t *testing.T) {
	reg := newRegistry()

	_, err := reg.join("1234", "a")
	require.NoError(t, err)
	_, err = reg.join("1234", "b")
	require.NoError(t, err)

	res, err := reg.join("1234", "a")
	require.NoError(t, err)
	assert.True(t, res.IsHost)
	assert.Equal(t, 2, res.Members)
	assert.Equal(t, []string{"a", "b"}, reg.participants("1234"))
}

func TestRegistryCapacity(t *testing.T) {
	reg := newRegistry()

	for i := range roomCapacity {
		_, err := reg.join("9999", fmt.Sprintf("conn-%d", i))
		require.NoError(t, err)
	}

	_, err := reg.join("9999", "one-too-many")
	require.ErrorIs(t, err, errRoomFull)
	assert.Len(t, reg.participants("9999"), roomCapacity)

	// An existing member bouncing off the cap is still a no-op success.
	res, err := reg.join("9999", "conn-0")
	require.NoError(t, err)
	assert.Equal(t, roomCapacity, res.Members)
}

func TestRegistryLeave(t *testing.T) {
	tests := []struct {
		name    string
		joins   []string
		leaver  string
		deleted bool
		newHost string
		members int
	}{
		{
			name:    "host leaves, first remaining member promoted",
			joins:   []string{"a", "b", "c"},
			leaver:  "a",
			newHost: "b",
			members: 2,
		},
		{
			name:    "non-host leaves, host unchanged",
			joins:   []string{"a", "b", "c"},
			leaver:  "b",
			members: 2,
		},
		{
			name:    "last member out deletes the room",
			joins:   []string{"a"},
			leaver:  "a",
			deleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newRegistry()
			for _, id := range tt.joins {
				_, err := reg.join("1234", id)
				require.NoError(t, err)
			}

			res, err := reg.leave("1234", tt.leaver)
			require.NoError(t, err)
			assert.Equal(t, tt.deleted, res.Deleted)
			assert.Equal(t, tt.newHost, res.NewHost)
			assert.Equal(t, tt.members, res.Members)

			if tt.deleted {
				assert.Nil(t, reg.participants("1234"))
			} else if tt.newHost != "" {
				assert.True(t, reg.isHost("1234", tt.newHost))
			}
		})
	}
}

func TestRegistryLeaveUnknownRoom(t *testing.T) {
	reg := newRegistry()

	_, err := reg.leave("nope", "a")
	require.ErrorIs(t, err, errNoRoom)
}

func TestRegistryLeaveNonMemberIsNoop(t *testing.T) {
	reg := newRegistry()
	_, err := reg.join("1234", "a")
	require.NoError(t, err)

	res, err := reg.leave("1234", "stranger")
	require.NoError(t, err)
	assert.False(t, res.Deleted)
	assert.Equal(t, 1, res.Members)
	assert.True(t, reg.isHost("1234", "a"))
}

func TestRegistryIsHostUnknownRoom(t *testing.T) {
	reg := newRegistry()
	assert.False(t, reg.isHost("nope", "a"))
}

func TestRegistryRoomIsFreshAfterEmptying(t *testing.T) {
	reg := newRegistry()

	_, err := reg.join("1234", "a")
	require.NoError(t, err)
	_, err = reg.leave("1234", "a")
	require.NoError(t, err)

	// Same PIN, new room: the next joiner becomes host again.
	res, err := reg.join("1234", "b")
	require.NoError(t, err)
	assert.True(t, res.IsHost)
	assert.Equal(t, 1, res.Members)
}

func TestRegistryParticipantsSnapshotIsStable(t *testing.T) {
	reg := newRegistry()
	for _, id := range []string{"a", "b", "c"} {
		_, err := reg.join("1234", id)
		require.NoError(t, err)
	}

	snapshot := reg.participants("1234")
	assert.Equal(t, []string{"a", "b", "c"}, snapshot)

	_, err := reg.leave("1234", "b")
	require.NoError(t, err)

	// The snapshot taken before the mutation is unaffected.
	assert.Equal(t, []string{"a", "b", "c"}, snapshot)
	assert.Equal(t, []string{"a", "c"}, reg.participants("1234"))
}

func TestRegistryConcurrentRooms(t *testing.T) {
	reg := newRegistry()

	var wg sync.WaitGroup
	for i := range 8 {
		pin := fmt.Sprintf("room-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range roomCapacity {
				_, err := reg.join(pin, fmt.Sprintf("conn-%d", j))
				assert.NoError(t, err)
			}
			for j := range roomCapacity {
				_, err := reg.leave(pin, fmt.Sprintf("conn-%d", j))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	for i := range 8 {
		assert.Nil(t, reg.participants(fmt.Sprintf("room-%d", i)))
	}
}
