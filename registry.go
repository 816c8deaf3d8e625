/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"slices"
	"sync"
)

// roomCapacity is the hard participant limit per room.
const roomCapacity = 10

var (
	errRoomFull = errors.New("room is full")
	errNoRoom   = errors.New("no such room")
)

// room tracks the connections sharing one PIN. participants keeps insertion
// order so a round's special index maps to a well-defined connection.
type room struct {
	mu           sync.Mutex
	hostID       string
	participants []string
}

// registry maps PINs to live rooms. The registry mutex guards only the map;
// each room carries its own lock so traffic in one room never serializes
// against another. Lock order is always registry before room.
type registry struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

func newRegistry() *registry {
	return &registry{rooms: make(map[string]*room)}
}

type joinResult struct {
	IsHost  bool
	Members int
}

// join adds a connection to the room, creating the room (with the joiner as
// host) if the PIN is unseen. Re-joining while already a member is a no-op
// that still reports current membership.
func (reg *registry) join(pin, connID string) (joinResult, error) {
	reg.mu.Lock()
	r, ok := reg.rooms[pin]
	if !ok {
		r = &room{hostID: connID}
		reg.rooms[pin] = r
	}
	r.mu.Lock()
	reg.mu.Unlock()
	defer r.mu.Unlock()

	if slices.Contains(r.participants, connID) {
		return joinResult{IsHost: r.hostID == connID, Members: len(r.participants)}, nil
	}

	if len(r.participants) >= roomCapacity {
		return joinResult{}, errRoomFull
	}

	r.participants = append(r.participants, connID)

	return joinResult{IsHost: r.hostID == connID, Members: len(r.participants)}, nil
}

// isHost reports whether connID holds the host role. Unknown rooms are not
// an error, just false.
func (reg *registry) isHost(pin, connID string) bool {
	reg.mu.RLock()
	r, ok := reg.rooms[pin]
	if !ok {
		reg.mu.RUnlock()
		return false
	}
	r.mu.Lock()
	reg.mu.RUnlock()
	defer r.mu.Unlock()

	return r.hostID == connID
}

type leaveResult struct {
	Deleted bool
	NewHost string
	Members int
}

// leave removes a connection from the room. The last participant out deletes
// the room; a departing host hands the role to the first remaining member in
// insertion order.
func (reg *registry) leave(pin, connID string) (leaveResult, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.rooms[pin]
	if !ok {
		return leaveResult{}, errNoRoom
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.Index(r.participants, connID)
	if idx < 0 {
		return leaveResult{Members: len(r.participants)}, nil
	}

	r.participants = slices.Delete(r.participants, idx, idx+1)

	res := leaveResult{Members: len(r.participants)}

	switch {
	case len(r.participants) == 0:
		delete(reg.rooms, pin)
		res.Deleted = true
	case r.hostID == connID:
		r.hostID = r.participants[0]
		res.NewHost = r.hostID
	}

	return res, nil
}

// participants returns a snapshot of the room's membership in insertion
// order, or nil for an unknown PIN.
func (reg *registry) participants(pin string) []string {
	reg.mu.RLock()
	r, ok := reg.rooms[pin]
	if !ok {
		reg.mu.RUnlock()
		return nil
	}
	r.mu.Lock()
	reg.mu.RUnlock()
	defer r.mu.Unlock()

	return slices.Clone(r.participants)
}
