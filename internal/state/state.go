// Package state implements the shared observable cell both link loops
// update and that the facade reads without blocking I/O: a single
// writer (the UDP loop, plus a disjoint telemetry slice from the TCP
// loop), many readers.
package state

import (
	"sync"
	"time"

	"github.com/keskad/dsgo/internal/protocol"
)

// Snapshot is a consistent, point-in-time copy of the shared state. It
// is returned by value so a reader never holds a reference into the
// live cell.
type Snapshot struct {
	Connected   bool
	Team        uint16
	Estopped    bool
	Enabled     bool
	Alliance    protocol.Alliance
	Mode        protocol.Mode
	GameData    protocol.GameData
	CodeStatus  protocol.CodeStatus
	Battery     float32
	Sequence    uint16
	Faults      protocol.Faults
	UsageReport []protocol.Entry
}

// LivenessWindow is the duration within which at least one UDP response
// must have been observed for the link to be considered connected.
const LivenessWindow = 500 * time.Millisecond

// Cell is the concurrency-safe holder of Snapshot. The UDP loop is the
// only writer of the connection-derived fields; the TCP loop writes
// only Faults/UsageReport, a disjoint subset, so both writers can hold
// the lock independently without tearing either side's invariant that
// "every full response updates all of its fields atomically".
type Cell struct {
	mu           sync.RWMutex
	snap         Snapshot
	lastResponse time.Time
}

// New returns a cell seeded with the given team number and the default
// "not yet connected" state.
func New(team uint16) *Cell {
	return &Cell{
		snap: Snapshot{
			Team:       team,
			Alliance:   protocol.Red1,
			Mode:       protocol.ModeTeleop,
			CodeStatus: protocol.CodeInitializing,
		},
	}
}

// Snapshot returns a consistent copy, recomputing Connected against the
// liveness window at read time. A flag cleared by MarkDisconnected stays
// cleared until the next ApplyResponse.
func (c *Cell) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap := c.snap
	snap.Connected = c.snap.Connected && !c.lastResponse.IsZero() && time.Since(c.lastResponse) <= LivenessWindow
	return snap
}

// ApplyResponse atomically updates every field derived from one
// successfully decoded UDP response.
func (c *Cell) ApplyResponse(frame protocol.InboundFrame, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Connected = true
	c.snap.Enabled = frame.Status.Enabled()
	c.snap.Estopped = frame.Status.Estopped()
	c.snap.Mode = frame.Status.Mode()
	c.snap.CodeStatus = frame.Trace.RobotCode()
	c.snap.Battery = frame.Battery.Voltage()
	c.snap.Sequence = frame.Sequence
	c.lastResponse = at
}

// MarkDisconnected clears the connected flag outside of the liveness
// timer path, e.g. when the UDP loop is rebinding.
func (c *Cell) MarkDisconnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Connected = false
}

// SetTeam updates the team number, e.g. after a SetTeamNumber command.
func (c *Cell) SetTeam(team uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Team = team
}

// LastResponse reports when the last UDP response was applied; it is the
// zero time before the first one.
func (c *Cell) LastResponse() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastResponse
}

// ApplyFaults updates the TCP-sourced fault counters. This is a
// disjoint field set from ApplyResponse's, so the single-writer
// invariant for UDP-derived fields is unaffected.
func (c *Cell) ApplyFaults(f protocol.Faults) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Faults = f
}

// ApplyUsageReport replaces the most recently observed usage-report
// entry catalogue.
func (c *Cell) ApplyUsageReport(entries []protocol.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.UsageReport = entries
}
