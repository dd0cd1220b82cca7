package guard

import "fmt"

const relayRangeFactor = 1.5

// AlertKind categorises guard-to-guard traffic.
type AlertKind int

const (
	AlertSighting AlertKind = iota
	AlertReinforcementCall
)

func (k AlertKind) String() string {
	if k == AlertReinforcementCall {
		return "reinforcement"
	}
	return "sighting"
}

// AlertMessage is a broadcast consumed within the same tick window.
type AlertMessage struct {
	OriginID int
	X, Y     float64
	Kind     AlertKind
}

// CommsNet delivers guard-to-guard signals over the spatial index. Delivery
// is synchronous: receivers mutate their own state inside the receive call,
// and a despawned guard simply no longer appears in the query.
type CommsNet struct{}

func NewCommsNet() *CommsNet { return &CommsNet{} }

// BroadcastSighting tells guards within communication range about a target
// position. Idle guards converge; engaged guards relay their own last known
// position out to idle peers in an extended ring instead of downgrading.
func (cn *CommsNet) BroadcastSighting(w *World, origin *Guard, x, y float64) {
	msg := AlertMessage{OriginID: origin.id, X: x, Y: y, Kind: AlertSighting}
	w.log(origin, "comms", "broadcast_sighting", fmt.Sprintf("(%.0f,%.0f)", x, y), 0)

	for _, e := range w.Index.QueryRadius(origin.x, origin.y, origin.params.CommunicationRange, KindGuard) {
		gg, ok := e.(*Guard)
		if !ok || gg == origin {
			continue
		}
		gg.receiveAlert(w, msg)

		// Engaged receivers pass their own intel outward to idle peers.
		if (gg.state == StateChase || gg.state == StateAlert) && gg.hasLastKnown {
			relay := AlertMessage{OriginID: gg.id, X: gg.lastKnownX, Y: gg.lastKnownY, Kind: AlertSighting}
			for _, pe := range w.Index.QueryRadius(gg.x, gg.y, relayRangeFactor*gg.params.CommunicationRange, KindGuard) {
				peer, ok := pe.(*Guard)
				if !ok || peer == gg || peer == origin {
					continue
				}
				if peer.state == StatePatrol {
					peer.receiveAlert(w, relay)
				}
			}
		}
	}
}

// CallReinforcements converges every idle guard within the reinforcement
// radius on the given position.
func (cn *CommsNet) CallReinforcements(w *World, origin *Guard, x, y float64) {
	msg := AlertMessage{OriginID: origin.id, X: x, Y: y, Kind: AlertReinforcementCall}
	w.log(origin, "comms", "call_reinforcements", fmt.Sprintf("(%.0f,%.0f)", x, y), 0)

	for _, e := range w.Index.QueryRadius(origin.x, origin.y, origin.params.ReinforcementRadius, KindGuard) {
		gg, ok := e.(*Guard)
		if !ok || gg == origin {
			continue
		}
		gg.receiveAlert(w, msg)
	}
}

// receiveAlert applies an incoming message. Receipts are idempotent within
// a tick: guards already engaged (Chase/Attack) ignore alerts entirely, and
// an Alert guard just refreshes its convergence point.
func (g *Guard) receiveAlert(w *World, msg AlertMessage) {
	if g.hypnotized {
		return
	}
	switch g.state {
	case StateChase, StateAttack, StateSearch:
		return
	case StateAlert:
		g.lastKnownX, g.lastKnownY = msg.X, msg.Y
		g.hasLastKnown = true
		g.pattern = nil
		return
	case StatePatrol:
		w.log(g, "comms", "received", fmt.Sprintf("%s from G%d", msg.Kind, msg.OriginID), 0)
		g.enterAlert(w, msg.X, msg.Y, false)
	}
}
