package guard

// NotificationSink receives one-way signals from the core. Calls are
// fire-and-forget; nothing about guard behaviour depends on the sink.
type NotificationSink interface {
	OnTargetFirstSpotted(g *Guard)
	OnGuardStateChanged(g *Guard, oldState, newState GuardState)
	OnAttackLanded(g *Guard, damage float64)
	OnInvestigationStarted(g *Guard, x, y float64)
}

// NopSink discards all notifications.
type NopSink struct{}

func (NopSink) OnTargetFirstSpotted(*Guard)                    {}
func (NopSink) OnGuardStateChanged(*Guard, GuardState, GuardState) {}
func (NopSink) OnAttackLanded(*Guard, float64)                 {}
func (NopSink) OnInvestigationStarted(*Guard, float64, float64) {}

// SinkEvent is one recorded notification, for test assertions.
type SinkEvent struct {
	Kind    string // spotted, state_change, attack, investigation
	GuardID int
	Old     GuardState
	New     GuardState
	Damage  float64
	X, Y    float64
}

// RecordingSink captures every notification in order.
type RecordingSink struct {
	Events []SinkEvent
}

func (rs *RecordingSink) OnTargetFirstSpotted(g *Guard) {
	rs.Events = append(rs.Events, SinkEvent{Kind: "spotted", GuardID: g.id})
}

func (rs *RecordingSink) OnGuardStateChanged(g *Guard, oldState, newState GuardState) {
	rs.Events = append(rs.Events, SinkEvent{Kind: "state_change", GuardID: g.id, Old: oldState, New: newState})
}

func (rs *RecordingSink) OnAttackLanded(g *Guard, damage float64) {
	rs.Events = append(rs.Events, SinkEvent{Kind: "attack", GuardID: g.id, Damage: damage})
}

func (rs *RecordingSink) OnInvestigationStarted(g *Guard, x, y float64) {
	rs.Events = append(rs.Events, SinkEvent{Kind: "investigation", GuardID: g.id, X: x, Y: y})
}

// Count returns how many events of a kind were recorded.
func (rs *RecordingSink) Count(kind string) int {
	n := 0
	for _, e := range rs.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// CountFor returns how many events of a kind a specific guard produced.
func (rs *RecordingSink) CountFor(kind string, guardID int) int {
	n := 0
	for _, e := range rs.Events {
		if e.Kind == kind && e.GuardID == guardID {
			n++
		}
	}
	return n
}
