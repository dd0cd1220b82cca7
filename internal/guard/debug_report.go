package guard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// BuildDebugReport renders a plain-text snapshot of the run: per-guard
// behavioural state, event counts mined from the sim log, and the selected
// guard's thought log. The same text goes to the clipboard and to the
// headless reporter's output.
func BuildDebugReport(w *World, seed int64, selectedID int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- nightwatch debug report ---\n")
	fmt.Fprintf(&b, "seed=%d tick=%d guards=%d\n\n", seed, w.CurrentTick(), len(w.Guards))

	if t := w.Target; t != nil {
		fmt.Fprintf(&b, "target: pos=(%.0f,%.0f) speed=%.1f crouched=%v\n\n",
			t.X, t.Y, t.Speed(), t.Crouched)
	}

	for _, g := range w.Guards {
		fmt.Fprintf(&b, "== %s ==\n", g.label)
		fmt.Fprintf(&b, "state=%s suspicion=%.2f detection=%.2f sees=%v flashlight=%v\n",
			g.state, g.suspicion, g.detectionProgress, g.seesTarget, g.flashlightOn)
		if g.hasLastKnown {
			fmt.Fprintf(&b, "last_known=(%.0f,%.0f) lost=%.1fs persist=%.1fs\n",
				g.lastKnownX, g.lastKnownY, g.lostTimer, g.persistentChaseTimer)
		}
		if g.hypnotized {
			fmt.Fprintf(&b, "hypnotized %.1fs remaining\n", g.hypnosisTimer)
		}

		log := w.SimLog.FilterActor(g.label)
		counts := map[string]int{}
		for _, e := range log {
			counts[e.Category]++
		}
		fmt.Fprintf(&b, "events: state=%d vision=%d sound=%d comms=%d attack=%d pursuit=%d\n",
			counts["state"], counts["vision"], counts["sound"],
			counts["comms"], counts["attack"], counts["pursuit"])

		changes := 0
		for _, e := range log {
			if e.Category == "state" && e.Key == "change" {
				changes++
				fmt.Fprintf(&b, "  T=%04d %s\n", e.Tick, e.Value)
			}
		}
		if changes == 0 {
			b.WriteString("  (no state changes)\n")
		}
		b.WriteByte('\n')
	}

	if g := w.GuardByID(selectedID); g != nil {
		fmt.Fprintf(&b, "== thought log (%s) ==\n", g.label)
		for _, t := range g.thoughts.Recent() {
			fmt.Fprintf(&b, "T=%04d %s\n", t.Tick, t.Message)
		}
	}
	return b.String()
}

// CopyDebugReport places the report on the system clipboard.
func CopyDebugReport(w *World, seed int64, selectedID int) error {
	return clipboard.WriteAll(BuildDebugReport(w, seed, selectedID))
}
