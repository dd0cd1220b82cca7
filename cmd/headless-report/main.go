package main

import (
	"flag"
	"fmt"

	"github.com/calder-hay/nightwatch/internal/guard"
)

type runStats struct {
	runIndex int
	seed     int64

	firstSpottedTick       int
	firstChaseTick         int
	firstAttackTick        int
	firstSearchTick        int
	firstReinforcementTick int
	firstSoundAlertTick    int

	stateChanges   int
	sightings      int
	broadcasts     int
	alertsReceived int
	attacksLanded  int
	attacksWhiffed int
	flankAttempts  int
	soundsHeard    int

	alertedGuards int
	finalStates   map[string]string
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "night-patrol", "scenario name")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "night-patrol" {
		fmt.Printf("error: unsupported scenario %q (supported: night-patrol)\n", scenario)
		return
	}

	fmt.Printf("=== Headless Patrol Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenarioNightPatrol(i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runScenarioNightPatrol(runIndex int, seed int64, ticks int) runStats {
	ts := guard.NewTestSim(seed,
		guard.WithMapSize(1280, 720),
		guard.WithBuilding(200, 120, 180, 120),
		guard.WithBuilding(560, 300, 160, 200),
		guard.WithBuilding(900, 100, 140, 160),
		guard.WithBuilding(300, 500, 220, 120),
		guard.WithLight(450, 100, 1.0, 220),
		guard.WithLight(820, 380, 0.8, 200),
		guard.WithGuard(0, 100, 100, [2]float64{100, 100}, [2]float64{480, 80}, [2]float64{480, 280}, [2]float64{120, 300}),
		guard.WithGuard(1, 760, 560, [2]float64{760, 560}, [2]float64{1180, 560}, [2]float64{1180, 300}),
		guard.WithGuard(2, 120, 640, [2]float64{120, 640}, [2]float64{560, 660}, [2]float64{860, 640}),
		guard.WithTargetRoute(40,
			[2]float64{1200, 80}, [2]float64{640, 120}, [2]float64{120, 420},
			[2]float64{620, 560}, [2]float64{1200, 400}),
	)
	ts.RunTicks(ticks)

	log := ts.Log()
	rs := runStats{
		runIndex: runIndex,
		seed:     seed,

		firstSpottedTick:       log.FirstTick("vision", "target_spotted", ""),
		firstChaseTick:         log.FirstTick("state", "change", "→ chase"),
		firstAttackTick:        log.FirstTick("state", "change", "→ attack"),
		firstSearchTick:        log.FirstTick("state", "change", "→ search"),
		firstReinforcementTick: log.FirstTick("comms", "call_reinforcements", ""),
		firstSoundAlertTick:    log.FirstTick("sound", "investigate", ""),

		stateChanges:   log.CountCategory("state", "change"),
		sightings:      log.CountCategory("vision", "target_spotted"),
		broadcasts:     log.CountCategory("comms", "broadcast_sighting"),
		alertsReceived: log.CountCategory("comms", "received"),
		attacksLanded:  log.CountCategory("attack", "landed"),
		attacksWhiffed: log.CountCategory("attack", "whiffed"),
		flankAttempts:  log.CountCategory("pursuit", "flank"),
		soundsHeard:    log.CountCategory("sound", "heard") + log.CountCategory("sound", "heard_sprint"),

		finalStates: map[string]string{},
	}

	for _, g := range ts.World.Guards {
		rs.finalStates[g.Label()] = g.State().String()
		if g.Suspicion() > 0 {
			rs.alertedGuards++
		}
	}
	return rs
}

// classifyOutcome names how far the episode escalated.
func classifyOutcome(rs runStats) string {
	switch {
	case rs.attacksLanded > 0:
		return "engaged"
	case rs.firstChaseTick >= 0:
		return "chased"
	case rs.firstSpottedTick >= 0 || rs.firstSoundAlertTick >= 0:
		return "suspected"
	default:
		return "undetected"
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_spotted=%d first_chase=%d first_attack=%d first_search=%d first_reinforcement=%d first_sound_alert=%d\n",
		rs.firstSpottedTick, rs.firstChaseTick, rs.firstAttackTick,
		rs.firstSearchTick, rs.firstReinforcementTick, rs.firstSoundAlertTick)
	fmt.Printf("event_totals: state_change=%d sightings=%d broadcasts=%d alerts_received=%d sounds=%d flanks=%d\n",
		rs.stateChanges, rs.sightings, rs.broadcasts, rs.alertsReceived, rs.soundsHeard, rs.flankAttempts)
	fmt.Printf("combat: landed=%d whiffed=%d\n", rs.attacksLanded, rs.attacksWhiffed)
	fmt.Printf("outcome: %s alerted_guards=%d\n", classifyOutcome(rs), rs.alertedGuards)
	fmt.Printf("final_states:")
	for _, label := range []string{"G0", "G1", "G2"} {
		if s, ok := rs.finalStates[label]; ok {
			fmt.Printf(" %s=%s", label, s)
		}
	}
	fmt.Println()
	fmt.Println()
}

func printAggregate(all []runStats) {
	outcomes := map[string]int{}
	totalSightings := 0
	totalBroadcasts := 0
	totalLanded := 0
	detectedRuns := 0
	sumFirstSpotted := 0
	for _, rs := range all {
		outcomes[classifyOutcome(rs)]++
		totalSightings += rs.sightings
		totalBroadcasts += rs.broadcasts
		totalLanded += rs.attacksLanded
		if rs.firstSpottedTick >= 0 {
			detectedRuns++
			sumFirstSpotted += rs.firstSpottedTick
		}
	}

	fmt.Printf("=== Aggregate (%d runs) ===\n", len(all))
	fmt.Printf("outcomes: undetected=%d suspected=%d chased=%d engaged=%d\n",
		outcomes["undetected"], outcomes["suspected"], outcomes["chased"], outcomes["engaged"])
	fmt.Printf("avg_per_run: sightings=%.1f broadcasts=%.1f attacks_landed=%.1f\n",
		avgPerRun(totalSightings, len(all)), avgPerRun(totalBroadcasts, len(all)), avgPerRun(totalLanded, len(all)))
	if detectedRuns > 0 {
		fmt.Printf("avg_first_spotted_tick=%.0f (over %d detected runs)\n",
			float64(sumFirstSpotted)/float64(detectedRuns), detectedRuns)
	} else {
		fmt.Println("avg_first_spotted_tick=n/a (target never spotted)")
	}
}

func avgPerRun(total, runs int) float64 {
	if runs == 0 {
		return 0
	}
	return float64(total) / float64(runs)
}
