package guard

// ModifierField selects which base parameter a difficulty override scales.
type ModifierField int

const (
	ModViewDistance ModifierField = iota
	ModSoundDetectionRange
	ModPatrolSpeed
	ModDetectionTime
)

func (f ModifierField) String() string {
	switch f {
	case ModViewDistance:
		return "view_distance"
	case ModSoundDetectionRange:
		return "sound_range"
	case ModPatrolSpeed:
		return "patrol_speed"
	case ModDetectionTime:
		return "detection_time"
	default:
		return "unknown"
	}
}

// activeModifier is one keyed multiplier with an optional expiry. Keyed so
// that re-applying the same override replaces rather than stacks: effective
// values are always recomputed as base × Π(factors), never multiplied in
// place, which keeps repeated application idempotent and avoids float drift.
type activeModifier struct {
	key       string
	field     ModifierField
	factor    float64
	remaining float64 // seconds; <=0 at apply time means permanent
	permanent bool
}

// ApplyModifier installs or replaces the keyed multiplier. duration<=0 keeps
// it until removed.
func (g *Guard) ApplyModifier(key string, field ModifierField, factor, duration float64) {
	if factor <= 0 {
		return
	}
	for i := range g.modifiers {
		if g.modifiers[i].key == key {
			g.modifiers[i].field = field
			g.modifiers[i].factor = factor
			g.modifiers[i].remaining = duration
			g.modifiers[i].permanent = duration <= 0
			g.recomputeEffective()
			return
		}
	}
	g.modifiers = append(g.modifiers, activeModifier{
		key:       key,
		field:     field,
		factor:    factor,
		remaining: duration,
		permanent: duration <= 0,
	})
	g.recomputeEffective()
}

// RemoveModifier drops the keyed multiplier, if present.
func (g *Guard) RemoveModifier(key string) {
	for i := range g.modifiers {
		if g.modifiers[i].key == key {
			g.modifiers = append(g.modifiers[:i], g.modifiers[i+1:]...)
			g.recomputeEffective()
			return
		}
	}
}

// tickModifiers expires time-boxed overrides.
func (g *Guard) tickModifiers(dt float64) {
	changed := false
	kept := g.modifiers[:0]
	for _, m := range g.modifiers {
		if !m.permanent {
			m.remaining -= dt
			if m.remaining <= 0 {
				changed = true
				continue
			}
		}
		kept = append(kept, m)
	}
	g.modifiers = kept
	if changed {
		g.recomputeEffective()
	}
}

// recomputeEffective rebuilds params from the base snapshot and the active
// multiplier set.
func (g *Guard) recomputeEffective() {
	g.params = g.base
	for _, m := range g.modifiers {
		switch m.field {
		case ModViewDistance:
			g.params.ViewDistance *= m.factor
		case ModSoundDetectionRange:
			g.params.SoundDetectionRange *= m.factor
			g.params.WalkingSoundRange *= m.factor
			g.params.RunningSoundRange *= m.factor
		case ModPatrolSpeed:
			g.params.PatrolSpeed *= m.factor
		case ModDetectionTime:
			g.params.DetectionTime *= m.factor
			g.params.CloseRangeDetectionTime *= m.factor
			g.params.PeripheralDetectionTime *= m.factor
		}
	}
}
