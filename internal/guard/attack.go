package guard

import "fmt"

// AttackPhase is the swing cycle, advanced by per-tick timers rather than
// suspended waits so the machine stays serializable.
type AttackPhase int

const (
	AttackIdle AttackPhase = iota
	AttackWindup
	AttackRecovery
)

func (p AttackPhase) String() string {
	switch p {
	case AttackIdle:
		return "idle"
	case AttackWindup:
		return "windup"
	case AttackRecovery:
		return "recovery"
	default:
		return "unknown"
	}
}

// updateAttack runs the Attack state: halted, facing the target, cycling
// windup → contact check → recovery under the attack cooldown.
func (g *Guard) updateAttack(w *World, dt float64) {
	t := w.Target
	if t == nil {
		g.attackPhase = AttackIdle
		g.enterAlert(w, g.lastKnownX, g.lastKnownY, false)
		return
	}

	g.nav.Stop()
	g.heading = turnToward(g.heading, HeadingTo(g.x, g.y, t.X, t.Y), guardTurnRate)
	if g.cooldownTimer > 0 {
		g.cooldownTimer -= dt
	}

	d := dist(g.x, g.y, t.X, t.Y)

	switch g.attackPhase {
	case AttackIdle:
		if d > g.params.AttackRange {
			g.nav.Resume()
			g.setState(w, StateChase)
			return
		}
		if g.cooldownTimer <= 0 {
			g.attackPhase = AttackWindup
			g.attackTimer = 0
		}
	case AttackWindup:
		g.attackTimer += dt
		if g.attackTimer >= g.params.AttackWindupTime {
			// Contact check: the target may have slipped out mid-swing.
			if d <= g.params.AttackRange {
				w.Sink.OnAttackLanded(g, g.params.AttackDamage)
				w.log(g, "attack", "landed", fmt.Sprintf("damage=%.0f", g.params.AttackDamage), g.params.AttackDamage)
			} else {
				w.log(g, "attack", "whiffed", fmt.Sprintf("dist=%.0f", d), d)
			}
			g.attackPhase = AttackRecovery
			g.attackTimer = 0
		}
	case AttackRecovery:
		g.attackTimer += dt
		if g.attackTimer >= g.params.AttackRecoveryTime {
			g.attackPhase = AttackIdle
			g.attackTimer = 0
			g.cooldownTimer = g.params.AttackCooldown
		}
	}
}
