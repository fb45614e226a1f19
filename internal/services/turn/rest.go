package turn

import (
	"context"
	"log"

	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
)

// Rest runs turns until the rest session ends
func (s *service) Rest(ctx context.Context, playerID string, code int) (*RestReport, error) {
	if code == 0 || (code < 0 && !rest.IsSpecial(code)) {
		return nil, errors.InvalidArgumentf("invalid rest code %d", code)
	}

	unlock := s.lock(playerID)
	defer unlock()

	p, rec, err := s.loadAlive(ctx, playerID)
	if err != nil {
		return nil, err
	}

	report, err := s.rest(ctx, p, code)
	if err != nil {
		return nil, err
	}
	report.Messages = rec.Messages()

	// turns already played are kept even when the caller gave up
	if err := s.save(context.WithoutCancel(ctx), p); err != nil {
		return nil, err
	}
	return report, nil
}

// RepeatRest rests again with the last requested code
func (s *service) RepeatRest(ctx context.Context, playerID string) (*RestReport, error) {
	unlock := s.lock(playerID)
	defer unlock()

	p, rec, err := s.loadAlive(ctx, playerID)
	if err != nil {
		return nil, err
	}

	code := p.Rest.RepeatCount()
	if code == 0 {
		return nil, errors.InvalidArgumentf("%s has not rested yet", p.Name).WithMeta("player_id", playerID)
	}

	report, err := s.rest(ctx, p, code)
	if err != nil {
		return nil, err
	}
	report.Messages = rec.Messages()

	// turns already played are kept even when the caller gave up
	if err := s.save(context.WithoutCancel(ctx), p); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *service) rest(ctx context.Context, p *player.Player, code int) (*RestReport, error) {
	report := &RestReport{
		PlayerID: p.ID,
		Code:     code,
		Mode:     rest.ModeFor(code),
		Before:   snapshot(p),
	}

	// an explicit command is not swallowed by an old disturbance
	p.Rest.ClearInterrupt()

	report.Begin = p.BeginRest(code)
	if report.Begin == rest.Rejected {
		return nil, errors.InvalidArgumentf("invalid rest code %d", code)
	}

	for report.Turns < s.game.MaxRestTurns && p.Rest.IsResting() {
		if err := ctx.Err(); err != nil {
			// leave the player resting where they were
			log.Printf("turn: rest for %s stopped after %d turns: %v", p.ID, report.Turns, err)
			break
		}
		report.Turns++
		snap := s.step(p, report)
		if s.observer != nil {
			s.observer(p.ID, snap)
		}
		if p.IsDead() {
			break
		}
	}

	if p.Rest.IsResting() && ctx.Err() == nil {
		report.Capped = true
		p.Rest.Cancel(false)
	}

	report.After = snapshot(p)
	report.End = p.Rest.LastEnd()
	report.Interrupted = report.End == rest.EndDisturbed
	report.Dead = p.IsDead()
	report.DiedFrom = p.Vitals.DiedFrom
	return report, nil
}

// step plays one resting turn: hazards, damage, regeneration, rest bookkeeping and light
func (s *service) step(p *player.Player, report *RestReport) TurnSnapshot {
	snap := TurnSnapshot{Turn: report.Turns}
	p.Upkeep.ClearTurn()

	if s.hazards != nil {
		for _, hit := range s.hazards.Strike(p, report.Turns) {
			var applied int
			if hit.Terrain != nil {
				applied = s.resolver.TakeTerrainDamage(p, *hit.Terrain).Applied
			} else {
				applied = s.resolver.TakeHit(p, hit.Damage, hit.Cause).Applied
			}
			if applied > 0 {
				snap.Struck = true
				report.Hits++
			}
			if p.IsDead() {
				snap.Snapshot = snapshot(p)
				return snap
			}
		}
	}

	snap.HPGain = s.calculator.RegenHP(p).Delta
	snap.ManaGain = s.calculator.RegenMana(p).Delta

	p.RestStep()
	p.GameTurn += 10
	snap.Completed = p.CompleteRest(p.GameTurn, s.game.DayLength)

	snap.LightOut = p.UpdateLight(s.world)

	snap.Resting = p.Rest.IsResting()
	snap.Count = p.Rest.Count()
	snap.Snapshot = snapshot(p)
	return snap
}
