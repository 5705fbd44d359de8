package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/squadsim/internal/game/attack"
	"github.com/udisondev/squadsim/internal/game/energy"
	"github.com/udisondev/squadsim/internal/game/icd"
	"github.com/udisondev/squadsim/internal/game/kit"
	"github.com/udisondev/squadsim/internal/game/modifier"
	"github.com/udisondev/squadsim/internal/game/reaction"
	"github.com/udisondev/squadsim/internal/game/timeline"
	"github.com/udisondev/squadsim/internal/game/weapon"
	"github.com/udisondev/squadsim/internal/model"
)

// Simulator runs one setup. It is not safe for concurrent use; independent
// runs each own a Simulator.
type Simulator struct {
	setup Setup
	log   *slog.Logger

	roster   []*model.CharacterData
	kits     []kit.Kit
	effects  []weapon.Effect
	arena    *icd.Arena
	queue    *attack.Queue
	gauge    *reaction.Gauge
	engine   *reaction.Engine
	pipeline *modifier.Pipeline
	calc     *modifier.Calculator

	step   modifier.StepContext
	events []model.Event
}

// New validates setup and builds the roster, kits, weapon passives, ICD
// arena, queue and modifier pipeline.
func New(setup Setup) (*Simulator, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	table := setup.Table
	if table == nil {
		table = reaction.DefaultTable()
	}
	engine, err := reaction.NewEngine(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	logger := setup.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Simulator{
		setup:    setup,
		log:      logger.With("run", setup.Name),
		arena:    icd.NewArena(),
		queue:    attack.NewQueue(),
		gauge:    reaction.NewGauge(setup.Enemy.Aura, setup.Enemy.AuraUnits, 0),
		engine:   engine,
		pipeline: modifier.NewPipeline(),
		calc:     modifier.NewCalculator(setup.Crit, setup.Seed),
	}

	anyOnField := false
	for _, sl := range setup.Roster {
		anyOnField = anyOnField || sl.OnField
	}

	for i, sl := range setup.Roster {
		onField := sl.OnField || (!anyOnField && i == 0)
		c, err := model.NewCharacterData(i, sl.Character, sl.Weapon, sl.Stats, onField, sl.StartEnergy)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %w", ErrInvalidConfig, i, err)
		}
		k, err := kit.New(i, sl.Character)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %w", ErrInvalidConfig, i, err)
		}
		eff, err := weapon.New(i, sl.Weapon)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %w", ErrInvalidConfig, i, err)
		}
		if tagged, ok := k.(kit.Tagged); ok {
			for tag, p := range tagged.ICDPresets() {
				if s.arena.Defined(tag) {
					continue
				}
				if err := s.arena.Define(tag, p); err != nil {
					return nil, fmt.Errorf("%w: slot %d: %w", ErrInvalidConfig, i, err)
				}
			}
		}

		s.roster = append(s.roster, c)
		s.kits = append(s.kits, k)
		s.effects = append(s.effects, eff)

		s.pipeline.Register(i, modifier.Stats{Owner: i})
		s.pipeline.Register(i, k)
		s.pipeline.Register(i, eff)
	}

	s.step.Roster = s.roster
	s.step.Enemy = setup.Enemy
	return s, nil
}

// Roster returns the actor slots. Callers must not mutate them.
func (s *Simulator) Roster() []*model.CharacterData { return s.roster }

// Reset restores every piece of run state so the next Run replays the
// fight exactly.
func (s *Simulator) Reset() {
	for _, c := range s.roster {
		c.Reset()
	}
	s.arena.Reset()
	s.queue.Reset()
	s.gauge.Reset(s.setup.Enemy.Aura, s.setup.Enemy.AuraUnits, 0)
	s.pipeline.Reset()
	s.calc.Reset()
	s.events = nil
}

// Run resets the simulator and plays the fight to the configured duration.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	s.Reset()
	for t := model.Frame(0); t < s.setup.Duration; t++ {
		if t%model.FramesPerSecond == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := s.advance(t); err != nil {
			return nil, violation(t, err)
		}
	}
	return newResult(s.setup.Name, s.setup.Duration, s.roster, s.events), nil
}

// advance plays one step at frame t.
func (s *Simulator) advance(t model.Frame) error {
	s.step.Begin(t)

	snaps := timeline.TakeAll(s.roster, t)
	for i, snap := range snaps {
		a := s.decide(i, snap)
		if a.Type == model.ActionStandStill {
			continue
		}
		c := s.roster[i]
		if err := timeline.Commit(c, a, t); err != nil {
			return err
		}
		atks, parts := s.kits[i].Build(a, t)
		if err := s.queue.Schedule(atks, parts); err != nil {
			return err
		}
		s.step.Emit(modifier.Signal{Kind: modifier.SignalAction, Actor: i, Action: a.Type})
		s.log.Debug("action", "frame", t, "actor", c.Name(), "action", a.String(), "energy", c.Energy)
	}

	due, err := s.queue.PopDue(t)
	if err != nil {
		return err
	}
	for _, it := range due {
		if it.Particle != nil {
			energy.Distribute(*it.Particle, s.roster, s.setup.shareRatio())
			continue
		}
		if err := s.resolve(it.Attack); err != nil {
			return err
		}
	}

	if err := s.pipeline.Observe(&s.step); err != nil {
		return err
	}
	for _, a := range s.step.Pending() {
		if err := s.queue.PushAttack(a); err != nil {
			return err
		}
	}

	for _, c := range s.roster {
		if err := c.Counters.Advance(1); err != nil {
			return err
		}
	}
	return s.check()
}

func (s *Simulator) decide(i int, snap timeline.Snapshot) model.Action {
	if p := s.setup.Policy; p != nil {
		if a, ok := p.Next(snap); ok {
			if snap.Legal(a) {
				return snap.Action(a)
			}
			s.log.Debug("policy proposal rejected", "frame", snap.Frame, "actor", snap.Name, "action", a.String())
		}
	}
	return s.kits[i].Decide(snap)
}

// resolve runs one due attack through ICD, the reaction engine and the
// modifier pipeline, and logs its damage.
func (s *Simulator) resolve(atk *model.Attack) error {
	if atk.Elemental() {
		apply, err := s.arena.Check(atk.ICD, atk.Frame)
		if err != nil {
			return err
		}
		atk.ApplyAura = apply
	}

	s.step.Aura, _ = s.gauge.At(atk.Frame)
	res, err := s.engine.Apply(atk, s.gauge)
	if err != nil {
		return err
	}
	s.step.Reaction = res

	c := s.roster[atk.Actor]
	st := s.pipeline.Resolve(&s.step, atk)
	in := modifier.Inputs{
		Attack:   atk,
		Stats:    &st,
		BaseATK:  c.BaseATK(),
		Level:    c.Spec.Level,
		Enemy:    s.setup.Enemy,
		Reaction: res,
	}
	dmg, crit := s.calc.Hit(in)

	s.events = append(s.events, model.Event{
		Frame:       atk.Frame,
		Actor:       atk.Actor,
		ActorName:   c.Name(),
		Kind:        atk.Kind,
		Ability:     atk.Ability,
		Element:     atk.Element,
		Reaction:    res.Kind,
		AppliedAura: atk.ApplyAura,
		AuraAfter:   res.AuraAfter,
		Damage:      dmg,
		Crit:        crit,
	})
	s.step.Emit(modifier.Signal{Kind: modifier.SignalHit, Actor: atk.Actor, Attack: atk.Kind})

	if !res.Reacted() {
		return nil
	}
	s.step.Emit(modifier.Signal{Kind: modifier.SignalReaction, Actor: atk.Actor, Attack: atk.Kind, Reaction: res.Kind})
	s.log.Debug("reaction", "frame", atk.Frame, "actor", c.Name(), "reaction", res.Kind.String(), "aura", res.AuraAfter.String())

	if res.Category == model.CategoryTransformative && res.Base > 0 {
		s.events = append(s.events, model.Event{
			Frame:     atk.Frame,
			Actor:     atk.Actor,
			ActorName: c.Name(),
			Kind:      model.KindReaction,
			Ability:   res.Kind.String(),
			Element:   res.DamageElement,
			Reaction:  res.Kind,
			AuraAfter: res.AuraAfter,
			Damage:    modifier.TransformativeDamage(in),
		})
	}
	return nil
}

// check verifies the per-step invariants.
func (s *Simulator) check() error {
	for _, c := range s.roster {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if s.gauge.Units < 0 {
		return &InvariantError{Frame: s.step.Frame, Invariant: InvariantAura, Err: fmt.Errorf("aura %s at %.4f units", s.gauge.Element, s.gauge.Units)}
	}
	return nil
}
