// internal/app/game.go
package app

import (
	"log"
	"math"
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
	"neon-siege/internal/system"
	"neon-siege/internal/utils"
	"time"

	"github.com/google/uuid"
)

// phase — один именованный шаг тика.
type phase struct {
	name string
	run  func(dt float64)
}

// Game holds the match state and runs the simulation pipeline.
type Game struct {
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	EconomySystem      *system.EconomySystem
	SpawnSystem        *system.SpawnSystem
	MovementSystem     *system.MovementSystem
	FormationSystem    *system.FormationSystem
	CollisionSystem    *system.CollisionSystem
	SiegeSystem        *system.SiegeSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	State   component.MatchState
	pick    defs.WeaponName // выбор на экране снаряжения, "" - не выбрано
	matchID string

	pipeline []phase
	events   *eventLog
}

// NewGame собирает мир и системы. seed 0 - сид от времени.
// Косметика получает свой генератор, чтобы не сдвигать случайность ИИ.
func NewGame(seed int64) *Game {
	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	fxSeed := int64(0)
	if seed != 0 {
		fxSeed = seed + 1
	}

	g := &Game{
		World:              world,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		EconomySystem:      system.NewEconomySystem(),
		SpawnSystem:        system.NewSpawnSystem(world, eventDispatcher, rng),
		MovementSystem:     system.NewMovementSystem(world),
		FormationSystem:    system.NewFormationSystem(world),
		CollisionSystem:    system.NewCollisionSystem(world, eventDispatcher),
		SiegeSystem:        system.NewSiegeSystem(world, eventDispatcher),
		CombatSystem:       system.NewCombatSystem(world, eventDispatcher),
		ProjectileSystem:   system.NewProjectileSystem(world, eventDispatcher),
		StateSystem:        system.NewStateSystem(world),
		VisualEffectSystem: system.NewVisualEffectSystem(world, utils.NewPRNGService(fxSeed)),
		State:              component.LoadoutState,
		events:             newEventLog(config.EventLogCap),
	}
	g.applyEnemyWeapon()

	eventDispatcher.Subscribe(event.HitOccurred, g.VisualEffectSystem)
	eventDispatcher.SubscribeAll(g.events, event.AllTypes...)

	g.pipeline = []phase{
		{"effects", g.VisualEffectSystem.Update},
		{"economy", g.EconomySystem.Update},
		{"ai", g.SpawnSystem.Update},
		{"movement", g.MovementSystem.Update},
		{"formation", func(float64) { g.FormationSystem.Update() }},
		{"troop-collisions", func(float64) { g.CollisionSystem.Update() }},
		{"castle-collisions", func(float64) { g.SiegeSystem.Update() }},
		{"formation", func(float64) { g.FormationSystem.Update() }},
		{"towers", g.CombatSystem.Update},
		{"projectiles", g.ProjectileSystem.Update},
		{"prune", func(float64) { g.prune() }},
		{"outcome", func(float64) { g.checkOutcome() }},
	}
	return g
}

// PhaseNames возвращает порядок фаз тика.
func (g *Game) PhaseNames() []string {
	names := make([]string, len(g.pipeline))
	for i, p := range g.pipeline {
		names[i] = p.name
	}
	return names
}

// Update продвигает бой на deltaTime секунд шагами не длиннее MaxSubStep.
// Вне боя ничего не делает.
func (g *Game) Update(deltaTime float64) {
	for deltaTime > 0 && g.State == component.PlayState {
		step := math.Min(deltaTime, config.MaxSubStep)
		g.step(step)
		deltaTime -= step
	}
}

func (g *Game) step(dt float64) {
	g.World.GameTime += dt
	for _, p := range g.pipeline {
		p.run(dt)
	}
}

// prune убирает мёртвых и сообщает о каждом убитом юните.
func (g *Game) prune() {
	for _, u := range g.World.Compact() {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.UnitKilled,
			Data: event.UnitInfo{ID: u.ID, Team: u.Team, Kind: u.Kind, X: u.X},
		})
	}
}

func (g *Game) checkOutcome() {
	next := g.StateSystem.Evaluate(g.State)
	if next == g.State {
		return
	}
	g.State = next

	info := event.MatchInfo{
		MatchID:  g.matchID,
		Weapon:   g.World.Castle(defs.TeamPlayer).Weapon.Name,
		Result:   next.String(),
		Duration: time.Duration(g.World.GameTime * float64(time.Second)),
	}
	log.Printf("Match %s ended: %s after %v", info.MatchID, info.Result, info.Duration.Round(time.Millisecond))
	g.EventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: info})
}

// Spawn выставляет юнита. Игроку нужна энергия, она списывается сразу;
// противник ограничен лимитом численности. Работает только в бою.
func (g *Game) Spawn(team defs.Team, kind defs.UnitKind) bool {
	if g.State != component.PlayState {
		return false
	}
	def, ok := defs.LookupUnit(kind)
	if !ok {
		return false
	}

	switch team {
	case defs.TeamPlayer:
		if !g.EconomySystem.Spend(def.Cost) {
			return false
		}
	case defs.TeamEnemy:
		if !g.SpawnSystem.HasRoom(team) {
			return false
		}
	default:
		return false
	}
	return g.SpawnSystem.SpawnUnit(team, kind) != nil
}

// CanAfford — хватает ли игроку энергии на юнита.
func (g *Game) CanAfford(kind defs.UnitKind) bool {
	def, ok := defs.LookupUnit(kind)
	return ok && g.EconomySystem.CanAfford(def.Cost)
}

// SetWeapon ставит оружие на замок команды.
func (g *Game) SetWeapon(team defs.Team, name defs.WeaponName) bool {
	def, ok := defs.LookupWeapon(name)
	if !ok || (team != defs.TeamPlayer && team != defs.TeamEnemy) {
		return false
	}
	g.World.Castle(team).SetWeapon(def)
	return true
}

// SelectWeapon запоминает выбор игрока на экране снаряжения.
func (g *Game) SelectWeapon(name defs.WeaponName) bool {
	if g.State != component.LoadoutState {
		return false
	}
	if _, ok := defs.LookupWeapon(name); !ok {
		return false
	}
	g.pick = name
	return true
}

// Pick — выбранное оружие, "" если ещё не выбрано.
func (g *Game) Pick() defs.WeaponName {
	return g.pick
}

// Start начинает бой с выбранным оружием.
func (g *Game) Start() bool {
	if g.State != component.LoadoutState || g.pick == "" {
		return false
	}
	g.SetWeapon(defs.TeamPlayer, g.pick)
	g.resetMatch()

	g.matchID = uuid.NewString()
	g.State = component.PlayState
	log.Printf("Match %s started: weapon %s", g.matchID, g.pick)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.MatchStarted,
		Data: event.MatchInfo{MatchID: g.matchID, Weapon: g.pick},
	})
	return true
}

// Restart возвращает на экран снаряжения после конца матча.
func (g *Game) Restart() bool {
	if !g.State.Finished() {
		return false
	}
	g.pick = ""
	g.applyEnemyWeapon()
	g.resetMatch()
	g.State = component.LoadoutState
	return true
}

// MatchID — идентификатор текущего (или последнего) матча.
func (g *Game) MatchID() string {
	return g.matchID
}

// Dispatcher — для подписки внешних слушателей (звук, журнал).
func (g *Game) Dispatcher() *event.Dispatcher {
	return g.EventDispatcher
}

// DrainEvents отдаёт события, накопленные с прошлого вызова.
func (g *Game) DrainEvents() []event.Event {
	return g.events.drain()
}

func (g *Game) resetMatch() {
	g.World.Clear()
	g.SpawnSystem.Reset()
	g.EconomySystem.Reset()
	g.VisualEffectSystem.Reset()
	for _, c := range g.World.Castles {
		c.Reset()
	}
}

func (g *Game) applyEnemyWeapon() {
	if !g.SetWeapon(defs.TeamEnemy, config.EnemyWeapon) {
		log.Printf("Game: unknown enemy weapon %q", config.EnemyWeapon)
	}
}
