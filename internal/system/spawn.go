// internal/system/spawn.go
package system

import (
	"log"
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
	"neon-siege/internal/utils"
)

// SpawnSystem создаёт юнитов и ведёт таймер спавна ИИ противника.
type SpawnSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	table           []defs.SpawnEntry

	SpawnTimer    float64
	SpawnInterval float64
	UnitCap       int
}

func NewSpawnSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		table:           defs.EnemySpawnTable,
		SpawnInterval:   config.AISpawnInterval,
		UnitCap:         config.AIUnitCap,
	}
}

// Update: раз в SpawnInterval, если живых юнитов противника меньше UnitCap,
// ИИ выставляет один юнит случайного вида по весам таблицы.
func (s *SpawnSystem) Update(deltaTime float64) {
	s.SpawnTimer += deltaTime
	if s.SpawnTimer < s.SpawnInterval {
		return
	}
	s.SpawnTimer = 0

	if !s.HasRoom(defs.TeamEnemy) {
		return
	}
	s.SpawnUnit(defs.TeamEnemy, s.rng.ChooseWeighted(s.table))
}

// HasRoom — лимит численности действует только на ИИ.
func (s *SpawnSystem) HasRoom(team defs.Team) bool {
	if team != defs.TeamEnemy {
		return true
	}
	return s.world.CountAlive(team) < s.UnitCap
}

// SpawnUnit ставит юнита у замка команды без проверок энергии и лимита.
func (s *SpawnSystem) SpawnUnit(team defs.Team, kind defs.UnitKind) *component.Unit {
	def, ok := defs.LookupUnit(kind)
	if !ok {
		log.Printf("SpawnSystem: unknown unit kind %q", kind)
		return nil
	}

	u := s.world.AddUnit(team, def)
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.UnitSpawned,
			Data: event.UnitInfo{ID: u.ID, Team: team, Kind: kind, X: u.X},
		})
	}
	return u
}

func (s *SpawnSystem) Reset() {
	s.SpawnTimer = 0
}
