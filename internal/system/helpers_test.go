package system

import (
	"neon-siege/internal/component"
	"neon-siege/internal/defs"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
)

// placeUnit ставит юнита в заданную точку линии.
func placeUnit(w *entity.World, team defs.Team, kind defs.UnitKind, x float64) *component.Unit {
	u := w.AddUnit(team, defs.UnitLibrary[kind])
	u.X = x
	return u
}

type hitLog struct {
	hits    []event.Hit
	damages []event.CastleDamage
	shots   []event.Shot
}

func (h *hitLog) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Hit:
		h.hits = append(h.hits, data)
	case event.CastleDamage:
		h.damages = append(h.damages, data)
	case event.Shot:
		h.shots = append(h.shots, data)
	}
}

func newRecordingDispatcher() (*event.Dispatcher, *hitLog) {
	d := event.NewDispatcher()
	log := &hitLog{}
	d.SubscribeAll(log, event.HitOccurred, event.CastleDamaged, event.ProjectileFired)
	return d, log
}
