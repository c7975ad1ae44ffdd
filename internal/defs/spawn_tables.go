// internal/defs/spawn_tables.go
package defs

// SpawnEntry — одна запись таблицы спавна ИИ.
// Weight — относительный шанс выбора вида юнита.
type SpawnEntry struct {
	Kind   UnitKind
	Weight int
}

// EnemySpawnTable — веса видов юнитов для ИИ противника (45% / 37% / 18%).
var EnemySpawnTable = []SpawnEntry{
	{Kind: KindStriker, Weight: 45},
	{Kind: KindBrute, Weight: 37},
	{Kind: KindTank, Weight: 18},
}
