// internal/config/config.go
package config

import "image/color"

const (
	WorldWidth  = 830.0
	WorldHeight = 820.0

	ScreenWidth  = 830
	ScreenHeight = 820

	GroundFactor = 0.22 // ground_y = WorldHeight * GroundFactor
	LaneOffset   = 34.0 // lane_y = ground_y + LaneOffset

	// Шаги симуляции
	FixedStep     = 1.0 / 60.0
	MaxSubStep    = 1.0 / 30.0 // больше за один шаг не интегрируем
	MaxFrameDelta = 0.033      // кадр длиннее обрезается
)

// Замки
const (
	CastleInset      = 48.0 // отступ центра замка от края мира
	CastleWidth      = 95.0
	CastleHeight     = 260.0
	CastleHealth     = 450.0
	CastleBaseOffset = 30.0 // base_y = ground_y + CastleBaseOffset
	MuzzleFactor     = 0.78 // высота дула относительно высоты замка
	SpawnFactor      = 0.70 // юниты появляются на 0.7*w от центра замка
	EnemyWeapon      = "Ballista"
	DefaultWeapon    = "Ballista"
)

// Экономика
const (
	StartEnergy = 40.0
	MaxEnergy   = 120.0
	EnergyRate  = 10.0 // в секунду
)

// Ударный урон (только юнит-юнит и юнит-замок)
const (
	BaseChip        = 2.0
	HitDamageFactor = 0.55
	ImpactK         = 0.035
	ImpactP         = 1.35
	CastleImpactCap = 85.0
	CastleMult      = 0.85

	FormationPad = 0.25
	FlashTime    = 0.08
)

// ИИ противника
const (
	AISpawnInterval = 2.0
	AIUnitCap       = 5
)

// Снаряды
const (
	ProjectileMargin = 120.0 // за пределами мира + отступ снаряд удаляется
)

// Сколько событий держит журнал Game между вызовами DrainEvents
const EventLogCap = 512

// Визуальные эффекты (не влияют на симуляцию)
const (
	MaxParticles       = 220
	ParticleGravity    = 90.0
	ParticleMinSpeed   = 70.0
	ParticleMaxSpeed   = 220.0
	ParticleMinLife    = 0.14
	ParticleMaxLife    = 0.30
	ParticleMinSize    = 2.0
	ParticleMaxSize    = 4.0
	ShakeTimePerHit    = 0.06
	ShakeMagPerHit     = 6.0
	UnitClashStrength  = 0.9
	CastleRamStrength  = 1.2
	ShotUnitStrength   = 0.85
	ShotCastleStrength = 1.0
)

// HUD
const (
	ButtonHeight  = 80
	ButtonMargin  = 10
	ButtonBottom  = 8   // отступ кнопок спавна от нижнего края
	ClickCooldown = 150 // мс

	EnergyBarFactor = 0.64 // ширина полосы энергии от ширины экрана
	EnergyBarHeight = 16

	LoadoutBoxFactor = 0.78
	LoadoutBoxHeight = 108
	LoadoutBoxGap    = 18
	LoadoutTopFactor = 0.60 // низ первой карточки оружия, доля высоты снизу
	StartLineFactor  = 0.10 // строка "старт", доля высоты снизу
	StartHalfHeight  = 26
)

var (
	BackgroundColor = color.RGBA{8, 10, 14, 255}
	GroundColor     = color.RGBA{10, 13, 18, 255}
	LaneShadowColor = color.RGBA{0, 0, 0, 64}
	LaneLineColor   = color.RGBA{64, 242, 217, 89}
	CastleBodyColor = color.RGBA{5, 8, 13, 235}
	CastleRoofColor = color.RGBA{10, 15, 26, 242}
	HPBackColor     = color.RGBA{5, 5, 8, 217}
	TextLightColor  = color.RGBA{255, 255, 255, 190}
	DimmedColor     = color.RGBA{89, 102, 115, 255}

	// Цвета команд: 0 - игрок, 1 - противник
	TeamGlow = []color.RGBA{
		{64, 242, 217, 255},
		{255, 89, 140, 255},
	}
	ProjectileColors = []color.RGBA{
		{242, 242, 255, 255},
		{255, 204, 64, 255},
	}

	// Цвета юнитов по команде и виду
	UnitColors = []map[string]color.RGBA{
		{
			"striker": {77, 255, 217, 255},
			"brute":   {140, 217, 255, 255},
			"tank":    {166, 179, 255, 255},
		},
		{
			"striker": {255, 89, 140, 255},
			"brute":   {255, 140, 115, 255},
			"tank":    {255, 179, 89, 255},
		},
	}

	OverlayColor = color.RGBA{0, 0, 0, 140}
	StartColor   = color.RGBA{77, 255, 77, 230}
	PanelColor   = color.RGBA{5, 8, 13, 235}

	// Искры
	ClashSparkColor  = color.RGBA{242, 242, 255, 255}
	CastleSparkColor = color.RGBA{255, 217, 89, 255}
	ShotSparkColor   = color.RGBA{255, 242, 153, 255}

	VictoryColor = color.RGBA{64, 242, 217, 217}
	DefeatColor  = color.RGBA{255, 64, 115, 217}
)

// GroundY — уровень земли в мировых координатах (ось y вверх).
func GroundY() float64 {
	return WorldHeight * GroundFactor
}

// LaneY — высота линии, по которой ходят юниты.
func LaneY() float64 {
	return GroundY() + LaneOffset
}
