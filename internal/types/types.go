// internal/types/types.go
package types

// EntityID — идентификатор сущности в мире. 0 - "нет сущности".
type EntityID uint32
