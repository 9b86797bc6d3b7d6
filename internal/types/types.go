// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в мире.
// Ноль означает «нет сущности».
type EntityID uint64
