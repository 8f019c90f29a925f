// internal/types/types.go
package types

// EntityID - идентификатор сущности (башни, врага, снаряда).
// Выдаётся монотонно и никогда не переиспользуется.
type EntityID uint64
