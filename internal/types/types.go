// internal/types/types.go
package types

// EntityID identifies an enemy, tower or projectile inside one match.
type EntityID uint64
