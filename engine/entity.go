package engine

// Entity is a unique identifier for an entity
type Entity uint64
