package shared

// PlayerStatus is the lifecycle state of a stored player
type PlayerStatus string

const (
	PlayerStatusActive PlayerStatus = "active"
	PlayerStatusDead   PlayerStatus = "dead"
)
