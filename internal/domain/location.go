package domain

// Location identifies a node of the delivery network.
// It carries no attributes beyond its identity.
type Location string

// Represents a weighted, undirected link between two locations.
// TravelTime is expressed in minutes and must be positive.
type Edge struct {
	From       Location
	To         Location
	TravelTime float64
}
