package lint

// Collection is a named group of rules or other collections. Requesting a
// collection's code runs every concrete rule reachable through its members.
type Collection struct {
	// Code is the unique identifier for this collection (e.g., "recommended").
	Code string

	// Description is a human-readable summary of the collection's intent.
	Description string

	// Members lists the codes of the rules or collections this collection
	// expands to.
	Members []string
}
