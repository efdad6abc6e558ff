// Package entities contains domain entities used across the application.
package entities

import "sort"

// CapitalMap maps a US state name to its capital city.
// A validated map always holds exactly 50 entries, one per state.
type CapitalMap map[string]string

// States returns the state names in sorted order. The stable order
// keeps seeded shuffles reproducible; map iteration order is not.
func (m CapitalMap) States() []string {
	states := make([]string, 0, len(m))
	for state := range m {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}

// Capitals returns the capital names in sorted order.
func (m CapitalMap) Capitals() []string {
	capitals := make([]string, 0, len(m))
	for _, capital := range m {
		capitals = append(capitals, capital)
	}
	sort.Strings(capitals)
	return capitals
}
