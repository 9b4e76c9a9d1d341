// Package randomgen picks random but plausible directory data for tests,
// fixtures and benchmarks.
package randomgen

import (
	"fmt"
	"math/rand"
	"strings"
)

var firstNames = []string{
	"Ada", "Alan", "Dennis", "Donald", "Edsger", "Erika", "Grace", "Jane",
	"John", "Ken", "Leslie", "Linus", "Margaret", "Niklaus", "Pauline", "Rob",
}

var lastNames = []string{
	"Hamilton", "Hopper", "Jones", "Kernighan", "Lamport", "Lawrence",
	"Lovelace", "Mustermann", "Pike", "Ritchie", "Smith", "Thompson",
	"Torvalds", "Turing", "Wirth", "Zuse",
}

// PickFirstName returns a randomly chosen first name.
func PickFirstName() string {
	return firstNames[rand.Intn(len(firstNames))]
}

// PickLastName returns a randomly chosen last name.
func PickLastName() string {
	return lastNames[rand.Intn(len(lastNames))]
}

// PickPhoneNumber returns a randomly chosen phone number in international
// notation.
func PickPhoneNumber() string {
	return fmt.Sprintf("+%d %d %d", 1+rand.Intn(998), 100+rand.Intn(900), 100000+rand.Intn(900000))
}

// PickEmail derives an example email address from the given names plus a
// random suffix, so that two picks for the same person rarely collide.
func PickEmail(firstName string, lastName string) string {
	return strings.ToLower(fmt.Sprintf("%s.%s.%d@example.com", firstName, lastName, rand.Intn(100000)))
}
