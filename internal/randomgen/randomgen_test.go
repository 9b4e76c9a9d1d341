package randomgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPickNames verifies that the pickers only return names from the known
// pools.
func TestPickNames(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Contains(t, firstNames, PickFirstName())
		assert.Contains(t, lastNames, PickLastName())
	}
}

// TestPickPhoneNumber verifies the international notation of picked numbers.
func TestPickPhoneNumber(t *testing.T) {
	format := regexp.MustCompile(`^\+\d{1,3} \d{3} \d{6}$`)
	for i := 0; i < 100; i++ {
		number := PickPhoneNumber()
		assert.Regexp(t, format, number)
	}
}

// TestPickEmail verifies that derived addresses are lowercase and carry the
// names they were derived from.
func TestPickEmail(t *testing.T) {
	email := PickEmail("Erika", "Mustermann")
	assert.Regexp(t, `^erika\.mustermann\.\d+@example\.com$`, email)
}
