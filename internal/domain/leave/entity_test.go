package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	assert.Equal(t, "vacation", Canonical("pto"))
	assert.Equal(t, "vacation", Canonical("annual leave"))
	assert.Equal(t, "sick leave", Canonical("sick"))
	assert.Equal(t, "unpaid leave", Canonical("unpaid"))
	// Unknown labels pass through untouched.
	assert.Equal(t, "jury duty", Canonical("jury duty"))
}

func TestPolicyTableFor(t *testing.T) {
	table := DefaultPolicyTable()

	assert.Equal(t, PolicyNoAdjust, table.For("unpaid leave"))
	assert.Equal(t, PolicyNoAdjust, table.For("leave without pay"))
	assert.Equal(t, PolicyDeduct, table.For("vacation"))
	assert.Equal(t, PolicyDeduct, table.For("sick leave"))
	// Unknown types default to deduction.
	assert.Equal(t, PolicyDeduct, table.For("sabbatical"))
}
