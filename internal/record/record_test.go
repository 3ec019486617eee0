package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnsUnionAndOrder(t *testing.T) {
	rs := ResultSet{
		{FileNameKey: "a.pdf", "Zeta": "1", "Alpha": "2"},
		{FileNameKey: "b.pdf", "Mid": nil},
	}
	assert.Equal(t, []string{FileNameKey, "Alpha", "Mid", "Zeta"}, Columns(rs))
}

func TestColumnsEmpty(t *testing.T) {
	assert.Equal(t, []string{FileNameKey}, Columns(nil))
}
