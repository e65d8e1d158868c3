package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusColorMapping(t *testing.T) {
	assert.Equal(t, Success, StatusColor("completed"))
	assert.Equal(t, Primary, StatusColor("in-progress"))
	assert.Equal(t, Secondary, StatusColor("ready"))
	assert.Equal(t, TextDim, StatusColor("collecting-info"))
	assert.Equal(t, TextDim, StatusColor("anything-else"))
}
