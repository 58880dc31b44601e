package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty([]string{"a"}))
}
