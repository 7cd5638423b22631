package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo(t *testing.T) {
	s := "Wall"
	p := To(s)
	require.NotNil(t, p)
	assert.Equal(t, s, *p)
	assert.NotSame(t, &s, p)

	type system string
	sp := To(system("RevitX"))
	assert.Equal(t, system("RevitX"), *sp)
}

func TestBool(t *testing.T) {
	assert.True(t, *Bool(true))
	assert.False(t, *Bool(false))
	assert.NotSame(t, Bool(true), Bool(true))
}
