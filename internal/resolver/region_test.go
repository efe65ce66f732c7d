package resolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vueSource = `<template>
  <div>{{ msg }}</div>
</template>
<script>
export default {
  data() {
    return { msg: 'hi' }
  },
}
</script>

<style>
</style>
`

func TestInEmbeddedRegion(t *testing.T) {
	tests := []struct {
		line int
		want bool
	}{
		{0, false},
		{2, false},
		{3, true},
		{6, true},
		{9, false},
		{12, false},
		{50, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InEmbeddedRegion(vueSource, tt.line, ScriptMarkers), "line %d", tt.line)
	}
}

func TestInEmbeddedRegion_OpenAtThreeCloseAtTen(t *testing.T) {
	lines := make([]string, 14)
	lines[2] = "<script setup>"
	lines[9] = "  </script>"
	text := strings.Join(lines, "\n")

	assert.True(t, InEmbeddedRegion(text, 4, ScriptMarkers))
	assert.False(t, InEmbeddedRegion(text, 11, ScriptMarkers))
}

func TestInEmbeddedRegion_Unbalanced(t *testing.T) {
	text := "<script>\n<script lang=\"ts\">\nx\n</script>\n</script>\ny"
	assert.True(t, InEmbeddedRegion(text, 2, ScriptMarkers))
	assert.False(t, InEmbeddedRegion(text, 5, ScriptMarkers))

	// Close without open.
	assert.False(t, InEmbeddedRegion("</script>\nx", 1, ScriptMarkers))
	// Open never closed.
	assert.True(t, InEmbeddedRegion("<script>\na\nb", 2, ScriptMarkers))
}

func TestInEmbeddedRegion_CustomMarkers(t *testing.T) {
	m := Markers{Open: "<?php", Close: "?>"}
	text := "<html>\n<?php\n$x = 1;\n?>\n</html>"
	assert.True(t, InEmbeddedRegion(text, 2, m))
	assert.False(t, InEmbeddedRegion(text, 4, m))
}

func TestLineIndent(t *testing.T) {
	text := "a\n    b\n\t\tc\r\n  \t d\n"
	require.Equal(t, "", LineIndent(text, 0))
	assert.Equal(t, "    ", LineIndent(text, 1))
	assert.Equal(t, "\t\t", LineIndent(text, 2))
	assert.Equal(t, "  \t ", LineIndent(text, 3))
	assert.Equal(t, "", LineIndent(text, 9))
	assert.Equal(t, "", LineIndent(text, -1))
}
