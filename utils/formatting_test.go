package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", EscapeHTML("a <b> & c"))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "<code>-100123</code>", Code(int64(-100123)))
	assert.Equal(t, "<code>&lt;x&gt;</code>", Code("<x>"))
}

func TestBoldItalic(t *testing.T) {
	assert.Equal(t, "<b>Chat</b>", Bold("Chat"))
	assert.Equal(t, "<i>none</i>", Italic("none"))
}
