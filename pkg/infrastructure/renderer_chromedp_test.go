package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperByName(t *testing.T) {
	p, err := PaperByName("Letter")
	require.NoError(t, err)
	assert.Equal(t, PaperLetter, p)

	p, err = PaperByName("a4")
	require.NoError(t, err)
	assert.Equal(t, PaperA4, p)

	p, err = PaperByName("")
	require.NoError(t, err)
	assert.Equal(t, PaperLetter, p)

	_, err = PaperByName("tabloid")
	assert.Error(t, err)
}

func TestNewChromedpRendererDefaults(t *testing.T) {
	r := NewChromedpRenderer("", Paper{}, 0)
	assert.Equal(t, PaperLetter, r.paper)
	assert.Equal(t, time.Minute, r.timeout)

	withPath := NewChromedpRenderer("/opt/chrome", PaperA4, time.Second)
	assert.Len(t, withPath.execOptions(), len(r.execOptions())+1)
}
