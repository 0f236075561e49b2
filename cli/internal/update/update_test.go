package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	latest, newer, err := Check("0.0.1")
	require.NoError(t, err)
	assert.True(t, newer)
	assert.Equal(t, latestKnown, latest)

	_, newer, err = Check(latestKnown)
	require.NoError(t, err)
	assert.False(t, newer)

	_, _, err = Check("not-a-version")
	assert.Error(t, err)
}

func TestDownloadURL(t *testing.T) {
	url := DownloadURL("0.2.0")
	assert.Contains(t, url, "v0.2.0")
}
