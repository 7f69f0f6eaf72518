package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avinay/boutique-journey/store"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".auth_token")
	tokens := store.NewFileTokenStore(path)

	// Missing file reads as no token.
	token, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, tokens.Save("tok-abc"))
	token, err = tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	require.NoError(t, tokens.Clear())
	token, err = tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine.
	require.NoError(t, tokens.Clear())
}
