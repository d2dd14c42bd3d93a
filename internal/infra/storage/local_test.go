package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutAndDelete(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root)
	require.NoError(t, err)

	ctx := context.Background()
	key, err := s.Put(ctx, FolderPaymentProofs, "proof.png", "image/png", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "payment-proofs/proof.png", key)

	got, err := os.ReadFile(filepath.Join(root, "payment-proofs", "proof.png"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))

	require.NoError(t, s.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(root, "payment-proofs", "proof.png"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(ctx, key), "deleting twice is not an error")
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, s.Delete(context.Background(), "../outside.txt"))
}

func TestLocalStorage_PutStripsDirectories(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root)
	require.NoError(t, err)

	key, err := s.Put(context.Background(), "studios", "../../evil.png", "image/png", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "studios/evil.png", key)
}

func TestObjectName(t *testing.T) {
	a := ObjectName(".PNG")
	b := ObjectName("png")

	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.True(t, strings.HasSuffix(b, ".png"))
	assert.NotEqual(t, a, b)
}
