package localstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/domain/catalogs/product"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestReadMissingCollection(t *testing.T) {
	s := newStore(t)

	var items []*product.Product
	require.NoError(t, s.Read("products", &items))
	assert.Empty(t, items)
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	p := product.NewProduct("P001", "Cuchilla")
	require.NoError(t, s.SaveProducts(ctx, []*product.Product{p}))

	items, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ID)
	assert.Equal(t, "Cuchilla", items[0].Name)
}

func TestLargeSnapshotIsCompressed(t *testing.T) {
	s := newStore(t)

	// Well above the 10KB threshold once marshalled.
	big := strings.Repeat("cuchilla desmalezadora ", 2000)
	require.NoError(t, s.Write("blob", big))

	raw, err := os.ReadFile(filepath.Join(s.dir, "blob.json"))
	require.NoError(t, err)
	assert.Equal(t, zstdMagic, raw[:4], "snapshot should carry the zstd magic")
	assert.Less(t, len(raw), len(big))

	var got string
	require.NoError(t, s.Read("blob", &got))
	assert.Equal(t, big, got)
}

func TestSmallSnapshotStaysPlain(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write("tiny", map[string]string{"k": "v"}))

	raw, err := os.ReadFile(filepath.Join(s.dir, "tiny.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{"))
}

func TestMigrationFlag(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	done, err := s.Done(ctx)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, s.MarkDone(ctx))

	done, err = s.Done(ctx)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestMergedProducts_LocalWins(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	shared := product.NewProduct("P001", "Remote name")
	localOnly := product.NewProduct("P002", "Local only")

	localShared := *shared
	localShared.Name = "Local name"
	require.NoError(t, s.SaveProducts(ctx, []*product.Product{&localShared, localOnly}))

	remoteOnly := product.NewProduct("P003", "Remote only")
	merged, err := s.MergedProducts(ctx, []*product.Product{shared, remoteOnly})
	require.NoError(t, err)

	require.Len(t, merged, 3)
	byCode := map[string]*product.Product{}
	for _, p := range merged {
		byCode[p.Code] = p
	}
	assert.Equal(t, "Local name", byCode["P001"].Name)
	assert.Equal(t, "Remote only", byCode["P003"].Name)
	assert.Equal(t, "Local only", byCode["P002"].Name)
}
