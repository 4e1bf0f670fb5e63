package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string
	Name string
}

func (r record) Key() string { return r.ID }

func TestLocalWins(t *testing.T) {
	remote := []record{{ID: "a", Name: "X"}}
	local := []record{{ID: "a", Name: "Y"}, {ID: "b", Name: "Z"}}

	merged := LocalWins(remote, local)

	require.Len(t, merged, 2)
	assert.Equal(t, record{ID: "a", Name: "Y"}, merged[0], "local overwrites on shared id")
	assert.Equal(t, record{ID: "b", Name: "Z"}, merged[1], "local-only entity retained")
}

func TestLocalWinsRemoteOnly(t *testing.T) {
	remote := []record{{ID: "a", Name: "X"}, {ID: "b", Name: "Y"}}

	merged := LocalWins(remote, nil)

	assert.Equal(t, remote, merged)
}

func TestLocalWinsEmptyRemote(t *testing.T) {
	// A fully absent remote collection behaves like an empty one.
	local := []record{{ID: "a", Name: "X"}}

	merged := LocalWins(nil, local)

	assert.Equal(t, local, merged)
}

func TestLocalWinsFunc(t *testing.T) {
	type plain struct{ ID, V string }

	remote := []plain{{"a", "remote"}}
	local := []plain{{"a", "local"}}

	merged := LocalWinsFunc(remote, local, func(p plain) string { return p.ID })

	require.Len(t, merged, 1)
	assert.Equal(t, "local", merged[0].V)
}
