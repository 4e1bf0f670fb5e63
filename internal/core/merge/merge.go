// Package merge implements the reconciliation policy between the remote
// store and the local snapshot cache.
//
// The rule is deliberate and uniform across every collection: remote
// entities are taken first, then local entities overwrite on id collision.
// Local edits are never silently discarded, at the cost of possible
// staleness versus the remote store. No timestamp comparison is performed.
package merge

// Identifiable is implemented by anything carrying a stable string key.
type Identifiable interface {
	Key() string
}

// LocalWins merges two collections of the same entity type keyed by id.
// Ids present only remotely are kept, ids present only locally are kept,
// and on collision the local entity wins. Order follows the remote
// collection first, then local-only entities in their original order.
func LocalWins[T Identifiable](remote, local []T) []T {
	byID := make(map[string]T, len(remote)+len(local))
	order := make([]string, 0, len(remote)+len(local))

	for _, e := range remote {
		k := e.Key()
		if _, seen := byID[k]; !seen {
			order = append(order, k)
		}
		byID[k] = e
	}
	for _, e := range local {
		k := e.Key()
		if _, seen := byID[k]; !seen {
			order = append(order, k)
		}
		byID[k] = e
	}

	out := make([]T, 0, len(order))
	for _, k := range order {
		out = append(out, byID[k])
	}
	return out
}

// LocalWinsFunc is LocalWins for types that do not implement Identifiable;
// the key is extracted with keyFn.
func LocalWinsFunc[T any](remote, local []T, keyFn func(T) string) []T {
	byID := make(map[string]T, len(remote)+len(local))
	order := make([]string, 0, len(remote)+len(local))

	for _, e := range remote {
		k := keyFn(e)
		if _, seen := byID[k]; !seen {
			order = append(order, k)
		}
		byID[k] = e
	}
	for _, e := range local {
		k := keyFn(e)
		if _, seen := byID[k]; !seen {
			order = append(order, k)
		}
		byID[k] = e
	}

	out := make([]T, 0, len(order))
	for _, k := range order {
		out = append(out, byID[k])
	}
	return out
}
