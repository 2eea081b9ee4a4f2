// Package merge implements the lossless reconciliation of two copies of
// application state. All functions are pure: they never fail on well-typed
// input and have no side effects.
package merge

// Keyed is implemented by identity-keyed list items. Keys are assigned at
// creation and never reassigned.
type Keyed interface {
	Key() string
}

// Lists union-merges two identity-keyed collections. The result contains
// every key from both sides exactly once; a key present on both sides
// resolves to the local item.
//
// Ordering follows ordered-map insertion with remote inserted first: shared
// keys keep the remote item's position (holding the local value), items only
// on the local side append after all remote-origin items. This is not
// chronological or display order; consumers that care must re-sort.
// Duplicate keys within a single side resolve last-write-wins.
func Lists[T Keyed](local, remote []T) []T {
	if len(remote) == 0 {
		return dedupe(local)
	}
	if len(local) == 0 {
		return dedupe(remote)
	}

	out := make([]T, 0, len(remote)+len(local))
	index := make(map[string]int, len(remote)+len(local))

	insert := func(item T) {
		k := item.Key()
		if at, ok := index[k]; ok {
			out[at] = item
			return
		}
		index[k] = len(out)
		out = append(out, item)
	}

	for _, item := range remote {
		insert(item)
	}
	for _, item := range local {
		insert(item)
	}

	return out
}

// DayLists merges two date-keyed mappings of item collections. The result's
// key set is the union of both inputs; a date missing from one side is
// treated as an empty collection, so the other side's items survive
// untouched.
func DayLists[T Keyed](local, remote map[string][]T) map[string][]T {
	if local == nil && remote == nil {
		return nil
	}

	out := make(map[string][]T, len(local)+len(remote))
	for date, items := range remote {
		out[date] = Lists(local[date], items)
	}
	for date, items := range local {
		if _, done := remote[date]; done {
			continue
		}
		out[date] = Lists(items, nil)
	}
	return out
}

func dedupe[T Keyed](items []T) []T {
	out := make([]T, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if at, ok := index[item.Key()]; ok {
			out[at] = item
			continue
		}
		index[item.Key()] = len(out)
		out = append(out, item)
	}
	return out
}
