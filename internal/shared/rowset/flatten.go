// Package rowset rebuilds nested parent/children structures from the flat
// rows of a one-to-many LEFT JOIN.
package rowset

// Row is one row of a parent ⋈ child result. Child is nil when the parent
// has no children (the LEFT JOIN null row).
type Row[K comparable, P any] struct {
	Key    K
	Parent P
	Child  *string
}

// Group is one parent together with the children collected for it.
type Group[P any] struct {
	Parent   P
	Children []string
}

// Flatten groups rows by Key.
//
// Groups appear in order of the first occurrence of their key, children in
// order of occurrence. Children is never nil. Null children are skipped, so a
// stray null row for a parent that already has children adds nothing.
// Parent fields are taken from the first row of each key.
func Flatten[K comparable, P any](rows []Row[K, P]) []Group[P] {
	out := make([]Group[P], 0, len(rows))
	index := make(map[K]int, len(rows))

	for _, r := range rows {
		i, seen := index[r.Key]
		if !seen {
			i = len(out)
			index[r.Key] = i
			out = append(out, Group[P]{Parent: r.Parent, Children: []string{}})
		}
		if r.Child != nil {
			out[i].Children = append(out[i].Children, *r.Child)
		}
	}
	return out
}
