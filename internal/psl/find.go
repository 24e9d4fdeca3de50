package psl

// Find walks the trie over a domain's labels ordered from the TLD inward
// (rightmost label first) and reports the longest matching suffix. It is
// total: with no matching rule the rightmost label alone is the suffix,
// per the list's implicit "*" default, and an empty label sequence
// yields the zero Info.
func (l *List) Find(labels []string) Info {
	return l.FindWhere(labels, nil)
}

// FindWhere is Find restricted to rules whose section type satisfies
// visible. A nil predicate admits every rule. ICANN-only or private-only
// views of the same list are just predicates here, the walk itself never
// changes.
func (l *List) FindWhere(labels []string, visible func(Type) bool) Info {
	var info Info
	if len(labels) == 0 {
		return info
	}
	first := labels[0]
	info.Len = len(first)
	cur, ok := l.root.children[l.key(first)]
	if !ok {
		return info
	}
	if cur.leaf != nil && (visible == nil || visible(cur.leaf.typ)) {
		info.Typ = cur.leaf.typ
	}
	lenSoFar := len(first)
	for _, label := range labels[1:] {
		child, ok := cur.children[l.key(label)]
		if !ok {
			child, ok = cur.children[Wildcard]
		}
		if !ok {
			break
		}
		cur = child
		lenSoFar += 1 + len(label)
		if cur.leaf == nil {
			continue
		}
		if visible != nil && !visible(cur.leaf.typ) {
			continue
		}
		if cur.leaf.exception {
			// the excepted label is not part of the suffix
			info.Len = lenSoFar - len(label) - 1
			info.Typ = cur.leaf.typ
			break
		}
		info.Len = lenSoFar
		info.Typ = cur.leaf.typ
	}
	return info
}
