package psl

import "strings"

// Wildcard is the label that matches any single label during lookup when
// no exact child exists at that position.
const Wildcard = "*"

// keyFunc maps a raw label onto its child-map key. exactKey keeps the
// label bytes as-is, foldKey lowercases them so that mixed-case input
// matches without callers pre-lowercasing. The policy is fixed at
// construction time; build and lookup always share the same one.
type keyFunc func(label string) string

func exactKey(label string) string { return label }

func foldKey(label string) string { return strings.ToLower(label) }

type leaf struct {
	exception bool
	typ       Type
}

type node struct {
	children map[string]*node
	leaf     *leaf
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// insert adds one rule. Labels are given in reading order but walked
// from the rightmost label, so lookups can consume a domain's labels in
// the same right-to-left direction without backtracking.
func (n *node) insert(key keyFunc, labels []string, lf leaf) {
	cur := n
	for i := len(labels) - 1; i >= 0; i-- {
		k := key(labels[i])
		child, ok := cur.children[k]
		if !ok {
			child = newNode()
			cur.children[k] = child
		}
		cur = child
	}
	// last write wins when the same rule appears twice
	cur.leaf = &lf
}
