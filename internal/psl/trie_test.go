package psl

import "testing"

func TestInsertReversesLabels(t *testing.T) {
	root := newNode()
	root.insert(exactKey, []string{"co", "uk"}, leaf{typ: TypeICANN})

	uk, ok := root.children["uk"]
	if !ok {
		t.Fatal("expected the rightmost label to become the root's direct child")
	}
	if uk.leaf != nil {
		t.Fatal("intermediate node must not carry a leaf")
	}
	co, ok := uk.children["co"]
	if !ok {
		t.Fatal("expected co under uk")
	}
	if co.leaf == nil || co.leaf.typ != TypeICANN || co.leaf.exception {
		t.Fatalf("unexpected terminal leaf: %+v", co.leaf)
	}
}

func TestInsertLastWriteWins(t *testing.T) {
	root := newNode()
	root.insert(exactKey, []string{"example", "com"}, leaf{typ: TypeICANN})
	root.insert(exactKey, []string{"example", "com"}, leaf{typ: TypePrivate})

	got := root.children["com"].children["example"].leaf
	if got == nil || got.typ != TypePrivate {
		t.Fatalf("expected the later insertion to overwrite, got %+v", got)
	}
}

func TestFoldKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ExAmple", "example"},
		{"COM", "com"},
		{"already-lower", "already-lower"},
	}
	for _, tt := range tests {
		if got := foldKey(tt.in); got != tt.want {
			t.Errorf("foldKey(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
