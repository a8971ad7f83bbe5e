package expr

import "bytes"

// Walk visits node and its descendants in pre-order. If fn returns false the
// children of that node are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Pipe:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Redirect:
		Walk(n.Inner, fn)
	}
}

// Commands returns the command leaves of the tree from left to right.
func Commands(node Node) []*Command {
	var out []*Command
	Walk(node, func(n Node) bool {
		if cmd, ok := n.(*Command); ok {
			out = append(out, cmd)
		}
		return true
	})
	return out
}

// Equal reports whether two trees have the same shape and values.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Command:
		b, ok := b.(*Command)
		if !ok || a.Program != b.Program || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if a.Args[i] != b.Args[i] {
				return false
			}
		}
		return true
	case *Pipe:
		b, ok := b.(*Pipe)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Redirect:
		b, ok := b.(*Redirect)
		return ok && kindEqual(a.Kind, b.Kind) && Equal(a.Inner, b.Inner)
	case nil:
		return b == nil
	default:
		return false
	}
}

func kindEqual(a, b RedirectKind) bool {
	if ab, ok := a.(StdinBytes); ok {
		bb, ok := b.(StdinBytes)
		return ok && bytes.Equal(ab.Bytes, bb.Bytes)
	}
	return a == b
}
