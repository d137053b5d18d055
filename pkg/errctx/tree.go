package errctx

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Node is the structured form of an ErrorMessage. Every Cause is either nil
// or another Node, also when the chain ends in a foreign error.
type Node struct {
	Message string `json:"message"`
	Cause   *Node  `json:"cause"`
}

// Tree converts the chain into nested Nodes. A foreign terminal cause
// becomes a Node carrying its Error text and no cause.
func (e *ErrorMessage) Tree() *Node {
	return e.tree(func(err error) string { return err.Error() })
}

// verboseTree is the tree printed by %+v; a foreign leaf keeps its verbose form.
func (e *ErrorMessage) verboseTree() *Node {
	return e.tree(foreignText)
}

func (e *ErrorMessage) tree(leaf func(error) string) *Node {
	if e == nil {
		return nil
	}

	root := &Node{Message: e.message}
	cur := root
	for n := e; n != nil; n = n.next {
		switch {
		case n.next != nil:
			cur.Cause = &Node{Message: n.next.message}
			cur = cur.Cause
		case n.foreign != nil:
			cur.Cause = &Node{Message: leaf(n.foreign)}
		}
	}
	return root
}

// Depth counts the nodes of the tree.
func (n *Node) Depth() int {
	depth := 0
	for ; n != nil; n = n.Cause {
		depth++
	}
	return depth
}

// String is the nested field-by-field dump used by verbose debug output:
//
//	ErrorMessage{message: "a", cause: ErrorMessage{message: "b", cause: nil}}
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}

	var sb strings.Builder
	depth := 0
	for cur := n; cur != nil; cur = cur.Cause {
		sb.WriteString("ErrorMessage{message: ")
		sb.WriteString(strconv.Quote(cur.Message))
		sb.WriteString(", cause: ")
		depth++
	}
	sb.WriteString("nil")
	sb.WriteString(strings.Repeat("}", depth))
	return sb.String()
}

// FromTree rebuilds a chain from its structured form. The result consists
// of ErrorMessages only; the text of a former foreign cause is kept as the
// message of the last node.
func FromTree(n *Node) *ErrorMessage {
	if n == nil {
		return nil
	}

	root := New(n.Message)
	cur := root
	for c := n.Cause; c != nil; c = c.Cause {
		cur.next = New(c.Message)
		cur = cur.next
	}
	return root
}

// MarshalJSON encodes the chain as nested {"message": ..., "cause": ...}
// objects, with "cause": null at the end.
func (e *ErrorMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Tree())
}

// UnmarshalJSON decodes the MarshalJSON form. It is meant for freshly
// declared values; a decoded message replaces the receiver's whole chain.
func (e *ErrorMessage) UnmarshalJSON(data []byte) error {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return WithCause("failed to decode error message", err)
	}

	*e = *FromTree(&n)
	return nil
}
