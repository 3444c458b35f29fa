package engine

import (
	"oci_kiosk/model"
)

// TreeIndex is an arena over the nested node forest: every node keyed by id
// with an explicit parent link, so "find node" and "find parent" are O(1)
// lookups instead of tree walks.
type TreeIndex struct {
	nodes  map[string]*model.Node
	parent map[string]string
	roots  []*model.Node
}

// NewTreeIndex walks the forest once. Nil or missing children slices are
// treated as empty; on duplicate ids the first node in depth-first order
// wins, matching first-match search semantics.
func NewTreeIndex(forest []*model.Node) *TreeIndex {
	ix := &TreeIndex{
		nodes:  make(map[string]*model.Node),
		parent: make(map[string]string),
	}

	var walk func(n *model.Node, parentID string)
	walk = func(n *model.Node, parentID string) {
		if n == nil {
			return
		}
		id := n.ID.Hex()
		if _, seen := ix.nodes[id]; seen {
			return
		}
		ix.nodes[id] = n
		if parentID != "" {
			ix.parent[id] = parentID
		}
		for _, c := range n.Children {
			walk(c, id)
		}
	}

	for _, n := range forest {
		if n == nil {
			continue
		}
		walk(n, "")
		if kept, ok := ix.nodes[n.ID.Hex()]; ok && kept == n {
			ix.roots = append(ix.roots, n)
		}
	}
	return ix
}

// Node returns the node with the given id, or nil.
func (ix *TreeIndex) Node(id string) *model.Node {
	return ix.nodes[id]
}

// Parent returns the node whose children contain id, or nil when id belongs
// to a root node or is unknown.
func (ix *TreeIndex) Parent(id string) *model.Node {
	pid, ok := ix.parent[id]
	if !ok {
		return nil
	}
	return ix.nodes[pid]
}

// Roots returns the top-level nodes in input order.
func (ix *TreeIndex) Roots() []*model.Node {
	return ix.roots
}

// Len reports how many nodes the index holds.
func (ix *TreeIndex) Len() int {
	return len(ix.nodes)
}
