package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"oci_kiosk/model"
)

func makeNode(title string, children ...*model.Node) *model.Node {
	return &model.Node{
		ID:       bson.NewObjectID(),
		Title:    title,
		Children: children,
	}
}

func TestTreeIndexFindsEveryNode(t *testing.T) {
	b := makeNode("B")
	c := makeNode("C")
	a := makeNode("A", b, c)
	d := makeNode("D")
	ix := NewTreeIndex([]*model.Node{a, d})

	for _, n := range []*model.Node{a, b, c, d} {
		assert.Same(t, n, ix.Node(n.ID.Hex()), "lookup of %s", n.Title)
	}
	assert.Equal(t, 4, ix.Len())
	assert.Nil(t, ix.Node(bson.NewObjectID().Hex()))
}

func TestTreeIndexParent(t *testing.T) {
	b := makeNode("B")
	a := makeNode("A", b)
	ix := NewTreeIndex([]*model.Node{a})

	assert.Same(t, a, ix.Parent(b.ID.Hex()), "parent of B is A")
	assert.Nil(t, ix.Parent(a.ID.Hex()), "root node has no parent")
	assert.Nil(t, ix.Parent(bson.NewObjectID().Hex()), "unknown id has no parent")
}

func TestTreeIndexDeepParent(t *testing.T) {
	leaf := makeNode("leaf")
	mid := makeNode("mid", leaf)
	root := makeNode("root", mid)
	ix := NewTreeIndex([]*model.Node{root})

	assert.Same(t, mid, ix.Parent(leaf.ID.Hex()))
	assert.Same(t, root, ix.Parent(mid.ID.Hex()))
}

func TestTreeIndexMalformedInputs(t *testing.T) {
	assert.Equal(t, 0, NewTreeIndex(nil).Len())
	assert.Equal(t, 0, NewTreeIndex([]*model.Node{}).Len())
	assert.Equal(t, 0, NewTreeIndex([]*model.Node{nil}).Len())

	// nil children slice is treated as empty
	n := &model.Node{ID: bson.NewObjectID(), Title: "solo"}
	ix := NewTreeIndex([]*model.Node{n, nil})
	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, []*model.Node{n}, ix.Roots())
}
