package services

import (
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"oci_kiosk/model"
)

// BuildTree nests a flat node list into the forest served by /api/nodes/tree.
// Nodes whose parent is missing from the list are treated as roots rather
// than dropped. Sibling order follows (order, _id).
func BuildTree(flat []model.Node) []*model.Node {
	byID := make(map[bson.ObjectID]*model.Node, len(flat))
	for i := range flat {
		n := flat[i]
		n.Children = []*model.Node{}
		byID[n.ID] = &n
	}

	var roots []*model.Node
	for i := range flat {
		n := byID[flat[i].ID]
		if n.Parent != nil {
			if parent, ok := byID[*n.Parent]; ok {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}

	sortSiblings(roots)
	for _, n := range byID {
		sortSiblings(n.Children)
	}
	return roots
}

// SubtreeIDs returns id plus every descendant id, walking the flat parent
// links. Used by node delete to cascade.
func SubtreeIDs(flat []model.Node, id bson.ObjectID) []bson.ObjectID {
	children := make(map[bson.ObjectID][]bson.ObjectID, len(flat))
	for i := range flat {
		if p := flat[i].Parent; p != nil {
			children[*p] = append(children[*p], flat[i].ID)
		}
	}

	ids := []bson.ObjectID{id}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, children[ids[i]]...)
	}
	return ids
}

// MediaKeys collects every S3 key referenced by a node so delete can clean up
// the bucket.
func MediaKeys(n *model.Node) []string {
	var keys []string
	add := func(k string) {
		if k != "" {
			keys = append(keys, k)
		}
	}

	if n.Video != nil {
		add(n.Video.S3Key)
		if n.Video.Subtitle != nil {
			add(n.Video.Subtitle.S3Key)
		}
	}
	if a := n.Action; a != nil {
		add(a.S3Key)
		for _, img := range a.Images {
			add(img.S3Key)
		}
		if a.Subtitle != nil {
			add(a.Subtitle.S3Key)
		}
		if a.Popup != nil {
			add(a.Popup.S3Key)
		}
	}
	return keys
}

func sortSiblings(nodes []*model.Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Order != nodes[j].Order {
			return nodes[i].Order < nodes[j].Order
		}
		return nodes[i].ID.Hex() < nodes[j].ID.Hex()
	})
}
