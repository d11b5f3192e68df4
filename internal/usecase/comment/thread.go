package comment

import (
	"cmp"
	"slices"

	"github.com/Guyuepp/blog-discussion/domain"
)

// AssembleThread nests replies under their top-level parent.
// Top-level comments come newest first, replies oldest first. Replies whose parent is not among
// the top-level comments are dropped. A comment ID seen twice is kept once.
func AssembleThread(comments []*domain.Comment) []*domain.ThreadNode {
	seen := make(map[string]bool, len(comments))
	roots := make([]*domain.ThreadNode, 0, len(comments))
	byID := make(map[string]*domain.ThreadNode, len(comments))
	var replies []*domain.Comment

	for _, c := range comments {
		if c == nil || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		if c.IsTopLevel() {
			node := &domain.ThreadNode{Comment: c, Replies: []*domain.ThreadNode{}}
			roots = append(roots, node)
			byID[c.ID] = node
			continue
		}
		replies = append(replies, c)
	}

	for _, r := range replies {
		parent, ok := byID[r.ParentID]
		if !ok {
			continue
		}
		parent.Replies = append(parent.Replies, &domain.ThreadNode{Comment: r, Replies: []*domain.ThreadNode{}})
	}

	slices.SortFunc(roots, func(a, b *domain.ThreadNode) int {
		return -compareCreated(a.Comment, b.Comment)
	})
	for _, root := range roots {
		slices.SortFunc(root.Replies, func(a, b *domain.ThreadNode) int {
			return compareCreated(a.Comment, b.Comment)
		})
	}
	return roots
}

// compareCreated orders by creation time, falling back to ID so equal timestamps stay deterministic.
func compareCreated(a, b *domain.Comment) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// CountNodes returns the number of comments in a thread, replies included.
func CountNodes(thread []*domain.ThreadNode) int {
	n := 0
	for _, node := range thread {
		n += 1 + len(node.Replies)
	}
	return n
}
