package value

// CommentPlacement indicates where a collected comment sits relative to
// the Value it is attached to.
type CommentPlacement uint8

const (
	// CommentBefore is a comment that appeared before the value.
	CommentBefore CommentPlacement = iota
	// CommentAfterOnSameLine is a comment on the same source line, after
	// the value.
	CommentAfterOnSameLine
	// CommentAfter is a comment on a later line, before the next sibling
	// or EOF.
	CommentAfter

	numCommentPlacements
)

// comments holds the up-to-three comment slots a Value may carry. The zero
// value means no comments.
type comments [numCommentPlacements]string

func (c comments) has(p CommentPlacement) bool {
	return c[p] != ""
}
