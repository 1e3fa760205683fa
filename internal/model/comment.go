package model

// Comment is a remark left on a footprint. ParentID references
// another comment on the same footprint when the comment is a reply;
// it is nil for top-level comments. Storage cascades comments away
// with their footprint, author and parent.
//
// Fields:
//  ID          – primary key identifier.
//  FootprintID – the footprint being commented on.
//  UserID      – comment author.
//  Content     – comment body (required).
//  ParentID    – optional parent comment for threading.
//  CreatedAt   – server-assigned creation timestamp.
type Comment struct {
	ID          int64  `json:"comment_id"`          // comments.comment_id
	FootprintID int64  `json:"footprint_id"`        // comments.footprint_id
	UserID      int64  `json:"user_id"`             // comments.user_id
	Content     string `json:"content"`             // comments.content
	ParentID    *int64 `json:"parent_id,omitempty"` // comments.parent_id (nullable)
	CreatedAt   string `json:"created_at"`          // comments.created_at
}

// CommentDetail joins a comment with its author username for
// rendering under a footprint.
type CommentDetail struct {
	Comment
	Username string `json:"username"`
}
