package models

import "time"

// Comment belongs to exactly one post. A nil ParentID marks a top-level
// comment; replies reference a top-level comment and are not nestable
// further, so thread depth is capped at 2.
type Comment struct {
	ID       string  `json:"id"`
	PostID   string  `json:"post_id"`
	ParentID *string `json:"parent_id,omitempty"`
	AuthorID string  `json:"author_id"`
	Author   *User   `json:"author,omitempty"`
	Content  string  `json:"content"`

	// ReplyToUserID is the mentioned user a reply addresses, if any.
	ReplyToUserID  string   `json:"reply_to_user_id,omitempty"`
	MentionedUsers []string `json:"mentioned_users,omitempty"`

	LikeCount  int  `json:"like_count"`
	ReplyCount int  `json:"reply_count"`
	IsLiked    bool `json:"is_liked"`
	// IsAuthor marks comments written by the post's author.
	IsAuthor bool `json:"is_author"`

	Replies []*Comment `json:"replies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsReply reports whether c is a reply to a top-level comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
