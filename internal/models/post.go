package models

import "time"

// PostType discriminates the post variants.
type PostType string

const (
	PostTypeShare     PostType = "share"
	PostTypeSeeking   PostType = "seeking"
	PostTypeCompanion PostType = "companion"
)

// PostStatus is the moderation state of a post.
type PostStatus string

const (
	PostStatusDraft    PostStatus = "draft"
	PostStatusPending  PostStatus = "pending"
	PostStatusApproved PostStatus = "approved"
	PostStatusRejected PostStatus = "rejected"
)

// PostCategory classifies what a post is about.
type PostCategory string

const (
	CategoryFood   PostCategory = "food"
	CategoryRecipe PostCategory = "recipe"
)

// ShareType qualifies a share post as a recommendation or a warning.
type ShareType string

const (
	ShareRecommend ShareType = "recommend"
	ShareWarning   ShareType = "warning"
)

// MeetingStatus is the recruiting state of a companion post.
type MeetingStatus string

const (
	MeetingOpen   MeetingStatus = "open"
	MeetingFull   MeetingStatus = "full"
	MeetingClosed MeetingStatus = "closed"
)

// Limits enforced at the create/update boundary.
const (
	MaxTags   = 10
	MaxImages = 9
)

// ShareDetails is the payload of a share post.
type ShareDetails struct {
	ShareType  ShareType `json:"share_type"`
	Cuisine    string    `json:"cuisine,omitempty"`
	FlavorTags []string  `json:"flavor_tags,omitempty"`
	Price      float64   `json:"price,omitempty"`
}

// SeekingDetails is the payload of a seeking-advice post.
type SeekingDetails struct {
	BudgetMin  float64  `json:"budget_min"`
	BudgetMax  float64  `json:"budget_max"`
	PreferTags []string `json:"prefer_tags,omitempty"`
	AvoidTags  []string `json:"avoid_tags,omitempty"`
}

// MeetingInfo describes the meetup arranged by a companion post.
type MeetingInfo struct {
	Status         MeetingStatus `json:"status"`
	CurrentMembers int           `json:"current_members"`
	MaxMembers     int           `json:"max_members"`
	MeetingTime    time.Time     `json:"meeting_time"`
	ContactMethod  string        `json:"contact_method"`
}

// CompanionDetails is the payload of a meetup companion post.
type CompanionDetails struct {
	Meeting MeetingInfo `json:"meeting_info"`
}

// Post is a tagged union on PostType: exactly one of Share, Seeking or
// Companion is non-nil, matching PostType.
type Post struct {
	ID       string       `json:"id"`
	PostType PostType     `json:"post_type"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Category PostCategory `json:"category"`
	Canteen  string       `json:"canteen,omitempty"`
	Tags     []string     `json:"tags,omitempty"`
	Images   []string     `json:"images,omitempty"`

	Share     *ShareDetails     `json:"share,omitempty"`
	Seeking   *SeekingDetails   `json:"seeking,omitempty"`
	Companion *CompanionDetails `json:"companion,omitempty"`

	AuthorID string `json:"author_id"`
	Author   *User  `json:"author,omitempty"`

	LikeCount     int `json:"like_count"`
	FavoriteCount int `json:"favorite_count"`
	CommentCount  int `json:"comment_count"`
	ViewCount     int `json:"view_count"`

	// Viewer-scoped flags; computed per request, never stored.
	IsLiked     bool `json:"is_liked"`
	IsFavorited bool `json:"is_favorited"`

	Status     PostStatus `json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote string     `json:"review_note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeTags deduplicates tags preserving first occurrence and caps the
// list at MaxTags.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}

// Normalize cleans cross-variant payloads and shared collections in place.
// Fields that do not belong to the active variant are dropped silently; they
// are not an error at the create/update boundary.
func (p *Post) Normalize() {
	p.Tags = NormalizeTags(p.Tags)
	if len(p.Images) > MaxImages {
		p.Images = p.Images[:MaxImages]
	}
	switch p.PostType {
	case PostTypeShare:
		p.Seeking, p.Companion = nil, nil
	case PostTypeSeeking:
		p.Share, p.Companion = nil, nil
	case PostTypeCompanion:
		p.Share, p.Seeking = nil, nil
	}
}

// Validate checks the post structurally per its active variant. It is called
// after Normalize and before any store mutation.
func (p *Post) Validate() error {
	if p.Title == "" {
		return NewValidationError("title is required")
	}
	if p.Content == "" {
		return NewValidationError("content is required")
	}
	switch p.Category {
	case CategoryFood, CategoryRecipe:
	default:
		return NewValidationError("category must be food or recipe")
	}

	switch p.PostType {
	case PostTypeShare:
		if p.Share == nil {
			return NewValidationError("share post requires share details")
		}
		switch p.Share.ShareType {
		case ShareRecommend, ShareWarning:
		default:
			return NewValidationError("share_type must be recommend or warning")
		}
		if p.Share.Price < 0 {
			return NewValidationError("price must not be negative")
		}
		if len(p.Images) == 0 {
			return NewValidationError("share post requires at least one image")
		}
	case PostTypeSeeking:
		if p.Seeking == nil {
			return NewValidationError("seeking post requires seeking details")
		}
		if p.Seeking.BudgetMin < 0 {
			return NewValidationError("budget_min must not be negative")
		}
		if p.Seeking.BudgetMax < p.Seeking.BudgetMin {
			return NewValidationError("budget_max must not be below budget_min")
		}
	case PostTypeCompanion:
		if p.Companion == nil {
			return NewValidationError("companion post requires meeting_info")
		}
		m := p.Companion.Meeting
		switch m.Status {
		case MeetingOpen, MeetingFull, MeetingClosed:
		default:
			return NewValidationError("meeting status must be open, full or closed")
		}
		if m.MaxMembers < 1 {
			return NewValidationError("max_members must be at least 1")
		}
		if m.CurrentMembers < 0 || m.CurrentMembers > m.MaxMembers {
			return NewValidationError("current_members must be between 0 and max_members")
		}
		if m.ContactMethod == "" {
			return NewValidationError("contact_method is required")
		}
	default:
		return NewValidationError("invalid post_type")
	}
	return nil
}
