package memory

import (
	"fmt"
	"time"

	"foodcourt/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

var canteens = []string{"North Canteen", "South Canteen", "Lakeside Hall", "West Court"}

var cuisines = []string{"sichuan", "cantonese", "noodles", "bbq", "dessert"}

var flavorTags = []string{"spicy", "sweet", "sour", "mild", "salty", "numbing"}

// Seed fills the store with deterministic development fixtures. The same
// seed always produces the same users, posts and engagement state, so the
// development backend behaves identically across restarts.
func Seed(store *Store, seed int64) {
	f := gofakeit.New(seed)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	store.mu.Lock()
	defer store.mu.Unlock()

	addUser := func(username string, role models.Role) *models.User {
		u := &models.User{
			ID:        f.UUID(),
			Username:  username,
			Email:     fmt.Sprintf("%s@campus.test", username),
			Password:  "$2a$10$yHZ8QxxuPKwejmF.UY7Vve/jWtdzN9nvSfM3oHZdn4nU3aD3S/MVG", // bcrypt("secret")
			Role:      role,
			Hometown:  f.City(),
			Bio:       f.Sentence(8),
			CreatedAt: base,
			UpdatedAt: base,
		}
		store.users[u.ID] = u
		store.userOrder = append(store.userOrder, u.ID)
		return u
	}

	root := addUser("rootadmin", models.RoleSuperAdmin)
	mod := addUser("moderator", models.RoleAdmin)
	regulars := make([]*models.User, 0, 8)
	for i := 0; i < 8; i++ {
		regulars = append(regulars, addUser(fmt.Sprintf("student%02d", i+1), models.RoleUser))
	}
	_ = root

	addPost := func(i int, author *models.User, p *models.Post) *models.Post {
		p.ID = f.UUID()
		p.AuthorID = author.ID
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		p.UpdatedAt = p.CreatedAt
		store.posts[p.ID] = p
		store.postOrder = append(store.postOrder, p.ID)
		return p
	}

	var posts []*models.Post
	for i := 0; i < 12; i++ {
		author := regulars[i%len(regulars)]
		var p *models.Post
		switch i % 3 {
		case 0:
			p = &models.Post{
				PostType: models.PostTypeShare,
				Title:    fmt.Sprintf("Try the %s at %s", f.RandomString(cuisines), canteens[i%len(canteens)]),
				Content:  f.Paragraph(1, 3, 12, " "),
				Category: models.CategoryFood,
				Canteen:  canteens[i%len(canteens)],
				Tags:     []string{f.RandomString(flavorTags), f.RandomString(flavorTags)},
				Images:   []string{fmt.Sprintf("img/%s.jpg", f.UUID())},
				Share: &models.ShareDetails{
					ShareType:  models.ShareRecommend,
					Cuisine:    f.RandomString(cuisines),
					FlavorTags: []string{f.RandomString(flavorTags)},
					Price:      float64(f.Number(8, 45)),
				},
			}
		case 1:
			lo := float64(f.Number(10, 20))
			p = &models.Post{
				PostType: models.PostTypeSeeking,
				Title:    "Where to eat near " + canteens[i%len(canteens)] + "?",
				Content:  f.Paragraph(1, 2, 10, " "),
				Category: models.CategoryFood,
				Canteen:  canteens[i%len(canteens)],
				Seeking: &models.SeekingDetails{
					BudgetMin:  lo,
					BudgetMax:  lo + float64(f.Number(5, 30)),
					PreferTags: []string{f.RandomString(flavorTags)},
					AvoidTags:  []string{f.RandomString(flavorTags)},
				},
			}
		default:
			p = &models.Post{
				PostType: models.PostTypeCompanion,
				Title:    "Hotpot group on Friday",
				Content:  f.Paragraph(1, 2, 10, " "),
				Category: models.CategoryFood,
				Canteen:  canteens[i%len(canteens)],
				Companion: &models.CompanionDetails{
					Meeting: models.MeetingInfo{
						Status:         models.MeetingOpen,
						CurrentMembers: 1,
						MaxMembers:     f.Number(3, 6),
						MeetingTime:    base.Add(72 * time.Hour),
						ContactMethod:  "wechat:" + f.Username(),
					},
				},
			}
		}
		p.Normalize()
		// Most fixtures are approved so the feed is populated; a few stay
		// pending for the moderation screens.
		if i%4 == 3 {
			p.Status = models.PostStatusPending
		} else {
			p.Status = models.PostStatusApproved
			reviewed := p.CreatedAt.Add(30 * time.Minute)
			p.ReviewedAt = &reviewed
		}
		posts = append(posts, addPost(i, author, p))
	}

	// Engagement: every regular likes a few posts and follows the moderator.
	for i, u := range regulars {
		for j := 0; j < 3; j++ {
			p := posts[(i+j*2)%len(posts)]
			if has(store.postLikes, p.ID, u.ID) {
				continue
			}
			members(store.postLikes, p.ID)[u.ID] = struct{}{}
			p.LikeCount++
		}
		members(store.follows, u.ID)[mod.ID] = struct{}{}
		u.FollowingCount++
		mod.FollowerCount++
	}

	// A short comment thread on the first post.
	first := posts[0]
	top := &models.Comment{
		ID:        f.UUID(),
		PostID:    first.ID,
		AuthorID:  regulars[1].ID,
		Content:   "Seconding this, the portions are huge.",
		CreatedAt: base.Add(2 * time.Hour),
	}
	store.comments[top.ID] = top
	store.commentOrder = append(store.commentOrder, top.ID)
	first.CommentCount++

	reply := &models.Comment{
		ID:            f.UUID(),
		PostID:        first.ID,
		ParentID:      &top.ID,
		AuthorID:      regulars[2].ID,
		Content:       "How long was the queue?",
		ReplyToUserID: regulars[1].ID,
		CreatedAt:     base.Add(3 * time.Hour),
	}
	store.comments[reply.ID] = reply
	store.commentOrder = append(store.commentOrder, reply.ID)
	top.ReplyCount++
	first.CommentCount++
}
