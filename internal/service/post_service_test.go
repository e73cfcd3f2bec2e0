package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"forumapp/internal/cache"
	"forumapp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostServiceForTest(postRepo *postRepoStub, forumRepo *forumRepoStub) *PostService {
	return NewPostService(postRepo, forumRepo, cache.NewRecentPosts())
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := newPostServiceForTest(noopPostRepo(), noopForumRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"empty title", "", "some content"},
		{"whitespace title", "   ", "some content"},
		{"title too long", strings.Repeat("t", 501), "some content"},
		{"empty content", "a title", ""},
		{"content too long", "a title", strings.Repeat("c", 4001)},
		{"multibyte title too long", strings.Repeat("é", 501), "some content"},
		{"multibyte content too long", "a title", strings.Repeat("猫", 4001)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreatePost(ctx, CreatePostInput{
				UserID:  "user-1",
				ForumID: 1,
				Title:   tt.title,
				Content: tt.content,
			})
			assertValidationError(t, err)
		})
	}
}

func TestPostService_CreatePost_MultibyteWithinBounds(t *testing.T) {
	t.Parallel()

	// 500 three-byte runes exceed the limit in bytes but not in characters.
	title := strings.Repeat("猫", 500)
	postRepo := noopPostRepo()
	svc := newPostServiceForTest(postRepo, noopForumRepo())

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  "user-1",
		ForumID: 1,
		Title:   title,
		Content: strings.Repeat("é", 4000),
	})
	require.NoError(t, err)
}

func TestPostService_CreatePost_UnknownForum(t *testing.T) {
	t.Parallel()

	forumRepo := noopForumRepo()
	forumRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Forum, error) {
		return nil, nil
	}
	svc := newPostServiceForTest(noopPostRepo(), forumRepo)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  "user-1",
		ForumID: 99,
		Title:   "a title",
		Content: "some content",
	})
	assertValidationError(t, err)
}

func TestPostService_CreatePost_Success(t *testing.T) {
	t.Parallel()

	var created *models.Post
	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 7
		created = p
		return nil
	}
	svc := newPostServiceForTest(postRepo, noopForumRepo())

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  "user-1",
		ForumID: 3,
		Title:   "  a title  ",
		Content: "some content",
	})
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, uint(7), post.ID)
	assert.Equal(t, "a title", created.Title)
	assert.Equal(t, uint(3), created.ForumID)
	assert.Equal(t, "user-1", created.CreatedBy)
}

func TestPostService_UpdatePost_Ownership(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("post not found", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return nil, nil
		}
		svc := newPostServiceForTest(postRepo, noopForumRepo())
		err := svc.UpdatePost(ctx, UpdatePostInput{
			UserID: "user-1", PostID: 1, Title: "t", Content: "c",
		})
		assertAppErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("not the creator", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, CreatedBy: "someone-else"}, nil
		}
		svc := newPostServiceForTest(postRepo, noopForumRepo())
		err := svc.UpdatePost(ctx, UpdatePostInput{
			UserID: "user-1", PostID: 1, Title: "t", Content: "c",
		})
		assertAppErrorCode(t, err, "FORBIDDEN")
	})

	t.Run("creator may edit", func(t *testing.T) {
		t.Parallel()
		var updated *models.Post
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, CreatedBy: "user-1", Title: "old", Content: "old"}, nil
		}
		postRepo.updateFn = func(_ context.Context, p *models.Post) error {
			updated = p
			return nil
		}
		svc := newPostServiceForTest(postRepo, noopForumRepo())
		err := svc.UpdatePost(ctx, UpdatePostInput{
			UserID: "user-1", PostID: 1, Title: "new title", Content: "new content",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "new title", updated.Title)
		assert.Equal(t, "new content", updated.Content)
	})
}

func TestPostService_IsOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name  string
		post  *models.Post
		user  string
		owner bool
	}{
		{"owner", &models.Post{ID: 1, CreatedBy: "user-1"}, "user-1", true},
		{"different user", &models.Post{ID: 1, CreatedBy: "user-1"}, "user-2", false},
		{"absent post", nil, "user-1", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			postRepo := noopPostRepo()
			postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
				return tt.post, nil
			}
			svc := newPostServiceForTest(postRepo, noopForumRepo())
			owner, err := svc.IsOwner(ctx, 1, tt.user)
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
		})
	}

	t.Run("repo error propagates", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("db down")
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return nil, repoErr
		}
		svc := newPostServiceForTest(postRepo, noopForumRepo())
		_, err := svc.IsOwner(ctx, 1, "user-1")
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestPostService_Recent_CacheAside(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("miss populates and hit skips storage", func(t *testing.T) {
		t.Parallel()
		calls := 0
		postRepo := noopPostRepo()
		postRepo.recentFn = func(_ context.Context, count int) ([]models.Post, error) {
			calls++
			return []models.Post{{ID: 1, Title: "first"}}, nil
		}
		svc := newPostServiceForTest(postRepo, noopForumRepo())

		first, err := svc.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.Equal(t, 1, calls)

		second, err := svc.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls, "second read must be served from cache")
	})

	t.Run("distinct counts use distinct slots", func(t *testing.T) {
		t.Parallel()
		var requested []int
		postRepo := noopPostRepo()
		postRepo.recentFn = func(_ context.Context, count int) ([]models.Post, error) {
			requested = append(requested, count)
			return make([]models.Post, count), nil
		}
		svc := newPostServiceForTest(postRepo, noopForumRepo())

		_, err := svc.Recent(ctx, 5)
		require.NoError(t, err)
		_, err = svc.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []int{5, 10}, requested)
	})

	t.Run("non-positive count falls back to default", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.recentFn = func(_ context.Context, count int) ([]models.Post, error) {
			assert.Equal(t, cache.DefaultRecentCount, count)
			return nil, nil
		}
		svc := newPostServiceForTest(postRepo, noopForumRepo())
		_, err := svc.Recent(ctx, 0)
		require.NoError(t, err)
	})

	t.Run("storage error is not cached", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("db down")
		calls := 0
		postRepo := noopPostRepo()
		postRepo.recentFn = func(_ context.Context, _ int) ([]models.Post, error) {
			calls++
			if calls == 1 {
				return nil, repoErr
			}
			return []models.Post{{ID: 2}}, nil
		}
		svc := newPostServiceForTest(postRepo, noopForumRepo())

		_, err := svc.Recent(ctx, 10)
		assert.ErrorIs(t, err, repoErr)

		posts, err := svc.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, 2, calls)
	})
}

func TestPostService_CreateInvalidatesDefaultSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := map[int]int{}
	postRepo := noopPostRepo()
	postRepo.recentFn = func(_ context.Context, count int) ([]models.Post, error) {
		calls[count]++
		return make([]models.Post, count), nil
	}
	svc := newPostServiceForTest(postRepo, noopForumRepo())

	// Warm the default slot and a non-default slot.
	_, err := svc.Recent(ctx, cache.DefaultRecentCount)
	require.NoError(t, err)
	_, err = svc.Recent(ctx, 5)
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, CreatePostInput{
		UserID: "user-1", ForumID: 1, Title: "t", Content: "c",
	})
	require.NoError(t, err)

	// Default slot was dropped; the count=5 slot survives.
	_, err = svc.Recent(ctx, cache.DefaultRecentCount)
	require.NoError(t, err)
	_, err = svc.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, calls[cache.DefaultRecentCount])
	assert.Equal(t, 1, calls[5])
}

func TestPostService_UpdateInvalidatesDefaultSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := 0
	postRepo := noopPostRepo()
	postRepo.recentFn = func(_ context.Context, _ int) ([]models.Post, error) {
		calls++
		return nil, nil
	}
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return &models.Post{ID: 1, CreatedBy: "user-1"}, nil
	}
	svc := newPostServiceForTest(postRepo, noopForumRepo())

	_, err := svc.Recent(ctx, cache.DefaultRecentCount)
	require.NoError(t, err)

	err = svc.UpdatePost(ctx, UpdatePostInput{
		UserID: "user-1", PostID: 1, Title: "t", Content: "c",
	})
	require.NoError(t, err)

	_, err = svc.Recent(ctx, cache.DefaultRecentCount)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
