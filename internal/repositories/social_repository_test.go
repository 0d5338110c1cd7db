package repositories

import (
	"testing"
	"time"

	"lifehub/internal/database"
	"lifehub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestSocialRepositories(t *testing.T) {
	suite.Run(t, new(SocialRepositorySuite))
}

type SocialRepositorySuite struct {
	suite.Suite
	db            *database.DB
	profiles      ProfileRepositoryInterface
	follows       FollowRepositoryInterface
	posts         PostRepositoryInterface
	comments      CommentRepositoryInterface
	notifications NotificationRepositoryInterface

	alice *models.User
	bob   *models.User
}

func (s *SocialRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.profiles = NewProfileRepository(s.db.DB)
	s.follows = NewFollowRepository(s.db.DB)
	s.posts = NewPostRepository(s.db.DB)
	s.comments = NewCommentRepository(s.db.DB)
	s.notifications = NewNotificationRepository(s.db.DB)

	s.alice = database.CreateTestUser(s.T(), s.db, "alice")
	s.bob = database.CreateTestUser(s.T(), s.db, "bob")
}

func (s *SocialRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SocialRepositorySuite) newPost(author *models.User, title string) *models.Post {
	post := &models.Post{AuthorID: author.ID, Title: title, Content: "本文"}
	s.Require().NoError(s.posts.Create(post))
	return post
}

func (s *SocialRepositorySuite) newComment(post *models.Post, author *models.User) *models.Comment {
	comment := &models.Comment{PostID: post.ID, UserID: author.ID, Body: "いいね"}
	s.Require().NoError(s.comments.Create(comment))
	return comment
}

func (s *SocialRepositorySuite) TestProfileRepository_LookupsAndList() {
	byUser, err := s.profiles.GetByUserID(s.alice.ID)
	s.NoError(err)
	s.Equal(models.DefaultAvatar, byUser.Avatar)
	s.Equal("alice", byUser.User.Username)

	byName, err := s.profiles.GetByUsername("bob")
	s.NoError(err)
	s.Equal(s.bob.ID, byName.UserID)

	_, err = s.profiles.GetByUsername("carol")
	s.Equal(ErrProfileNotFound, err)

	list, err := s.profiles.List()
	s.NoError(err)
	s.Require().Len(list, 2)
	s.Equal("alice", list[0].User.Username)
	s.Equal("bob", list[1].User.Username)
}

func (s *SocialRepositorySuite) TestProfileRepository_Update() {
	profile, err := s.profiles.GetByUserID(s.alice.ID)
	s.Require().NoError(err)

	profile.Bio = strPtr("家計簿をつけています")
	profile.Avatar = "avatars/alice.png"
	s.NoError(s.profiles.Update(profile))

	stored, err := s.profiles.GetByUserID(s.alice.ID)
	s.NoError(err)
	s.Equal("家計簿をつけています", *stored.Bio)
	s.Equal("avatars/alice.png", stored.Avatar)

	s.Equal(ErrProfileNotFound, s.profiles.Update(&models.Profile{ID: uuid.New()}))
}

func (s *SocialRepositorySuite) TestFollowRepository_Lifecycle() {
	exists, err := s.follows.Exists(s.alice.ID, s.bob.ID)
	s.NoError(err)
	s.False(exists)

	s.NoError(s.follows.Create(s.alice.ID, s.bob.ID))

	exists, err = s.follows.Exists(s.alice.ID, s.bob.ID)
	s.NoError(err)
	s.True(exists)

	followers, err := s.follows.CountFollowers(s.bob.ID)
	s.NoError(err)
	s.Equal(int64(1), followers)

	following, err := s.follows.CountFollowing(s.alice.ID)
	s.NoError(err)
	s.Equal(int64(1), following)

	s.NoError(s.follows.Delete(s.alice.ID, s.bob.ID))

	followers, err = s.follows.CountFollowers(s.bob.ID)
	s.NoError(err)
	s.Zero(followers)
}

func (s *SocialRepositorySuite) TestFollowRepository_RejectsSelfFollow() {
	err := s.follows.Create(s.alice.ID, s.alice.ID)
	s.ErrorIs(err, models.ErrSelfFollow)
}

func (s *SocialRepositorySuite) TestPostRepository_ListNewestFirst() {
	first := s.newPost(s.alice, "first")
	second := s.newPost(s.bob, "second")
	s.Require().NoError(s.db.Model(&models.Post{}).Where("id = ?", first.ID).
		Update("created_at", second.CreatedAt.Add(-time.Hour)).Error)

	posts, err := s.posts.List()
	s.NoError(err)
	s.Require().Len(posts, 2)
	s.Equal(second.ID, posts[0].ID)
	s.Equal(first.ID, posts[1].ID)
	s.Equal("bob", posts[0].Author.Username)
}

func (s *SocialRepositorySuite) TestPostRepository_GetWithComments() {
	post := s.newPost(s.alice, "with comments")
	s.newComment(post, s.bob)
	s.newComment(post, s.alice)

	loaded, err := s.posts.GetWithComments(post.ID)
	s.NoError(err)
	s.Len(loaded.Comments, 2)
	s.NotNil(loaded.Comments[0].User)

	_, err = s.posts.GetWithComments(uuid.New())
	s.Equal(ErrPostNotFound, err)
}

func (s *SocialRepositorySuite) TestPostRepository_Update() {
	post := s.newPost(s.alice, "draft")

	post.Title = "final"
	post.Image = strPtr("posts/cat.png")
	s.NoError(s.posts.Update(post))

	stored, err := s.posts.GetByID(post.ID)
	s.NoError(err)
	s.Equal("final", stored.Title)
	s.Equal("posts/cat.png", *stored.Image)
}

func (s *SocialRepositorySuite) TestPostRepository_Likes() {
	post := s.newPost(s.alice, "liked")
	other := s.newPost(s.alice, "ignored")

	s.NoError(s.posts.AddLike(post.ID, s.bob.ID))
	s.NoError(s.posts.AddLike(post.ID, s.alice.ID))

	liked, err := s.posts.LikeExists(post.ID, s.bob.ID)
	s.NoError(err)
	s.True(liked)

	count, err := s.posts.CountLikes(post.ID)
	s.NoError(err)
	s.Equal(int64(2), count)

	counts, err := s.posts.CountLikesByPost([]uuid.UUID{post.ID, other.ID})
	s.NoError(err)
	s.Equal(int64(2), counts[post.ID])
	s.Zero(counts[other.ID])

	likedBy, err := s.posts.LikedByUser(s.bob.ID, []uuid.UUID{post.ID, other.ID})
	s.NoError(err)
	s.True(likedBy[post.ID])
	s.False(likedBy[other.ID])

	s.NoError(s.posts.RemoveLike(post.ID, s.bob.ID))
	count, err = s.posts.CountLikes(post.ID)
	s.NoError(err)
	s.Equal(int64(1), count)

	empty, err := s.posts.CountLikesByPost(nil)
	s.NoError(err)
	s.Empty(empty)
}

func (s *SocialRepositorySuite) TestPostRepository_DeleteCascadesAndKeepsNotifications() {
	post := s.newPost(s.alice, "doomed")
	comment := s.newComment(post, s.bob)
	s.Require().NoError(s.posts.AddLike(post.ID, s.bob.ID))
	s.Require().NoError(s.comments.AddLike(comment.ID, s.alice.ID))

	notification := &models.Notification{
		SenderID:    s.bob.ID,
		RecipientID: s.alice.ID,
		Kind:        models.NotificationComment,
		PostID:      &post.ID,
		CommentID:   &comment.ID,
	}
	s.Require().NoError(s.notifications.Create(notification))

	s.NoError(s.posts.Delete(post.ID))

	_, err := s.posts.GetByID(post.ID)
	s.Equal(ErrPostNotFound, err)
	_, err = s.comments.GetByID(comment.ID)
	s.Equal(ErrCommentNotFound, err)

	var likes int64
	s.db.Model(&models.CommentLike{}).Count(&likes)
	s.Zero(likes)
	s.db.Model(&models.PostLike{}).Count(&likes)
	s.Zero(likes)

	kept, err := s.notifications.GetByID(notification.ID)
	s.NoError(err)
	s.Nil(kept.PostID)
	s.Nil(kept.CommentID)

	s.Equal(ErrPostNotFound, s.posts.Delete(post.ID))
}

func (s *SocialRepositorySuite) TestCommentRepository_UpdateAndDelete() {
	post := s.newPost(s.alice, "post")
	comment := s.newComment(post, s.bob)

	comment.Body = "編集しました"
	s.NoError(s.comments.Update(comment))

	stored, err := s.comments.GetByID(comment.ID)
	s.NoError(err)
	s.Equal("編集しました", stored.Body)

	s.NoError(s.comments.AddLike(comment.ID, s.alice.ID))
	counts, err := s.comments.CountLikesByComment([]uuid.UUID{comment.ID})
	s.NoError(err)
	s.Equal(int64(1), counts[comment.ID])

	s.NoError(s.comments.Delete(comment.ID))
	_, err = s.comments.GetByID(comment.ID)
	s.Equal(ErrCommentNotFound, err)

	count, err := s.comments.CountLikes(comment.ID)
	s.NoError(err)
	s.Zero(count)
}

func (s *SocialRepositorySuite) TestCommentRepository_Likes() {
	post := s.newPost(s.alice, "post")
	comment := s.newComment(post, s.alice)

	exists, err := s.comments.LikeExists(comment.ID, s.bob.ID)
	s.NoError(err)
	s.False(exists)

	s.NoError(s.comments.AddLike(comment.ID, s.bob.ID))
	exists, err = s.comments.LikeExists(comment.ID, s.bob.ID)
	s.NoError(err)
	s.True(exists)

	s.NoError(s.comments.RemoveLike(comment.ID, s.bob.ID))
	exists, err = s.comments.LikeExists(comment.ID, s.bob.ID)
	s.NoError(err)
	s.False(exists)
}

func (s *SocialRepositorySuite) TestNotificationRepository_ListAndRead() {
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.notifications.Create(&models.Notification{
			SenderID:    s.bob.ID,
			RecipientID: s.alice.ID,
			Kind:        models.NotificationFollow,
		}))
	}

	list, err := s.notifications.ListByRecipient(s.alice.ID, 2)
	s.NoError(err)
	s.Len(list, 2)
	s.Equal("bob", list[0].Sender.Username)

	all, err := s.notifications.ListByRecipient(s.alice.ID, 0)
	s.NoError(err)
	s.Len(all, 3)

	unread, err := s.notifications.CountUnread(s.alice.ID)
	s.NoError(err)
	s.Equal(int64(3), unread)

	s.NoError(s.notifications.MarkRead(all[0].ID))
	unread, err = s.notifications.CountUnread(s.alice.ID)
	s.NoError(err)
	s.Equal(int64(2), unread)

	s.Equal(ErrNotificationNotFound, s.notifications.MarkRead(uuid.New()))
}

func (s *SocialRepositorySuite) TestNotificationRepository_RejectsSelfNotification() {
	err := s.notifications.Create(&models.Notification{
		SenderID:    s.alice.ID,
		RecipientID: s.alice.ID,
		Kind:        models.NotificationLikePost,
	})
	s.ErrorIs(err, models.ErrSelfNotification)
}
