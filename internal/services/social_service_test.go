package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifehub/internal/database"
	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SocialServiceTestSuite struct {
	suite.Suite
	env           *testEnv
	profiles      ProfileServiceInterface
	feed          FeedServiceInterface
	notifications NotificationServiceInterface
	taro          *models.User
	hanako        *models.User
}

func TestSocialServiceSuite(t *testing.T) {
	suite.Run(t, new(SocialServiceTestSuite))
}

func (s *SocialServiceTestSuite) SetupTest() {
	env := newTestEnv(s.T())
	s.env = env
	s.profiles = NewProfileService(env.db, env.profiles, env.follows, env.notifications, env.store, env.publisher, env.audit, env.auditLogger, NoopMetrics{})
	s.feed = NewFeedService(env.db, env.posts, env.comments, env.notifications, env.store, env.publisher, env.audit, env.auditLogger, NoopMetrics{})
	s.notifications = NewNotificationService(env.notifications, env.auditLogger)
	s.taro = database.CreateTestUser(s.T(), env.db, "taro")
	s.hanako = database.CreateTestUser(s.T(), env.db, "hanako")
}

func (s *SocialServiceTestSuite) countNotifications(recipient uuid.UUID) int64 {
	var count int64
	s.Require().NoError(s.env.db.Model(&models.Notification{}).Where("recipient_id = ?", recipient).Count(&count).Error)
	return count
}

func (s *SocialServiceTestSuite) createPost(author *models.User) *models.Post {
	post, err := s.feed.CreatePost(author.ID, &dto.PostRequest{Title: "朝ごはん", Content: "納豆"}, nil)
	s.Require().NoError(err)
	return post
}

func (s *SocialServiceTestSuite) TestToggleFollow_NotifiesOnlyOnFollow() {
	result, err := s.profiles.ToggleFollow(s.taro.ID, "hanako")
	s.Require().NoError(err)
	s.True(result.Active)
	s.Equal(int64(1), result.Count)
	s.Equal(int64(1), s.countNotifications(s.hanako.ID))

	published := s.env.publisher.published()
	s.Require().Len(published, 1)
	s.Equal(s.hanako.ID, published[0].userID)
	s.Equal(LiveNotificationKind, published[0].kind)

	result, err = s.profiles.ToggleFollow(s.taro.ID, "hanako")
	s.Require().NoError(err)
	s.False(result.Active)
	s.Equal(int64(0), result.Count)

	// Unfollowing keeps the earlier notification.
	s.Equal(int64(1), s.countNotifications(s.hanako.ID))
	s.Len(s.env.publisher.published(), 1)
}

func (s *SocialServiceTestSuite) TestToggleFollow_Self() {
	_, err := s.profiles.ToggleFollow(s.taro.ID, "taro")

	s.ErrorIs(err, ErrSelfFollow)
}

func (s *SocialServiceTestSuite) TestToggleFollow_UnknownUser() {
	_, err := s.profiles.ToggleFollow(s.taro.ID, "nobody")

	s.ErrorIs(err, repositories.ErrProfileNotFound)
}

func (s *SocialServiceTestSuite) TestDetail_Counts() {
	_, err := s.profiles.ToggleFollow(s.taro.ID, "hanako")
	s.Require().NoError(err)

	detail, err := s.profiles.Detail(s.taro.ID, "hanako")
	s.Require().NoError(err)
	s.Equal("hanako", detail.Username)
	s.Equal(int64(1), detail.Followers)
	s.Equal(int64(0), detail.Following)
	s.True(detail.IsFollowing)
	s.False(detail.IsSelf)

	own, err := s.profiles.Detail(s.taro.ID, "taro")
	s.Require().NoError(err)
	s.True(own.IsSelf)
	s.Equal(int64(1), own.Following)
}

func (s *SocialServiceTestSuite) TestUpdate_ReplacesAvatar() {
	bio := "東京在住"
	first, err := s.profiles.Update(s.taro.ID, &dto.ProfileUpdateRequest{Bio: &bio}, nil)
	s.Require().NoError(err)
	s.Equal(models.DefaultAvatar, first.Avatar)
	s.Require().NotNil(first.Bio)
	s.Equal(bio, *first.Bio)

	upload := textUpload("me.png", "png-bytes")
	withAvatar, err := s.profiles.Update(s.taro.ID, &dto.ProfileUpdateRequest{}, &upload)
	s.Require().NoError(err)
	s.Contains(withAvatar.Avatar, "avatars/")
	s.FileExists(filepath.Join(s.env.store.Root, withAvatar.Avatar))

	second := textUpload("me2.png", "more-bytes")
	replaced, err := s.profiles.Update(s.taro.ID, nil, &second)
	s.Require().NoError(err)
	s.NotEqual(withAvatar.Avatar, replaced.Avatar)

	_, statErr := os.Stat(filepath.Join(s.env.store.Root, withAvatar.Avatar))
	s.True(os.IsNotExist(statErr))
	s.Require().NotNil(replaced.Bio)
}

func (s *SocialServiceTestSuite) TestList() {
	profiles, err := s.profiles.List()

	s.Require().NoError(err)
	s.Require().Len(profiles, 2)
	s.Equal("hanako", profiles[0].Username)
	s.Equal(models.DefaultAvatar, profiles[0].Avatar)

	raw, err := json.Marshal(profiles)
	s.Require().NoError(err)
	s.NotContains(string(raw), s.taro.Email)
	s.NotContains(string(raw), s.hanako.Email)
}

func (s *SocialServiceTestSuite) TestPosts_NewestFirstWithLikes() {
	first := s.createPost(s.taro)
	second := s.createPost(s.hanako)
	s.Require().NoError(s.env.db.Model(&models.Post{}).Where("id = ?", first.ID).
		Update("created_at", second.CreatedAt.Add(-time.Hour)).Error)

	_, err := s.feed.TogglePostLike(s.hanako.ID, first.ID)
	s.Require().NoError(err)

	posts, err := s.feed.ListPosts(s.hanako.ID)
	s.Require().NoError(err)
	s.Require().Len(posts, 2)
	s.Equal(second.ID, posts[0].ID)
	s.Equal(first.ID, posts[1].ID)
	s.Equal(int64(1), posts[1].LikeCount)
	s.True(posts[1].Liked)
	s.False(posts[0].Liked)
	s.Equal("taro", posts[1].Author)
}

func (s *SocialServiceTestSuite) TestTogglePostLike_SelfLikeDoesNotNotify() {
	post := s.createPost(s.taro)

	result, err := s.feed.TogglePostLike(s.taro.ID, post.ID)

	s.Require().NoError(err)
	s.True(result.Active)
	s.Equal(int64(0), s.countNotifications(s.taro.ID))
	s.Empty(s.env.publisher.published())
}

func (s *SocialServiceTestSuite) TestTogglePostLike_NotifiesOnEachLike() {
	post := s.createPost(s.taro)

	for i := 0; i < 3; i++ {
		_, err := s.feed.TogglePostLike(s.hanako.ID, post.ID)
		s.Require().NoError(err)
	}

	// like, unlike, like: two adding transitions
	s.Equal(int64(2), s.countNotifications(s.taro.ID))
}

func (s *SocialServiceTestSuite) TestComments_NotifyAndLike() {
	post := s.createPost(s.taro)

	comment, err := s.feed.CreateComment(s.hanako.ID, post.ID, &dto.CommentRequest{Body: "美味しそう"})
	s.Require().NoError(err)
	s.Equal("hanako", comment.User.Username)

	result, err := s.feed.ToggleCommentLike(s.taro.ID, comment.ID)
	s.Require().NoError(err)
	s.True(result.Active)
	s.Equal(int64(1), result.Count)

	s.Equal(int64(1), s.countNotifications(s.taro.ID))
	s.Equal(int64(1), s.countNotifications(s.hanako.ID))

	detail, err := s.feed.GetPost(s.taro.ID, post.ID)
	s.Require().NoError(err)
	s.Require().Len(detail.Comments, 1)
	s.Equal(int64(1), detail.Comments[0].LikeCount)
	s.Equal("hanako", detail.Comments[0].Author)
}

func (s *SocialServiceTestSuite) TestUpdateAndDeleteComment_AuthorOnly() {
	post := s.createPost(s.taro)
	comment, err := s.feed.CreateComment(s.hanako.ID, post.ID, &dto.CommentRequest{Body: "初コメ"})
	s.Require().NoError(err)

	_, err = s.feed.UpdateComment(s.taro.ID, comment.ID, &dto.CommentRequest{Body: "書き換え"})
	s.ErrorIs(err, ErrForbidden)
	s.ErrorIs(s.feed.DeleteComment(s.taro.ID, comment.ID), ErrForbidden)

	updated, err := s.feed.UpdateComment(s.hanako.ID, comment.ID, &dto.CommentRequest{Body: "修正"})
	s.Require().NoError(err)
	s.Equal("修正", updated.Body)

	s.Require().NoError(s.feed.DeleteComment(s.hanako.ID, comment.ID))
	_, err = s.env.comments.GetByID(comment.ID)
	s.ErrorIs(err, repositories.ErrCommentNotFound)

	// The notification outlives the comment with its link cleared.
	notifications, err := s.env.notifications.ListByRecipient(s.taro.ID, 0)
	s.Require().NoError(err)
	s.Require().Len(notifications, 1)
	s.Nil(notifications[0].CommentID)
}

func (s *SocialServiceTestSuite) TestUpdatePost_AuthorOnlyAndReplacesImage() {
	image := textUpload("a.jpg", "first")
	post, err := s.feed.CreatePost(s.taro.ID, &dto.PostRequest{Title: "旅行", Content: "京都"}, &image)
	s.Require().NoError(err)
	s.Require().NotNil(post.Image)
	oldImage := *post.Image

	_, err = s.feed.UpdatePost(s.hanako.ID, post.ID, &dto.PostRequest{Title: "x", Content: "y"}, nil)
	s.ErrorIs(err, ErrForbidden)

	replacement := textUpload("b.jpg", "second")
	updated, err := s.feed.UpdatePost(s.taro.ID, post.ID, &dto.PostRequest{Title: "旅行記", Content: "奈良"}, &replacement)
	s.Require().NoError(err)
	s.Equal("旅行記", updated.Title)
	s.NotEqual(oldImage, *updated.Image)
	s.NoFileExists(filepath.Join(s.env.store.Root, oldImage))
}

func (s *SocialServiceTestSuite) TestDeletePost_RemovesDependents() {
	image := textUpload("a.jpg", "bytes")
	post, err := s.feed.CreatePost(s.taro.ID, &dto.PostRequest{Title: "削除予定", Content: "..."}, &image)
	s.Require().NoError(err)
	_, err = s.feed.CreateComment(s.hanako.ID, post.ID, &dto.CommentRequest{Body: "c"})
	s.Require().NoError(err)
	_, err = s.feed.TogglePostLike(s.hanako.ID, post.ID)
	s.Require().NoError(err)

	s.ErrorIs(s.feed.DeletePost(s.hanako.ID, post.ID), ErrForbidden)
	s.Require().NoError(s.feed.DeletePost(s.taro.ID, post.ID))

	_, err = s.feed.GetPost(s.taro.ID, post.ID)
	s.ErrorIs(err, repositories.ErrPostNotFound)
	s.NoFileExists(filepath.Join(s.env.store.Root, *post.Image))
	s.Equal(int64(2), s.countNotifications(s.taro.ID))
}

func (s *SocialServiceTestSuite) TestCreatePost_Invalid() {
	_, err := s.feed.CreatePost(s.taro.ID, &dto.PostRequest{Title: "  ", Content: "body"}, nil)

	s.ErrorIs(err, ErrInvalidPost)
}

func (s *SocialServiceTestSuite) TestNotifications_ListAndMarkRead() {
	_, err := s.profiles.ToggleFollow(s.taro.ID, "hanako")
	s.Require().NoError(err)

	list, err := s.notifications.List(s.hanako.ID, 0)
	s.Require().NoError(err)
	s.Require().Len(list.Notifications, 1)
	s.Equal(int64(1), list.Unread)
	id := list.Notifications[0].ID

	s.ErrorIs(s.notifications.MarkRead(s.taro.ID, id), ErrForbidden)
	s.Require().NoError(s.notifications.MarkRead(s.hanako.ID, id))
	s.Require().NoError(s.notifications.MarkRead(s.hanako.ID, id))

	list, err = s.notifications.List(s.hanako.ID, 5)
	s.Require().NoError(err)
	s.Equal(int64(0), list.Unread)
	s.True(list.Notifications[0].IsRead)

	empty, err := s.notifications.List(s.taro.ID, 0)
	s.Require().NoError(err)
	s.NotNil(empty.Notifications)
	s.Empty(empty.Notifications)
}
