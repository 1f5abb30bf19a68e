// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gotomicro/ego/core/elog"

	"github.com/mindblowndbs/mindblown/internal/interactive"
	"github.com/mindblowndbs/mindblown/internal/notification"
	"github.com/mindblowndbs/mindblown/internal/story/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/story/internal/repository"
	"github.com/mindblowndbs/mindblown/internal/user"
)

type CommentService interface {
	// Create 对 story 的直接评论，扇出站内信给作者
	Create(ctx context.Context, uid, storyID int64, content string) (domain.Comment, error)
	// Reply 回复某条评论，扇出站内信给被回复的人
	Reply(ctx context.Context, uid, parentID int64, content string) (domain.Comment, error)
	// Detail 以该评论为根的整棵子树
	Detail(ctx context.Context, uid, id int64) (domain.Comment, error)
	// Delete 只有评论作者本人能删，连同全部后裔一起删
	Delete(ctx context.Context, uid, id int64) error
	Like(ctx context.Context, uid, id int64) (domain.LikeStatus, error)
	// CountReplies 所有层级的后裔回复数
	CountReplies(ctx context.Context, id int64) (int64, error)
}

type commentService struct {
	repo      repository.CommentRepository
	storyRepo repository.StoryRepository
	userSvc   user.UserService
	intrSvc   interactive.Service
	notiSvc   notification.Service
	logger    *elog.Component
}

func NewCommentService(repo repository.CommentRepository,
	storyRepo repository.StoryRepository,
	userSvc user.UserService,
	intrSvc interactive.Service,
	notiSvc notification.Service) CommentService {
	return &commentService{
		repo:      repo,
		storyRepo: storyRepo,
		userSvc:   userSvc,
		intrSvc:   intrSvc,
		notiSvc:   notiSvc,
		logger:    elog.DefaultLogger,
	}
}

func (s *commentService) Create(ctx context.Context, uid, storyID int64, content string) (domain.Comment, error) {
	// 纯空白和空串同等对待
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, ErrEmptyContent
	}
	story, err := s.storyRepo.FindByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Comment{}, ErrStoryNotFound
		}
		return domain.Comment{}, err
	}
	comment, err := s.insert(ctx, uid, domain.Comment{
		StoryID: storyID,
		Content: content,
	})
	if err != nil {
		return domain.Comment{}, err
	}
	// 作者评论自己的 story 不通知
	if uid != story.Author.ID {
		s.notify(ctx, notification.Notification{
			Uid:          story.Author.ID,
			FromUid:      uid,
			FromUsername: comment.Author.Username,
			Type:         notification.TypeComment,
			Message:      fmt.Sprintf("%s berkomentar di story-mu.", comment.Author.Username),
			StoryID:      storyID,
			CommentID:    comment.ID,
		})
	}
	return comment, nil
}

func (s *commentService) Reply(ctx context.Context, uid, parentID int64, content string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, ErrEmptyContent
	}
	parent, err := s.findComment(ctx, parentID)
	if err != nil {
		return domain.Comment{}, err
	}
	reply, err := s.insert(ctx, uid, domain.Comment{
		StoryID:  parent.StoryID,
		ParentID: parentID,
		Content:  content,
	})
	if err != nil {
		return domain.Comment{}, err
	}
	if uid != parent.Author.ID {
		s.notify(ctx, notification.Notification{
			Uid:          parent.Author.ID,
			FromUid:      uid,
			FromUsername: reply.Author.Username,
			Type:         notification.TypeReply,
			Message:      fmt.Sprintf("%s membalas komentarmu.", reply.Author.Username),
			StoryID:      parent.StoryID,
			CommentID:    reply.ID,
		})
	}
	return reply, nil
}

func (s *commentService) insert(ctx context.Context, uid int64, c domain.Comment) (domain.Comment, error) {
	profile, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return domain.Comment{}, err
	}
	c.Author = domain.Author{
		ID:       uid,
		Username: profile.Username,
		Name:     profile.Name,
	}
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Comment{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// notify 站内信扇出是尽力而为，失败只记日志不影响评论本身
func (s *commentService) notify(ctx context.Context, n notification.Notification) {
	_, err := s.notiSvc.Create(ctx, n)
	if err != nil {
		s.logger.Error("创建通知失败",
			elog.FieldErr(err),
			elog.Int64("uid", n.Uid),
			elog.String("type", n.Type))
	}
}

func (s *commentService) Detail(ctx context.Context, uid, id int64) (domain.Comment, error) {
	_, err := s.findComment(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	root, err := s.repo.FindSubtree(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	tree := []domain.Comment{root}
	err = annotateCommentLikes(ctx, s.intrSvc, uid, tree)
	if err != nil {
		return domain.Comment{}, err
	}
	return tree[0], nil
}

func (s *commentService) Delete(ctx context.Context, uid, id int64) error {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return err
	}
	if comment.Author.ID != uid {
		return ErrInsufficientPermission
	}
	return s.repo.DeleteSubtree(ctx, id)
}

func (s *commentService) Like(ctx context.Context, uid, id int64) (domain.LikeStatus, error) {
	_, err := s.findComment(ctx, id)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	status, err := s.intrSvc.LikeToggle(ctx, interactive.CommentBiz, id, uid)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	return resolveLikers(ctx, s.userSvc, status)
}

func (s *commentService) CountReplies(ctx context.Context, id int64) (int64, error) {
	_, err := s.findComment(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.repo.CountDescendants(ctx, id)
}

func (s *commentService) findComment(ctx context.Context, id int64) (domain.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Comment{}, ErrCommentNotFound
		}
		return domain.Comment{}, err
	}
	return comment, nil
}
