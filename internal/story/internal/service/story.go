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
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"

	"github.com/mindblowndbs/mindblown/internal/interactive"
	"github.com/mindblowndbs/mindblown/internal/story/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/story/internal/events"
	"github.com/mindblowndbs/mindblown/internal/story/internal/repository"
	"github.com/mindblowndbs/mindblown/internal/user"
)

var (
	ErrStoryNotFound          = errors.New("story 不存在")
	ErrCommentNotFound        = errors.New("评论不存在")
	ErrInsufficientPermission = errors.New("没有权限")
	ErrEmptyContent           = errors.New("内容不能为空")
	ErrUserNotFound           = errors.New("用户不存在")
)

type StoryService interface {
	// Create 匿名发布时作者快照写占位名，真实 uid 照常落库
	Create(ctx context.Context, uid int64, content string, anonymous bool) (domain.Story, error)
	Edit(ctx context.Context, uid, id int64, content string) error
	// Delete 先删整棵评论树再删 story，中断后重放即可清理干净
	Delete(ctx context.Context, uid, id int64) error
	// List 按发布时间倒序，带直接评论数、全树评论数和点赞浏览计数
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Story, error)
	// ProfileStories 个人主页的 story 列表，匿名发布的不在其中
	ProfileStories(ctx context.Context, viewerUid int64, username string, offset, limit int) ([]domain.Story, error)
	// Detail 带整棵评论树，顺手异步记一次浏览
	Detail(ctx context.Context, uid, id int64) (domain.Story, error)
	Like(ctx context.Context, uid, id int64) (domain.LikeStatus, error)
}

type storyService struct {
	repo        repository.StoryRepository
	commentRepo repository.CommentRepository
	userSvc     user.UserService
	intrSvc     interactive.Service
	producer    events.ViewEventProducer
	logger      *elog.Component
}

func NewStoryService(repo repository.StoryRepository,
	commentRepo repository.CommentRepository,
	userSvc user.UserService,
	intrSvc interactive.Service,
	producer events.ViewEventProducer) StoryService {
	return &storyService{
		repo:        repo,
		commentRepo: commentRepo,
		userSvc:     userSvc,
		intrSvc:     intrSvc,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

func (s *storyService) Create(ctx context.Context, uid int64, content string, anonymous bool) (domain.Story, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Story{}, ErrEmptyContent
	}
	author := domain.Author{
		ID:       uid,
		Username: domain.AnonymousUsername,
		Name:     domain.AnonymousName,
	}
	if !anonymous {
		profile, err := s.userSvc.Profile(ctx, uid)
		if err != nil {
			return domain.Story{}, err
		}
		author.Username = profile.Username
		author.Name = profile.Name
	}
	story := domain.Story{
		Author:    author,
		Content:   content,
		Anonymous: anonymous,
	}
	id, err := s.repo.Create(ctx, story)
	if err != nil {
		return domain.Story{}, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *storyService) Edit(ctx context.Context, uid, id int64, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	story, err := s.findStory(ctx, id)
	if err != nil {
		return err
	}
	if story.Author.ID != uid {
		return ErrInsufficientPermission
	}
	_, err = s.repo.UpdateContent(ctx, id, uid, content)
	return err
}

func (s *storyService) Delete(ctx context.Context, uid, id int64) error {
	story, err := s.findStory(ctx, id)
	if err != nil {
		return err
	}
	if story.Author.ID != uid {
		return ErrInsufficientPermission
	}
	// 评论先删，story 最后删。这样失败重试时入口还在
	err = s.commentRepo.DeleteByStoryID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *storyService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Story, error) {
	stories, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.attachCounts(ctx, uid, stories)
}

func (s *storyService) ProfileStories(ctx context.Context, viewerUid int64, username string, offset, limit int) ([]domain.Story, error) {
	profile, err := s.userSvc.ProfileByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	stories, err := s.repo.ListByUid(ctx, profile.Id, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.attachCounts(ctx, viewerUid, stories)
}

// attachCounts 列表场景只补计数，不拉评论树
func (s *storyService) attachCounts(ctx context.Context, uid int64, stories []domain.Story) ([]domain.Story, error) {
	if len(stories) == 0 {
		return stories, nil
	}
	ids := slice.Map(stories, func(_ int, src domain.Story) int64 {
		return src.ID
	})
	var (
		eg        errgroup.Group
		topCounts map[int64]int64
		allCounts map[int64]int64
		intrMap   map[int64]interactive.Interactive
	)
	eg.Go(func() error {
		var eerr error
		topCounts, eerr = s.commentRepo.CountTopLevel(ctx, ids)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		allCounts, eerr = s.commentRepo.CountAll(ctx, ids)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		intrMap, eerr = s.intrSvc.GetByIds(ctx, interactive.StoryBiz, uid, ids)
		return eerr
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for i := range stories {
		id := stories[i].ID
		stories[i].CommentCnt = topCounts[id]
		stories[i].TotalCommentCnt = allCounts[id]
		if intr, ok := intrMap[id]; ok {
			stories[i].LikeCnt = intr.LikeCnt
			stories[i].ViewCnt = intr.ViewCnt
			stories[i].Liked = intr.Liked
		}
	}
	return stories, nil
}

func (s *storyService) Detail(ctx context.Context, uid, id int64) (domain.Story, error) {
	story, err := s.findStory(ctx, id)
	if err != nil {
		return domain.Story{}, err
	}
	var (
		eg    errgroup.Group
		tree  []domain.Comment
		total int64
		intr  interactive.Interactive
	)
	eg.Go(func() error {
		var eerr error
		tree, total, eerr = s.commentRepo.FindTree(ctx, id)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		intr, eerr = s.intrSvc.Get(ctx, interactive.StoryBiz, id, uid)
		return eerr
	})
	if err = eg.Wait(); err != nil {
		return domain.Story{}, err
	}
	err = annotateCommentLikes(ctx, s.intrSvc, uid, tree)
	if err != nil {
		return domain.Story{}, err
	}
	story.Comments = tree
	story.CommentCnt = int64(len(tree))
	story.TotalCommentCnt = total
	story.LikeCnt = intr.LikeCnt
	story.ViewCnt = intr.ViewCnt
	story.Liked = intr.Liked

	evt := events.ViewEvent{
		Biz:    interactive.StoryBiz,
		BizId:  id,
		Action: "view",
		Uid:    uid,
	}
	if perr := s.producer.Produce(ctx, evt); perr != nil {
		s.logger.Error("发送浏览事件失败",
			elog.FieldErr(perr),
			elog.Int64("sid", id))
	}
	return story, nil
}

func (s *storyService) Like(ctx context.Context, uid, id int64) (domain.LikeStatus, error) {
	_, err := s.findStory(ctx, id)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	status, err := s.intrSvc.LikeToggle(ctx, interactive.StoryBiz, id, uid)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	return resolveLikers(ctx, s.userSvc, status)
}

func (s *storyService) findStory(ctx context.Context, id int64) (domain.Story, error) {
	story, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Story{}, ErrStoryNotFound
		}
		return domain.Story{}, err
	}
	return story, nil
}

// resolveLikers 把台账里的 uid 批量换成昵称，前端展示"谁赞过"
func resolveLikers(ctx context.Context, userSvc user.UserService, status interactive.LikeStatus) (domain.LikeStatus, error) {
	res := domain.LikeStatus{
		Liked:   status.Liked,
		LikeCnt: status.LikeCnt,
	}
	if len(status.Likes) == 0 {
		return res, nil
	}
	ids := slice.Map(status.Likes, func(_ int, src interactive.LikeRecord) int64 {
		return src.Uid
	})
	users, err := userSvc.BatchProfile(ctx, ids)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.Id] = u.Name
	}
	res.Likes = slice.Map(status.Likes, func(_ int, src interactive.LikeRecord) domain.LikeRecord {
		return domain.LikeRecord{
			Uid:   src.Uid,
			Name:  names[src.Uid],
			Ctime: src.Ctime,
		}
	})
	return res, nil
}

// annotateCommentLikes 给整棵树批量填点赞数据，一次批量查询
func annotateCommentLikes(ctx context.Context, intrSvc interactive.Service, uid int64, tree []domain.Comment) error {
	ids := collectCommentIDs(tree)
	if len(ids) == 0 {
		return nil
	}
	intrMap, err := intrSvc.GetByIds(ctx, interactive.CommentBiz, uid, ids)
	if err != nil {
		return err
	}
	applyCommentLikes(tree, intrMap)
	return nil
}

func collectCommentIDs(tree []domain.Comment) []int64 {
	var ids []int64
	for i := range tree {
		ids = append(ids, tree[i].ID)
		ids = append(ids, collectCommentIDs(tree[i].Replies)...)
	}
	return ids
}

func applyCommentLikes(tree []domain.Comment, intrMap map[int64]interactive.Interactive) {
	for i := range tree {
		if intr, ok := intrMap[tree[i].ID]; ok {
			tree[i].LikeCnt = intr.LikeCnt
			tree[i].Liked = intr.Liked
		}
		applyCommentLikes(tree[i].Replies, intrMap)
	}
}
