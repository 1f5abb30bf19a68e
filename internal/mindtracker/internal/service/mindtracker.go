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
	"time"

	"github.com/gotomicro/ego/core/elog"

	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/repository"
	"github.com/mindblowndbs/mindblown/internal/notification"
	"github.com/mindblowndbs/mindblown/internal/user"
)

const dayLayout = "2006-01-02"

// reminderMessage 提醒文案，与推送端保持一致
const reminderMessage = "Hai, Kamu belum mengisi Daily Mind Tracker-mu"

const reminderSender = "MindBlown"

var (
	ErrEmptyProgress = errors.New("progress 不能为空")
	ErrEntryNotFound = errors.New("当天没有打卡记录")
)

type MindTrackerService interface {
	Save(ctx context.Context, uid int64, mood, progress string) (domain.Entry, error)
	// CheckDay day 是 2006-01-02 格式
	CheckDay(ctx context.Context, uid int64, day string) (bool, error)
	GetByDay(ctx context.Context, uid int64, day string) (domain.Entry, error)
	// List 打卡历史，新的在前
	List(ctx context.Context, uid int64) ([]domain.Entry, error)
	// Remind 给今天还没打卡的用户发提醒，定时任务和手动触发共用
	Remind(ctx context.Context) error
}

type mindTrackerService struct {
	repo    repository.EntryRepository
	userSvc user.UserService
	notiSvc notification.Service
	logger  *elog.Component
}

func NewMindTrackerService(repo repository.EntryRepository,
	userSvc user.UserService,
	notiSvc notification.Service) MindTrackerService {
	return &mindTrackerService{
		repo:    repo,
		userSvc: userSvc,
		notiSvc: notiSvc,
		logger:  elog.DefaultLogger,
	}
}

func (s *mindTrackerService) Save(ctx context.Context, uid int64, mood, progress string) (domain.Entry, error) {
	if progress == "" {
		return domain.Entry{}, ErrEmptyProgress
	}
	profile, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return domain.Entry{}, err
	}
	day := time.Now().Format(dayLayout)
	id, err := s.repo.Create(ctx, domain.Entry{
		Uid:      uid,
		Username: profile.Username,
		Mood:     mood,
		Progress: progress,
		Day:      day,
	})
	if err != nil {
		return domain.Entry{}, err
	}
	entry, err := s.repo.FindByUidAndDay(ctx, uid, day)
	if err != nil {
		return domain.Entry{}, err
	}
	entry.ID = id
	return entry, nil
}

func (s *mindTrackerService) CheckDay(ctx context.Context, uid int64, day string) (bool, error) {
	return s.repo.ExistsByUidAndDay(ctx, uid, day)
}

func (s *mindTrackerService) GetByDay(ctx context.Context, uid int64, day string) (domain.Entry, error) {
	entry, err := s.repo.FindByUidAndDay(ctx, uid, day)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Entry{}, ErrEntryNotFound
		}
		return domain.Entry{}, err
	}
	return entry, nil
}

func (s *mindTrackerService) List(ctx context.Context, uid int64) ([]domain.Entry, error) {
	return s.repo.List(ctx, uid)
}

func (s *mindTrackerService) Remind(ctx context.Context) error {
	day := time.Now().Format(dayLayout)
	uids, err := s.userSvc.AllIds(ctx)
	if err != nil {
		return err
	}
	submitted, err := s.repo.UidsWithEntry(ctx, day)
	if err != nil {
		return err
	}
	submittedSet := make(map[int64]struct{}, len(submitted))
	for _, uid := range submitted {
		submittedSet[uid] = struct{}{}
	}
	for _, uid := range uids {
		if _, ok := submittedSet[uid]; ok {
			continue
		}
		_, err = s.notiSvc.Create(ctx, notification.Notification{
			Uid:          uid,
			FromUid:      uid,
			FromUsername: reminderSender,
			Type:         notification.TypeReminder,
			Message:      reminderMessage,
		})
		if err != nil {
			// 单个用户失败不中断整轮提醒
			s.logger.Error("发送打卡提醒失败",
				elog.FieldErr(err),
				elog.Int64("uid", uid))
		}
	}
	return nil
}
