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

	"github.com/gotomicro/ego/core/elog"

	"github.com/mindblowndbs/mindblown/internal/notification/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/notification/internal/event"
	"github.com/mindblowndbs/mindblown/internal/notification/internal/repository"
)

var (
	ErrNotificationNotFound = errors.New("通知不存在")
)

// pushTitles 各类型通知对应的推送标题
var pushTitles = map[string]string{
	domain.TypeComment:  "Komentar Baru",
	domain.TypeReply:    "Balasan Baru",
	domain.TypeReminder: "Pengingat",
}

type NotificationService interface {
	// Create 落库站内信，然后尽力推送。推送失败只记日志
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	// MarkRead 只有收件人能标记，非收件人视作不存在
	MarkRead(ctx context.Context, id, uid int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type notificationService struct {
	repo     repository.NotificationRepository
	producer event.PushEventProducer
	logger   *elog.Component
}

func NewNotificationService(repo repository.NotificationRepository,
	producer event.PushEventProducer) NotificationService {
	return &notificationService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *notificationService) Create(ctx context.Context, n domain.Notification) (int64, error) {
	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return 0, err
	}
	evt := event.PushEvent{
		Uid:   n.Uid,
		Title: pushTitles[n.Type],
		Body:  n.Message,
	}
	if perr := s.producer.Produce(ctx, evt); perr != nil {
		s.logger.Error("发送推送事件失败",
			elog.FieldErr(perr),
			elog.Int64("uid", n.Uid),
			elog.String("type", n.Type))
	}
	return id, nil
}

func (s *notificationService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	return s.repo.ListByUid(ctx, uid, offset, limit)
}

func (s *notificationService) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.CountUnread(ctx, uid)
}

func (s *notificationService) MarkRead(ctx context.Context, id, uid int64) error {
	ok, err := s.repo.MarkRead(ctx, id, uid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, uid int64) error {
	return s.repo.MarkAllRead(ctx, uid)
}
