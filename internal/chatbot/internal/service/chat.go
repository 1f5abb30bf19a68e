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

	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/chatbot/internal/repository"
)

var (
	ErrEmptyMessage = errors.New("消息不能为空")
)

// ErrRateLimited 带上还要等待的秒数
type ErrRateLimited struct {
	WaitSeconds int
}

func (e ErrRateLimited) Error() string {
	return fmt.Sprintf("请求过于频繁，还需等待 %d 秒", e.WaitSeconds)
}

type ChatService interface {
	// Ask 转发一轮问答。uid > 0 的登录用户才落历史；
	// 失败时释放限流窗口，让用户可以尽快重试
	Ask(ctx context.Context, userID string, uid int64, message string) (string, error)
	History(ctx context.Context, uid int64) ([]domain.ChatRecord, error)
	// EndSession 连接断开或者换身份时清掉该 key 的限流窗口。
	// 匿名 key 一条连接一个，不清会越积越多
	EndSession(userID string)
}

type chatService struct {
	repo    repository.ChatHistoryRepository
	relay   RelayClient
	limiter *RateLimiter
	logger  *elog.Component
}

func NewChatService(repo repository.ChatHistoryRepository,
	relay RelayClient,
	limiter *RateLimiter) ChatService {
	return &chatService{
		repo:    repo,
		relay:   relay,
		limiter: limiter,
		logger:  elog.DefaultLogger,
	}
}

func (s *chatService) Ask(ctx context.Context, userID string, uid int64, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	wait, ok := s.limiter.Allow(userID)
	if !ok {
		return "", ErrRateLimited{WaitSeconds: int(wait.Seconds()) + 1}
	}
	response, err := s.relay.Generate(ctx, userID, message)
	if err != nil {
		s.limiter.Release(userID)
		return "", err
	}
	if uid > 0 {
		_, serr := s.repo.Save(ctx, domain.ChatRecord{
			Uid:      uid,
			Message:  message,
			Response: response,
		})
		if serr != nil {
			// 历史没存上不影响这轮回复
			s.logger.Error("保存聊天历史失败",
				elog.FieldErr(serr),
				elog.Int64("uid", uid))
		}
	}
	return response, nil
}

func (s *chatService) History(ctx context.Context, uid int64) ([]domain.ChatRecord, error) {
	return s.repo.ListByUid(ctx, uid)
}

func (s *chatService) EndSession(userID string) {
	s.limiter.Release(userID)
}
