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
	"sync"
	"time"
)

// RateLimiter 每个用户两次请求之间至少间隔 interval。
// 远端模型一轮推理要几分钟，这里挡住手快的用户
type RateLimiter struct {
	mu       sync.Mutex
	last     map[string]time.Time
	interval time.Duration
	now      func() time.Time
}

func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		last:     make(map[string]time.Time),
		interval: interval,
		now:      time.Now,
	}
}

// Allow 放行则占用本轮时间窗，拒绝时返回还要等多久
func (r *RateLimiter) Allow(userID string) (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if last, ok := r.last[userID]; ok {
		elapsed := now.Sub(last)
		if elapsed < r.interval {
			return r.interval - elapsed, false
		}
	}
	r.last[userID] = now
	return 0, true
}

// Release 请求失败时释放时间窗，用户可以立刻重试
func (r *RateLimiter) Release(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.last, userID)
}
