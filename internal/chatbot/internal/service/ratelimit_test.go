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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Parallel()
	now := time.Unix(1700000000, 0)
	newLimiter := func() *RateLimiter {
		l := NewRateLimiter(10 * time.Second)
		l.now = func() time.Time { return now }
		return l
	}

	t.Run("首次放行", func(t *testing.T) {
		t.Parallel()
		l := newLimiter()
		wait, ok := l.Allow("user_1")
		assert.True(t, ok)
		assert.Zero(t, wait)
	})

	t.Run("窗口内拒绝并给出剩余等待", func(t *testing.T) {
		t.Parallel()
		l := NewRateLimiter(10 * time.Second)
		cur := now
		l.now = func() time.Time { return cur }
		_, ok := l.Allow("user_1")
		assert.True(t, ok)
		cur = now.Add(3 * time.Second)
		wait, ok := l.Allow("user_1")
		assert.False(t, ok)
		assert.Equal(t, 7*time.Second, wait)
	})

	t.Run("窗口过了重新放行", func(t *testing.T) {
		t.Parallel()
		l := NewRateLimiter(10 * time.Second)
		cur := now
		l.now = func() time.Time { return cur }
		_, ok := l.Allow("user_1")
		assert.True(t, ok)
		cur = now.Add(10 * time.Second)
		_, ok = l.Allow("user_1")
		assert.True(t, ok)
	})

	t.Run("不同用户互不影响", func(t *testing.T) {
		t.Parallel()
		l := newLimiter()
		_, ok := l.Allow("user_1")
		assert.True(t, ok)
		_, ok = l.Allow("user_2")
		assert.True(t, ok)
	})

	t.Run("失败释放后立刻可以重试", func(t *testing.T) {
		t.Parallel()
		l := newLimiter()
		_, ok := l.Allow("user_1")
		assert.True(t, ok)
		_, ok = l.Allow("user_1")
		assert.False(t, ok)
		l.Release("user_1")
		_, ok = l.Allow("user_1")
		assert.True(t, ok)
	})
}
