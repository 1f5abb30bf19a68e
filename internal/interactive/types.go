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

package interactive

import (
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/events"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/repository"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/service"
	"github.com/mindblowndbs/mindblown/internal/interactive/internal/web"
)

const (
	StoryBiz   = repository.StoryBiz
	CommentBiz = repository.CommentBiz
)

type Handler = web.Handler
type Interactive = domain.Interactive
type LikeRecord = domain.LikeRecord
type LikeStatus = domain.LikeStatus

// Service 给 story 模块同步调用
type Service = service.InteractiveService

type Module struct {
	Hdl *Handler
	Svc Service
	C   *events.Consumer
}
