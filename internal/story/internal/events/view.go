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

package events

import (
	"github.com/ecodeclub/mq-api"

	"github.com/mindblowndbs/mindblown/internal/pkg/mqx"
)

const viewEventTopic = "interactive_events"

// ViewEvent 浏览计数走异步，interactive 模块消费
type ViewEvent struct {
	Biz    string `json:"biz,omitempty"`
	BizId  int64  `json:"biz_id,omitempty"`
	Action string `json:"action,omitempty"`
	Uid    int64  `json:"uid,omitempty"`
}

type ViewEventProducer interface {
	mqx.Producer[ViewEvent]
}

func NewViewEventProducer(q mq.MQ) (ViewEventProducer, error) {
	return mqx.NewGeneralProducer[ViewEvent](q, viewEventTopic)
}
