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

package event

import (
	"github.com/ecodeclub/mq-api"

	"github.com/mindblowndbs/mindblown/internal/pkg/mqx"
)

const PushEventTopic = "notification_events"

// PushEvent 交给推送通道消费，站内信已经落库，推送失败不影响主流程
type PushEvent struct {
	Uid   int64  `json:"uid"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type PushEventProducer interface {
	mqx.Producer[PushEvent]
}

func NewPushEventProducer(q mq.MQ) (PushEventProducer, error) {
	return mqx.NewGeneralProducer[PushEvent](q, PushEventTopic)
}
