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

package job

import (
	"context"

	"github.com/gotomicro/ego/task/ecron"

	"github.com/mindblowndbs/mindblown/internal/mindtracker/internal/service"
)

var _ ecron.NamedJob = (*ReminderJob)(nil)

// ReminderJob 每天扫一遍没打卡的用户发提醒
type ReminderJob struct {
	svc service.MindTrackerService
}

func NewReminderJob(svc service.MindTrackerService) *ReminderJob {
	return &ReminderJob{svc: svc}
}

func (r *ReminderJob) Name() string {
	return "MindTrackerReminderJob"
}

func (r *ReminderJob) Run(ctx context.Context) error {
	return r.svc.Remind(ctx)
}
