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

package web

type SaveReq struct {
	Mood     string `json:"mood"`
	Progress string `json:"progress"`
}

type DayReq struct {
	// Day 是 2006-01-02 格式
	Day string `json:"day"`
}

type Entry struct {
	ID       int64  `json:"id"`
	Mood     string `json:"mood"`
	Progress string `json:"progress"`
	Day      string `json:"day"`
	Ctime    int64  `json:"ctime"`
}

type CheckResp struct {
	Exists bool `json:"exists"`
}

type ListResp struct {
	Entries []Entry `json:"entries"`
}
