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

type GetCntReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type GetCntResp struct {
	LikeCnt int64 `json:"likeCnt"`
	ViewCnt int64 `json:"viewCnt"`
	// 是否点赞过
	Liked bool `json:"liked"`
}

type BatchGetCntReq struct {
	Biz    string  `json:"biz"`
	BizIds []int64 `json:"bizIds"`
}

type Interactive struct {
	ID      int64 `json:"id"`
	LikeCnt int64 `json:"likeCnt"`
	ViewCnt int64 `json:"viewCnt"`
	Liked   bool  `json:"liked"`
}

type BatchGetCntResp struct {
	InteractiveMap map[int64]Interactive `json:"interactiveMap"`
}
