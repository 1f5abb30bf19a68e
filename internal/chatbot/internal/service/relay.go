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
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrRelayTimeout 远端模型一轮推理超过整体超时
var ErrRelayTimeout = errors.New("chatbot 响应超时")

type generateReq struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type generateResp struct {
	Response string `json:"response"`
}

type RelayClient interface {
	Generate(ctx context.Context, userID, message string) (string, error)
}

type restyRelayClient struct {
	client   *resty.Client
	endpoint string
}

func NewRelayClient(endpoint string, timeout time.Duration) RelayClient {
	return &restyRelayClient{
		client:   resty.New().SetTimeout(timeout),
		endpoint: endpoint,
	}
}

func (c *restyRelayClient) Generate(ctx context.Context, userID, message string) (string, error) {
	var result generateResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(generateReq{
			UserID:  userID,
			Message: message,
		}).
		SetResult(&result).
		Post(c.endpoint)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrRelayTimeout
		}
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("chatbot 服务返回错误: status=%d", resp.StatusCode())
	}
	return result.Response, nil
}
