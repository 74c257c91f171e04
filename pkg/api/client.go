package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"asoctl/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultOrigin 服务端固定origin，可通过配置文件覆盖（用于联调环境）
const DefaultOrigin = "https://api.asoboard.com"

// Client 是面向服务端REST接口的HTTP网关。除登录轮询外，所有请求都是单次尝试，
// 不做自动重试。
type Client struct {
	origin     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient 创建API客户端。origin为空时使用DefaultOrigin。
// 单个请求不设置超时，超时语义由底层transport和调用方context决定。
func NewClient(origin string) *Client {
	if origin == "" {
		origin = DefaultOrigin
	}
	return &Client{
		origin:     strings.TrimRight(origin, "/"),
		httpClient: &http.Client{},
		// 客户端侧限速，避免触发服务端429
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
}

// Origin returns the API origin the client talks to.
func (c *Client) Origin() string {
	return c.origin
}

// Response is the uniform success result of an API call. Exactly one of
// JSON, Text or NoContent is meaningful.
type Response struct {
	Status    int
	JSON      interface{}
	Text      string
	NoContent bool
}

// Decode re-marshals the parsed JSON value into a typed struct.
func (r *Response) Decode(v interface{}) error {
	if r.JSON == nil {
		return fmt.Errorf("response has no JSON body")
	}
	data, err := json.Marshal(r.JSON)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Do 发送一次JSON请求。body为nil时不携带请求体；token为空时不携带认证头。
// 非2xx响应统一解码为*Error返回。
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, token string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.origin+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.origin, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 读取失败时按空响应体处理，不上抛读错误
		data, _ := io.ReadAll(resp.Body)
		apiErr := newError(resp.StatusCode, data, c.origin)
		logger.Debug("API error response",
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", requestID),
			zap.String("message", apiErr.Message))
		return nil, apiErr
	}

	if resp.StatusCode == http.StatusNoContent {
		return &Response{Status: resp.StatusCode, NoContent: true}, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "json") {
		var value interface{}
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("failed to parse response JSON: %w", err)
		}
		return &Response{Status: resp.StatusCode, JSON: value}, nil
	}

	return &Response{Status: resp.StatusCode, Text: string(data)}, nil
}

// Get 发送GET请求
func (c *Client) Get(ctx context.Context, path, token string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, token)
}

// Post 发送POST请求
func (c *Client) Post(ctx context.Context, path string, body interface{}, token string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, token)
}

// Delete 发送DELETE请求
func (c *Client) Delete(ctx context.Context, path, token string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, token)
}
