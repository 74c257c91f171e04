package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Error 表示API请求失败，携带HTTP状态码、失败消息和服务端返回的结构化负载
type Error struct {
	Status  int
	Message string
	Payload map[string]interface{}
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

// SubscribeURL 返回负载中的订阅链接（402响应），不存在时返回空串
func (e *Error) SubscribeURL() string {
	if s, ok := e.Payload["subscribeUrl"].(string); ok {
		return s
	}
	return ""
}

// RetryAfterSeconds 返回负载中的重试等待秒数（429响应），向上取整；不存在时返回0
func (e *Error) RetryAfterSeconds() int {
	if v, ok := e.Payload["retryAfter"].(float64); ok && v > 0 {
		return int(math.Ceil(v))
	}
	return 0
}

// newError 按统一规则解码失败响应体:
//   - JSON对象且包含字符串error字段: 消息取该字段，整个对象作为结构化负载
//   - 非JSON且看起来是HTML文档: 合成 "request failed (status) from (origin)"
//   - 其他情况: 消息为原始文本
func newError(status int, body []byte, origin string) *Error {
	text := strings.TrimSpace(string(body))

	var payload map[string]interface{}
	parsed := json.Unmarshal(body, &payload) == nil && payload != nil
	if parsed {
		if msg, ok := payload["error"].(string); ok && msg != "" {
			return &Error{Status: status, Message: msg, Payload: payload}
		}
		return &Error{Status: status, Message: text, Payload: payload}
	}

	if looksLikeHTML(text) {
		return &Error{
			Status:  status,
			Message: fmt.Sprintf("request failed (%d) from %s", status, origin),
		}
	}

	return &Error{Status: status, Message: text}
}

// looksLikeHTML 判断响应体是否像HTML文档（反向代理错误页等）
func looksLikeHTML(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(lower, "<!doctype") ||
		strings.HasPrefix(lower, "<html") ||
		strings.Contains(lower, "<body")
}
