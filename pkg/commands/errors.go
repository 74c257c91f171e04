package commands

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"asoctl/pkg/api"
)

var errNotLoggedIn = errors.New("not logged in or session expired. Run `asoctl login` to sign in")

// FormatError 将错误转换为单行用户可读消息。网络层失败按状态码分类:
// 401重新登录、402订阅、429限流、404配置提示，其余原样透出。
func FormatError(err error) string {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch apiErr.Status {
	case http.StatusUnauthorized:
		return "authentication expired or invalid. Run `asoctl login` to sign in again"
	case http.StatusPaymentRequired:
		msg := apiErr.Message
		if msg == "" {
			msg = "an active subscription is required"
		}
		if u := apiErr.SubscribeURL(); u != "" {
			return fmt.Sprintf("%s (subscribe at %s)", msg, u)
		}
		return msg
	case http.StatusTooManyRequests:
		msg := apiErr.Message
		if msg == "" {
			msg = "rate limited"
		}
		if s := apiErr.RetryAfterSeconds(); s > 0 {
			return fmt.Sprintf("%s (retry in %ds)", msg, s)
		}
		return msg
	case http.StatusNotFound:
		msg := apiErr.Message
		if msg == "" {
			msg = "endpoint not found"
		}
		return fmt.Sprintf("%s (check the api origin in your config and your connectivity)", msg)
	}

	if m := strings.TrimSpace(apiErr.Message); m != "" {
		return m
	}
	return apiErr.Error()
}
