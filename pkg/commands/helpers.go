package commands

import (
	"fmt"
	"net/url"
	"strconv"

	"asoctl/pkg/normalize"
)

// appFlags 应用定位相关的公共flag值
type appFlags struct {
	app     string
	planned string
}

// resolveApp 解析命令的应用目标。首个位置参数先按应用定位符贪心尝试，
// 解析成功则消费掉；否则保留给关键词/查询解析，转而要求显式flag。
// 这是刻意保留的便捷歧义：长得像应用id的关键词会被吃掉。
func resolveApp(args []string, flags appFlags, allowPlanned bool) (*normalize.AppLocator, []string, error) {
	if len(args) > 0 {
		if loc := normalize.ParseAppLocator(args[0]); loc != nil {
			return loc, args[1:], nil
		}
	}

	if flags.app != "" {
		loc := normalize.ParseAppLocator(flags.app)
		if loc == nil {
			return nil, nil, fmt.Errorf("invalid --app value %q: expected a numeric app id, idNNN token or App Store URL", flags.app)
		}
		return loc, args, nil
	}

	if allowPlanned && flags.planned != "" {
		id, err := normalize.PlannedID(flags.planned)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --planned-app value %q: %w", flags.planned, err)
		}
		return &normalize.AppLocator{PlannedID: id}, args, nil
	}

	if allowPlanned {
		return nil, nil, fmt.Errorf("no app specified: pass an app id or App Store URL, or use --app / --planned-app")
	}
	return nil, nil, fmt.Errorf("no app specified: pass an app id or App Store URL, or use --app")
}

// locatorQuery 将应用定位符写入查询参数
func locatorQuery(v url.Values, loc *normalize.AppLocator) {
	if loc.IsPlanned() {
		v.Set("plannedAppId", loc.PlannedID)
	} else {
		v.Set("appId", loc.AppID)
	}
}

// locatorBody 将应用定位符写入请求体
func locatorBody(body map[string]interface{}, loc *normalize.AppLocator) {
	if loc.IsPlanned() {
		body["plannedAppId"] = loc.PlannedID
	} else {
		body["appId"] = loc.AppID
	}
}

// regionPlatformQuery 归一化并写入地区和平台查询参数
func (c *CLI) regionPlatformQuery(v url.Values, rawRegion, rawPlatform string) error {
	region, err := normalize.Region(orDefault(rawRegion, c.defaultRegion()))
	if err != nil {
		return fmt.Errorf("invalid --region value %q: %w", rawRegion, err)
	}
	platform, err := normalize.Platform(rawPlatform, c.defaultPlatform())
	if err != nil {
		return fmt.Errorf("invalid --platform value %q: %w", rawPlatform, err)
	}
	v.Set("region", region)
	v.Set("platform", platform)
	return nil
}

// normalizeRelated 将单个参数解析为数字应用id，用于related-apps目标列表
func normalizeRelated(raw string) string {
	if loc := normalize.ParseAppLocator(raw); loc != nil {
		return loc.AppID
	}
	return ""
}

func orDefault(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}

// formatRank 0表示未上榜
func formatRank(rank int) string {
	if rank <= 0 {
		return "-"
	}
	return strconv.Itoa(rank)
}

// formatChange 带符号的排名变化
func formatChange(change int) string {
	if change > 0 {
		return "+" + strconv.Itoa(change)
	}
	return strconv.Itoa(change)
}
