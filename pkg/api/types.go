package api

// App 商店应用的基础信息
type App struct {
	ID        string `json:"id"`
	PlannedID string `json:"plannedId,omitempty"` // 计划应用使用自定义标识
	Name      string `json:"name"`
	Developer string `json:"developer,omitempty"`
	Region    string `json:"region,omitempty"`
	Platform  string `json:"platform,omitempty"`
	IconURL   string `json:"iconUrl,omitempty"`
	Tracked   bool   `json:"tracked,omitempty"`
}

// KeywordMetric 单个关键词的查询指标
type KeywordMetric struct {
	Keyword    string  `json:"keyword"`
	Popularity float64 `json:"popularity"` // 搜索热度
	Difficulty float64 `json:"difficulty"` // 竞争难度
	Rank       int     `json:"rank"`       // 当前排名，0表示未上榜
	Apps       int     `json:"apps"`       // 结果应用数
}

// TrackedKeyword 持续监控中的关键词
type TrackedKeyword struct {
	Keyword  string `json:"keyword"`
	Rank     int    `json:"rank"`
	BestRank int    `json:"bestRank"`
	Change   int    `json:"change"` // 相对上一周期的排名变化
	AddedAt  string `json:"addedAt,omitempty"`
}

// RelatedApp 竞品关联应用
type RelatedApp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Event 编辑事件（版本发布、推荐位、促销等）
type Event struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Type string `json:"type"`
	Note string `json:"note,omitempty"`
}

// ChartEntry 榜单排名记录
type ChartEntry struct {
	Date     string `json:"date"`
	Rank     int    `json:"rank"`
	Category string `json:"category"`
}

// Feature 应用在商店编辑推荐位的曝光记录
type Feature struct {
	Date    string `json:"date"`
	Region  string `json:"region"`
	Section string `json:"section"`
}

// RatingsSummary 评分汇总
type RatingsSummary struct {
	Region  string  `json:"region"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Breakdown
}

// Breakdown 按星级细分的评分数量
type Breakdown struct {
	Star1 int `json:"star1"`
	Star2 int `json:"star2"`
	Star3 int `json:"star3"`
	Star4 int `json:"star4"`
	Star5 int `json:"star5"`
}

// Subscription 订阅状态
type Subscription struct {
	Plan      string `json:"plan"`
	Status    string `json:"status"`
	RenewsAt  string `json:"renewsAt,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}
