package commands

import (
	"fmt"

	"asoctl/pkg/api"
	"asoctl/pkg/normalize"
	"asoctl/pkg/render"

	"github.com/spf13/cobra"
)

// newKeywordsCommand 查询关键词指标。首个位置参数可以直接是应用定位符:
//
//	asoctl keywords id6443551234 "run tracker" running
func newKeywordsCommand(c *CLI) *cobra.Command {
	var flags appFlags
	var region, platform, period string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "keywords [app] <keyword>...",
		Short: "Look up keyword metrics for an app",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}

			loc, rest, err := resolveApp(args, flags, false)
			if err != nil {
				return err
			}

			keywords := normalize.KeywordList(rest)
			if len(keywords) == 0 {
				return fmt.Errorf("no keywords given")
			}
			if len(keywords) > normalize.MaxMetricsKeywords {
				return fmt.Errorf("too many keywords: %d given, at most %d per lookup", len(keywords), normalize.MaxMetricsKeywords)
			}

			reg, err := normalize.Region(orDefault(region, c.defaultRegion()))
			if err != nil {
				return fmt.Errorf("invalid --region value %q: %w", region, err)
			}
			plat, err := normalize.Platform(platform, c.defaultPlatform())
			if err != nil {
				return fmt.Errorf("invalid --platform value %q: %w", platform, err)
			}

			body := map[string]interface{}{
				"region":   reg,
				"platform": plat,
				"keywords": keywords,
			}
			locatorBody(body, loc)
			if period != "" {
				p, err := normalize.Period(period)
				if err != nil {
					return fmt.Errorf("invalid --period value %q: %w", period, err)
				}
				body["period"] = p
			}

			resp, err := c.client.Post(cmd.Context(), "/api/cli/keywords/metrics", body, token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var out struct {
				Keywords []api.KeywordMetric `json:"keywords"`
			}
			if err := resp.Decode(&out); err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Keywords))
			for _, k := range out.Keywords {
				rows = append(rows, []string{
					k.Keyword,
					fmt.Sprintf("%.1f", k.Popularity),
					fmt.Sprintf("%.1f", k.Difficulty),
					formatRank(k.Rank),
					fmt.Sprintf("%d", k.Apps),
				})
			}
			render.Table(c.stdout, []string{"Keyword", "Popularity", "Difficulty", "Rank", "Apps"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	cmd.Flags().StringVar(&region, "region", "", "two-letter store region")
	cmd.Flags().StringVar(&platform, "platform", "", "platform (iphone, ipad, mac, appletv, watch, vision)")
	cmd.Flags().StringVar(&period, "period", "", "reporting window in days (7, 30 or 90)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw JSON")
	return cmd
}
