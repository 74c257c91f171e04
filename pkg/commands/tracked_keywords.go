package commands

import (
	"fmt"
	"net/url"

	"asoctl/pkg/api"
	"asoctl/pkg/normalize"
	"asoctl/pkg/render"

	"github.com/spf13/cobra"
)

// newTrackedKeywordsCommand 管理持续监控的关键词。支持计划应用(--planned-app)。
func newTrackedKeywordsCommand(c *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracked-keywords",
		Short: "Manage continuously monitored keywords",
	}
	cmd.AddCommand(
		newTrackedKeywordsListCommand(c),
		newTrackedKeywordsMutateCommand(c, "add"),
		newTrackedKeywordsMutateCommand(c, "remove"),
	)
	return cmd
}

func newTrackedKeywordsListCommand(c *CLI) *cobra.Command {
	var flags appFlags
	var region, platform string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list [app]",
		Short: "List tracked keywords for an app",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}
			loc, _, err := resolveApp(args, flags, true)
			if err != nil {
				return err
			}

			query := url.Values{}
			locatorQuery(query, loc)
			if err := c.regionPlatformQuery(query, region, platform); err != nil {
				return err
			}

			resp, err := c.client.Get(cmd.Context(), "/api/cli/tracked-keywords?"+query.Encode(), token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var out struct {
				Keywords []api.TrackedKeyword `json:"keywords"`
			}
			if err := resp.Decode(&out); err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Keywords))
			for _, k := range out.Keywords {
				rows = append(rows, []string{
					k.Keyword,
					formatRank(k.Rank),
					formatRank(k.BestRank),
					formatChange(k.Change),
				})
			}
			render.Table(c.stdout, []string{"Keyword", "Rank", "Best", "Change"}, rows)
			return nil
		},
	}

	addTrackedKeywordFlags(cmd, &flags, &region, &platform)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw JSON")
	return cmd
}

// newTrackedKeywordsMutateCommand add和remove共享同一套参数处理
func newTrackedKeywordsMutateCommand(c *CLI, action string) *cobra.Command {
	var flags appFlags
	var region, platform string

	short := "Add keywords to continuous monitoring"
	if action == "remove" {
		short = "Remove keywords from continuous monitoring"
	}

	cmd := &cobra.Command{
		Use:   action + " [app] <keyword>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}
			loc, rest, err := resolveApp(args, flags, true)
			if err != nil {
				return err
			}

			keywords := normalize.KeywordList(rest)
			if len(keywords) == 0 {
				return fmt.Errorf("no keywords given")
			}
			if len(keywords) > normalize.MaxTrackedKeywords {
				return fmt.Errorf("too many keywords: %d given, at most %d per %s", len(keywords), normalize.MaxTrackedKeywords, action)
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

			if _, err := c.client.Post(cmd.Context(), "/api/cli/tracked-keywords/"+action, body, token); err != nil {
				return err
			}

			verb := "Added"
			if action == "remove" {
				verb = "Removed"
			}
			fmt.Fprintf(c.stdout, "%s %d keyword(s).\n", verb, len(keywords))
			return nil
		},
	}

	addTrackedKeywordFlags(cmd, &flags, &region, &platform)
	return cmd
}

func addTrackedKeywordFlags(cmd *cobra.Command, flags *appFlags, region, platform *string) {
	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	cmd.Flags().StringVar(&flags.planned, "planned-app", "", "planned app id")
	cmd.Flags().StringVar(region, "region", "", "two-letter store region")
	cmd.Flags().StringVar(platform, "platform", "", "platform (iphone, ipad, mac, appletv, watch, vision)")
}
