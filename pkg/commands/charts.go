package commands

import (
	"fmt"
	"net/url"

	"asoctl/pkg/api"
	"asoctl/pkg/normalize"
	"asoctl/pkg/render"

	"github.com/spf13/cobra"
)

// newChartsCommand 查询应用的榜单排名历史
func newChartsCommand(c *CLI) *cobra.Command {
	var flags appFlags
	var region, platform, period string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "charts [app]",
		Short: "Show chart ranking history for an app",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}
			loc, _, err := resolveApp(args, flags, false)
			if err != nil {
				return err
			}

			query := url.Values{}
			locatorQuery(query, loc)
			if err := c.regionPlatformQuery(query, region, platform); err != nil {
				return err
			}
			if period != "" {
				p, err := normalize.Period(period)
				if err != nil {
					return fmt.Errorf("invalid --period value %q: %w", period, err)
				}
				query.Set("period", fmt.Sprintf("%d", p))
			}

			resp, err := c.client.Get(cmd.Context(), "/api/cli/charts?"+query.Encode(), token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var out struct {
				Entries []api.ChartEntry `json:"entries"`
			}
			if err := resp.Decode(&out); err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Entries))
			for _, e := range out.Entries {
				rows = append(rows, []string{e.Date, formatRank(e.Rank), e.Category})
			}
			render.Table(c.stdout, []string{"Date", "Rank", "Category"}, rows)
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
