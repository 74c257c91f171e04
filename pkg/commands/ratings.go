package commands

import (
	"fmt"
	"net/url"

	"asoctl/pkg/api"
	"asoctl/pkg/normalize"
	"asoctl/pkg/render"

	"github.com/spf13/cobra"
)

// newRatingsCommand 查询应用评分汇总
func newRatingsCommand(c *CLI) *cobra.Command {
	var flags appFlags
	var region, period string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "ratings [app]",
		Short: "Show ratings summary for an app",
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
			reg, err := normalize.Region(orDefault(region, c.defaultRegion()))
			if err != nil {
				return fmt.Errorf("invalid --region value %q: %w", region, err)
			}
			query.Set("region", reg)
			if period != "" {
				p, err := normalize.Period(period)
				if err != nil {
					return fmt.Errorf("invalid --period value %q: %w", period, err)
				}
				query.Set("period", fmt.Sprintf("%d", p))
			}

			resp, err := c.client.Get(cmd.Context(), "/api/cli/ratings?"+query.Encode(), token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var sum api.RatingsSummary
			if err := resp.Decode(&sum); err != nil {
				return err
			}
			render.KeyValue(c.stdout, [][2]string{
				{"Region", sum.Region},
				{"Average", fmt.Sprintf("%.2f", sum.Average)},
				{"Count", fmt.Sprintf("%d", sum.Count)},
				{"5 stars", fmt.Sprintf("%d", sum.Star5)},
				{"4 stars", fmt.Sprintf("%d", sum.Star4)},
				{"3 stars", fmt.Sprintf("%d", sum.Star3)},
				{"2 stars", fmt.Sprintf("%d", sum.Star2)},
				{"1 star", fmt.Sprintf("%d", sum.Star1)},
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	cmd.Flags().StringVar(&region, "region", "", "two-letter store region")
	cmd.Flags().StringVar(&period, "period", "", "reporting window in days (7, 30 or 90)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw JSON")
	return cmd
}
