package commands

import (
	"fmt"
	"net/url"

	"asoctl/pkg/api"
	"asoctl/pkg/normalize"
	"asoctl/pkg/render"

	"github.com/spf13/cobra"
)

// newFeaturesCommand 查询应用在商店编辑推荐位的曝光记录
func newFeaturesCommand(c *CLI) *cobra.Command {
	var flags appFlags
	var region string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "features [app]",
		Short: "Show editorial featuring placements for an app",
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

			resp, err := c.client.Get(cmd.Context(), "/api/cli/features?"+query.Encode(), token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var out struct {
				Features []api.Feature `json:"features"`
			}
			if err := resp.Decode(&out); err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Features))
			for _, f := range out.Features {
				rows = append(rows, []string{f.Date, f.Region, f.Section})
			}
			render.Table(c.stdout, []string{"Date", "Region", "Section"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	cmd.Flags().StringVar(&region, "region", "", "two-letter store region")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw JSON")
	return cmd
}
