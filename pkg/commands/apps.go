package commands

import (
	"fmt"
	"net/url"
	"strings"

	"asoctl/pkg/api"
	"asoctl/pkg/normalize"
	"asoctl/pkg/render"

	"github.com/spf13/cobra"
)

// newSubscriptionCommand 查询订阅状态
func newSubscriptionCommand(c *CLI) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Show the current subscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}
			resp, err := c.client.Get(cmd.Context(), "/api/cli/subscription", token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var sub api.Subscription
			if err := resp.Decode(&sub); err != nil {
				return err
			}
			pairs := [][2]string{
				{"Plan", sub.Plan},
				{"Status", sub.Status},
			}
			if sub.RenewsAt != "" {
				pairs = append(pairs, [2]string{"Renews", sub.RenewsAt})
			}
			if sub.ExpiresAt != "" {
				pairs = append(pairs, [2]string{"Expires", sub.ExpiresAt})
			}
			render.KeyValue(c.stdout, pairs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw JSON")
	return cmd
}

// newSearchAppsCommand 按名称搜索商店应用
func newSearchAppsCommand(c *CLI) *cobra.Command {
	var region, platform string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search-apps <term>...",
		Short: "Search the store for apps by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}

			term := strings.TrimSpace(strings.Join(args, " "))
			if term == "" {
				return fmt.Errorf("search term is empty")
			}

			query := url.Values{}
			query.Set("term", term)
			if err := c.regionPlatformQuery(query, region, platform); err != nil {
				return err
			}

			resp, err := c.client.Get(cmd.Context(), "/api/cli/apps/search?"+query.Encode(), token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var out struct {
				Apps []api.App `json:"apps"`
			}
			if err := resp.Decode(&out); err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Apps))
			for _, a := range out.Apps {
				rows = append(rows, []string{a.ID, a.Name, a.Developer})
			}
			render.Table(c.stdout, []string{"ID", "Name", "Developer"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "two-letter store region")
	cmd.Flags().StringVar(&platform, "platform", "", "platform (iphone, ipad, mac, appletv, watch, vision)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw JSON")
	return cmd
}

// newListAppsCommand 列出账号下跟踪中的应用
func newListAppsCommand(c *CLI) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list-apps",
		Short: "List tracked and planned apps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}
			resp, err := c.client.Get(cmd.Context(), "/api/cli/apps", token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var out struct {
				Apps []api.App `json:"apps"`
			}
			if err := resp.Decode(&out); err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Apps))
			for _, a := range out.Apps {
				id := a.ID
				if id == "" {
					id = a.PlannedID + " (planned)"
				}
				rows = append(rows, []string{id, a.Name, a.Region, a.Platform})
			}
			render.Table(c.stdout, []string{"ID", "Name", "Region", "Platform"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw JSON")
	return cmd
}

// newTrackAppCommand 开始跟踪一个商店应用
func newTrackAppCommand(c *CLI) *cobra.Command {
	var flags appFlags
	var region string

	cmd := &cobra.Command{
		Use:   "track-app [app]",
		Short: "Start tracking a store app",
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
			reg, err := normalize.Region(orDefault(region, c.defaultRegion()))
			if err != nil {
				return fmt.Errorf("invalid --region value %q: %w", region, err)
			}

			body := map[string]interface{}{"region": reg}
			locatorBody(body, loc)
			if _, err := c.client.Post(cmd.Context(), "/api/cli/apps/track", body, token); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Tracking app %s in %s.\n", loc.AppID, reg)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	cmd.Flags().StringVar(&region, "region", "", "two-letter store region")
	return cmd
}

// newUntrackAppCommand 停止跟踪一个商店应用
func newUntrackAppCommand(c *CLI) *cobra.Command {
	var flags appFlags

	cmd := &cobra.Command{
		Use:   "untrack-app [app]",
		Short: "Stop tracking a store app",
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

			body := map[string]interface{}{}
			locatorBody(body, loc)
			if _, err := c.client.Post(cmd.Context(), "/api/cli/apps/untrack", body, token); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Stopped tracking app %s.\n", loc.AppID)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	return cmd
}

// newPlanAppCommand 登记一个未上架的计划应用
func newPlanAppCommand(c *CLI) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "plan-app <planned-id>",
		Short: "Register a planned (not yet published) app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}
			id, err := normalize.PlannedID(args[0])
			if err != nil {
				return fmt.Errorf("invalid planned app id %q: %w", args[0], err)
			}

			body := map[string]interface{}{"plannedAppId": id}
			if name != "" {
				body["name"] = name
			}
			if _, err := c.client.Post(cmd.Context(), "/api/cli/apps/plan", body, token); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Planned app %s registered.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name for the planned app")
	return cmd
}

// newUnplanAppCommand 删除一个计划应用
func newUnplanAppCommand(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "unplan-app <planned-id>",
		Short: "Remove a planned app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}
			id, err := normalize.PlannedID(args[0])
			if err != nil {
				return fmt.Errorf("invalid planned app id %q: %w", args[0], err)
			}

			body := map[string]interface{}{"plannedAppId": id}
			if _, err := c.client.Post(cmd.Context(), "/api/cli/apps/unplan", body, token); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Planned app %s removed.\n", id)
			return nil
		},
	}
}
