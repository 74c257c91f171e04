package commands

import (
	"fmt"
	"net/url"

	"asoctl/pkg/api"
	"asoctl/pkg/render"

	"github.com/spf13/cobra"
)

// newRelatedAppsCommand 管理竞品关联应用
func newRelatedAppsCommand(c *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "related-apps",
		Short: "Manage related (competitor) apps",
	}
	cmd.AddCommand(
		newRelatedAppsListCommand(c),
		newRelatedAppsMutateCommand(c, "add"),
		newRelatedAppsMutateCommand(c, "remove"),
	)
	return cmd
}

func newRelatedAppsListCommand(c *CLI) *cobra.Command {
	var flags appFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list [app]",
		Short: "List related apps",
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
			resp, err := c.client.Get(cmd.Context(), "/api/cli/related-apps?"+query.Encode(), token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var out struct {
				Apps []api.RelatedApp `json:"apps"`
			}
			if err := resp.Decode(&out); err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Apps))
			for _, a := range out.Apps {
				rows = append(rows, []string{a.ID, a.Name})
			}
			render.Table(c.stdout, []string{"ID", "Name"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw JSON")
	return cmd
}

// newRelatedAppsMutateCommand add和remove共享参数处理，关联目标是另一组应用id
func newRelatedAppsMutateCommand(c *CLI, action string) *cobra.Command {
	var flags appFlags

	short := "Add related apps"
	if action == "remove" {
		short = "Remove related apps"
	}

	cmd := &cobra.Command{
		Use:   action + " [app] <related-app>...",
		Short: short,
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

			related := make([]string, 0, len(rest))
			for _, raw := range rest {
				rl := normalizeRelated(raw)
				if rl == "" {
					return fmt.Errorf("invalid related app %q: expected a numeric app id, idNNN token or App Store URL", raw)
				}
				related = append(related, rl)
			}
			if len(related) == 0 {
				return fmt.Errorf("no related apps given")
			}

			body := map[string]interface{}{"relatedAppIds": related}
			locatorBody(body, loc)
			if _, err := c.client.Post(cmd.Context(), "/api/cli/related-apps/"+action, body, token); err != nil {
				return err
			}

			verb := "Added"
			if action == "remove" {
				verb = "Removed"
			}
			fmt.Fprintf(c.stdout, "%s %d related app(s).\n", verb, len(related))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	return cmd
}
