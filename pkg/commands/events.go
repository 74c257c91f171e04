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

// newEventsCommand 管理编辑事件（版本发布、促销、推荐位等时间线标记）
func newEventsCommand(c *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage editorial events on the app timeline",
	}
	cmd.AddCommand(
		newEventsListCommand(c),
		newEventsAddCommand(c),
		newEventsDeleteCommand(c),
	)
	return cmd
}

func newEventsListCommand(c *CLI) *cobra.Command {
	var flags appFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list [app]",
		Short: "List events for an app",
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
			resp, err := c.client.Get(cmd.Context(), "/api/cli/events?"+query.Encode(), token)
			if err != nil {
				return err
			}
			if jsonOut {
				return render.JSON(c.stdout, resp.JSON)
			}

			var out struct {
				Events []api.Event `json:"events"`
			}
			if err := resp.Decode(&out); err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Events))
			for _, e := range out.Events {
				rows = append(rows, []string{e.ID, e.Date, e.Type, e.Note})
			}
			render.Table(c.stdout, []string{"ID", "Date", "Type", "Note"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw JSON")
	return cmd
}

func newEventsAddCommand(c *CLI) *cobra.Command {
	var flags appFlags
	var date, eventType, note string

	cmd := &cobra.Command{
		Use:   "add [app]",
		Short: "Add an event to the app timeline",
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

			day, err := normalize.DateOnly(date)
			if err != nil {
				return fmt.Errorf("invalid --date value %q: %w", date, err)
			}
			if strings.TrimSpace(eventType) == "" {
				return fmt.Errorf("--type is required")
			}

			body := map[string]interface{}{
				"date": day,
				"type": strings.TrimSpace(eventType),
			}
			if note != "" {
				body["note"] = note
			}
			locatorBody(body, loc)

			if _, err := c.client.Post(cmd.Context(), "/api/cli/events", body, token); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Event added on %s.\n", day)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.app, "app", "", "app id, idNNN token or App Store URL")
	cmd.Flags().StringVar(&date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&eventType, "type", "", "event type (release, promo, feature, ...)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	return cmd
}

func newEventsDeleteCommand(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.token()
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if id == "" {
				return fmt.Errorf("event id is empty")
			}
			if _, err := c.client.Delete(cmd.Context(), "/api/cli/events/"+url.PathEscape(id), token); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Event %s deleted.\n", id)
			return nil
		},
	}
}
