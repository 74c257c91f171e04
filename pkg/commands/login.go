package commands

import (
	"fmt"

	"asoctl/pkg/auth"
	"asoctl/pkg/browserutil"

	"github.com/spf13/cobra"
)

// newLoginCommand 设备授权登录：展示用户码，打开浏览器，轮询审批结果
func newLoginCommand(c *CLI) *cobra.Command {
	var noOpen bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in via the device authorization flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := auth.NewFlow(c.client, c.creds)
			flow.OnSession = func(s *auth.Session) {
				fmt.Fprintf(c.stdout, "Your confirmation code: %s\n", s.UserCode)
				if s.VerificationURL == "" {
					return
				}
				opened := false
				if !noOpen {
					opened = browserutil.Open(s.VerificationURL)
				}
				if opened {
					fmt.Fprintf(c.stdout, "Opened %s in your browser. Approve the code to finish signing in.\n", s.VerificationURL)
				} else {
					fmt.Fprintf(c.stdout, "Open %s and approve the code to finish signing in.\n", s.VerificationURL)
				}
				fmt.Fprintln(c.stdout, "Waiting for approval...")
			}

			if _, err := flow.Run(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(c.stdout, "Signed in. Credentials saved to", c.creds.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open the verification URL in a browser")
	return cmd
}

// newLogoutCommand 登出：将凭证文件覆盖为空对象
func newLogoutCommand(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.creds.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, "Signed out.")
			return nil
		},
	}
}
