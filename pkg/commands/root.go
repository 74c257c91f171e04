package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"asoctl/pkg/api"
	"asoctl/pkg/config"
	"asoctl/pkg/logger"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Options 控制CLI装配，测试时可注入输出流和路径
type Options struct {
	Stdout         io.Writer
	Stderr         io.Writer
	ConfigPath     string
	CredentialPath string
	Origin         string
}

// CLI 持有一次命令执行所需的全部依赖。凭证不作为环境状态，
// 而是在每个handler里显式加载传递。
type CLI struct {
	cfg     *config.Config
	client  *api.Client
	creds   *config.CredentialStore
	stdout  io.Writer
	stderr  io.Writer
	now     func() time.Time
	verbose bool
	opts    Options
}

// NewRootCommand 构建完整的命令树
func NewRootCommand(opts *Options) *cobra.Command {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	c := &CLI{
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		now:    time.Now,
		opts:   *opts,
	}

	root := &cobra.Command{
		Use:           "asoctl",
		Short:         "App Store Optimization command-line client",
		Long:          "asoctl manages tracked apps, keyword metrics, chart rankings, ratings and editorial events against the ASO service.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.opts.ConfigPath, "config", opts.ConfigPath, "config file path")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCommand(c),
		newLogoutCommand(c),
		newSubscriptionCommand(c),
		newSearchAppsCommand(c),
		newListAppsCommand(c),
		newKeywordsCommand(c),
		newTrackAppCommand(c),
		newUntrackAppCommand(c),
		newPlanAppCommand(c),
		newUnplanAppCommand(c),
		newTrackedKeywordsCommand(c),
		newRelatedAppsCommand(c),
		newEventsCommand(c),
		newChartsCommand(c),
		newFeaturesCommand(c),
		newRatingsCommand(c),
		newVersionCommand(c),
	)

	return root
}

// setup 加载配置、初始化日志、装配API客户端和凭证存储
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(c.opts.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logLevel := cfg.App.LogLevel
	if c.verbose {
		logLevel = "debug"
	}
	if err := logger.InitLogger(cfg.App.LogFile, logLevel); err != nil {
		return err
	}

	origin := c.opts.Origin
	if origin == "" {
		origin = cfg.API.Origin
	}
	c.client = api.NewClient(origin)
	c.creds = config.NewCredentialStore(c.opts.CredentialPath)
	return nil
}

// token 加载本地凭证并做过期预检。未登录或已过期时直接失败，
// 不发起网络请求。
func (c *CLI) token() (string, error) {
	cred, err := c.creds.Load()
	if err != nil {
		return "", err
	}
	if cred.AccessToken == "" {
		return "", errNotLoggedIn
	}
	if cred.Expired(c.now()) {
		return "", errNotLoggedIn
	}
	return cred.AccessToken, nil
}

// defaultRegion 返回配置的默认地区
func (c *CLI) defaultRegion() string {
	if c.cfg != nil && c.cfg.App.DefaultRegion != "" {
		return c.cfg.App.DefaultRegion
	}
	return "US"
}

// defaultPlatform 返回配置的默认平台
func (c *CLI) defaultPlatform() string {
	if c.cfg != nil && c.cfg.App.DefaultPlatform != "" {
		return c.cfg.App.DefaultPlatform
	}
	return "iphone"
}

// newVersionCommand 输出构建版本
func newVersionCommand(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the asoctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(c.stdout, "asoctl", Version)
		},
	}
}
