package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"asoctl/pkg/commands"
	"asoctl/pkg/logger"
)

func main() {
	// 中断信号取消context，中止在途请求或登录轮询等待
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := commands.NewRootCommand(nil)
	err := root.ExecuteContext(ctx)
	logger.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, commands.FormatError(err))
		os.Exit(1)
	}
}
