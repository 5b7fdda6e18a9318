// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"PackageScope/internal/infrastructure/filesystem"
	"PackageScope/internal/infrastructure/logging"
	"PackageScope/internal/interface/cli"
	"PackageScope/internal/usecase/collect"
	"PackageScope/internal/usecase/report"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := cli.ParseOptions("packagescope", args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "エラー: %v\n", err)
		return 2
	}

	// ロガーの初期化（標準出力は完了メッセージのみに使う）
	logger := logging.NewJSONLogger(stderr).WithMinLevel(logging.LevelWarn)
	if cfg.Verbose {
		logger = logger.WithMinLevel(logging.LevelInfo)
	}

	scanner := filesystem.NewScanner(logger).
		WithTargetName(cfg.TargetName).
		WithFollowSymlinks(cfg.FollowSymlinks)
	collector := collect.NewCollector(scanner, report.NewGenerator(), logger)

	logger.Log(logging.LevelInfo, fmt.Sprintf("走査を開始します - ルート: %s, 出力先: %s", cfg.Root, cfg.OutputPath), nil)

	outputPath, err := collector.Run(ctx, cfg.Root, cfg.OutputPath)
	if err != nil {
		logger.Log(logging.LevelError, "収集に失敗しました", err)
		fmt.Fprintf(stderr, "エラー: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Extract created: %s\n", outputPath)
	return 0
}
