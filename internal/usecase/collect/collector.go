// Package collect は package.json を収集して1つのファイルにまとめる処理を提供します
package collect

import (
	"bufio"
	"context"
	"fmt"

	"PackageScope/internal/domain/model"
	"PackageScope/internal/infrastructure/filesystem"
	"PackageScope/internal/infrastructure/logging"
	"PackageScope/internal/usecase/report"
)

// Collector は走査・照合・読み込み・書き込みを一度の走査で行います
type Collector struct {
	finder    filesystem.PackageFinder
	generator *report.Generator
	logger    logging.Logger
}

// NewCollector は新しい Collector インスタンスを作成します
func NewCollector(finder filesystem.PackageFinder, generator *report.Generator, logger logging.Logger) *Collector {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Collector{
		finder:    finder,
		generator: generator,
		logger:    logger,
	}
}

// Run は root 以下の対象ファイルを outputPath に書き出し、出力先のパスを返します。
// 個々のファイルの読み込み失敗は出力内にエラー行として記録され、処理は継続します。
// 出力ファイルの作成・書き込みに失敗した場合はエラーを返します。
func (c *Collector) Run(ctx context.Context, root, outputPath string) (path string, err error) {
	outputFile, path, err := c.generator.CreateOutputFile(outputPath)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := outputFile.Close(); cerr != nil && err == nil {
			path, err = "", fmt.Errorf("出力ファイルのクローズに失敗しました: %w", cerr)
		}
	}()
	c.logger.Log(logging.LevelInfo, fmt.Sprintf("出力ファイルを作成しました: %s", path), nil)

	writer := bufio.NewWriter(outputFile)

	var found, failed int
	walkErr := c.finder.Walk(ctx, root, func(file model.PackageFile) error {
		found++
		file.Content, file.ReadErr = c.finder.ReadContent(file.Path)
		if file.ReadErr != nil {
			failed++
			c.logger.Log(logging.LevelWarn, fmt.Sprintf("ファイル '%s' の読み込みに失敗", file.Path), file.ReadErr)
		}
		return c.generator.WriteEntry(writer, file)
	})

	// 途中で失敗しても書き込めた分は残す
	flushErr := writer.Flush()

	if walkErr != nil {
		return "", fmt.Errorf("package.json の収集に失敗しました: %w", walkErr)
	}
	if flushErr != nil {
		return "", fmt.Errorf("出力ファイルの書き込みに失敗しました: %w", flushErr)
	}

	c.logger.Log(logging.LevelInfo, fmt.Sprintf("収集が完了しました: %d 件（読み込み失敗 %d 件）", found, failed), nil)
	return path, nil
}
