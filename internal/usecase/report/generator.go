// Package report はレポート生成機能を提供します
package report

import (
	"fmt"
	"io"
	"os"

	"PackageScope/internal/domain/model"
)

const (
	// HeaderFormat はブロック先頭のヘッダー行の書式です
	HeaderFormat = "----- %s -----\n\n"
	// ErrorFormat は読み込みに失敗したファイルの本文の代わりに書く行の書式です
	ErrorFormat = "Error reading file: %v\n\n"
	// BlockSeparator は本文の後ろに付ける区切りです
	BlockSeparator = "\n\n"
)

// Generator はレポート生成機能を提供します
type Generator struct{}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator() *Generator {
	return &Generator{}
}

// CreateOutputFile は出力ファイルを作成します。既存のファイルは切り詰められます。
func (g *Generator) CreateOutputFile(outputPath string) (*os.File, string, error) {
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}

	return outputFile, outputPath, nil
}

// WriteEntry は1ファイル分のブロック（ヘッダー、空行、本文またはエラー行、空行）を書き込みます
func (g *Generator) WriteEntry(writer io.Writer, file model.PackageFile) error {
	if _, err := fmt.Fprintf(writer, HeaderFormat, file.Path); err != nil {
		return fmt.Errorf("ヘッダーの書き込みに失敗しました: %w", err)
	}

	if !file.Readable() {
		if _, err := fmt.Fprintf(writer, ErrorFormat, file.ReadErr); err != nil {
			return fmt.Errorf("エラー行の書き込みに失敗しました: %w", err)
		}
		return nil
	}

	if _, err := writer.Write(file.Content); err != nil {
		return fmt.Errorf("ファイル内容の書き込みに失敗しました: %w", err)
	}
	if _, err := io.WriteString(writer, BlockSeparator); err != nil {
		return fmt.Errorf("区切りの書き込みに失敗しました: %w", err)
	}

	return nil
}
