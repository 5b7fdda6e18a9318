// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"PackageScope/internal/config"
	"PackageScope/internal/domain/model"
	"PackageScope/internal/infrastructure/logging"
)

// ErrNotDirectory はルートがディレクトリではない場合のエラーです
var ErrNotDirectory = errors.New("指定されたパスはディレクトリではありません")

// VisitFunc は一致したファイルごとに呼び出されます。
// エラーを返すと走査は中断され、そのエラーが Walk から返されます。
type VisitFunc func(file model.PackageFile) error

// PackageFinder は対象ファイルの探索と読み込み機能を提供するインターフェースです
type PackageFinder interface {
	Walk(ctx context.Context, rootDir string, fn VisitFunc) error
	ReadContent(path string) ([]byte, error)
}

var _ PackageFinder = (*Scanner)(nil)

// Scanner はファイルシステムを走査して対象ファイルを探すための構造体です
type Scanner struct {
	logger         logging.Logger
	targetName     string
	followSymlinks bool
}

// NewScanner は新しい Scanner インスタンスを作成します
func NewScanner(logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Scanner{
		logger:     logger,
		targetName: config.TargetFileName,
	}
}

// WithTargetName は一致させるベース名を変更します
func (s *Scanner) WithTargetName(name string) *Scanner {
	if name != "" {
		s.targetName = name
	}
	return s
}

// WithFollowSymlinks はディレクトリへのシンボリックリンクを辿るかどうかを設定します
func (s *Scanner) WithFollowSymlinks(follow bool) *Scanner {
	s.followSymlinks = follow
	return s
}

// ValidateDirectoryPath はパスが読み込み可能なディレクトリであることを確認します
func (s *Scanner) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	return nil
}

// Walk は rootDir 以下を再帰的に走査し、ベース名が対象名と完全一致する
// ファイルごとに fn を呼び出します。
// 各ディレクトリではファイルを先に、サブディレクトリを後に訪問します。
// 読み込めないディレクトリは警告ログを出して読み飛ばします。
// シンボリックリンクを辿る場合、実体が同じディレクトリは一度しか走査しません。
func (s *Scanner) Walk(ctx context.Context, rootDir string, fn VisitFunc) error {
	if err := s.ValidateDirectoryPath(rootDir); err != nil {
		s.logger.Log(logging.LevelWarn, fmt.Sprintf("ルート '%s' を走査できません", rootDir), err)
		return nil
	}

	w := &walker{scanner: s, fn: fn}
	if s.followSymlinks {
		w.visited = make(map[string]struct{})
		if !w.markVisited(rootDir) {
			return nil
		}
	}

	return w.walkDir(ctx, rootDir)
}

// walker は1回の走査の状態を保持します
type walker struct {
	scanner *Scanner
	fn      VisitFunc
	// visited は走査済みディレクトリの実体パスです（リンクを辿る場合のみ）
	visited map[string]struct{}
}

// markVisited は dir の実体パスを記録し、初めての訪問なら true を返します
func (w *walker) markVisited(dir string) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		w.scanner.logger.Log(logging.LevelWarn, fmt.Sprintf("ディレクトリ '%s' の実体を解決できません", dir), err)
		return false
	}
	if _, ok := w.visited[resolved]; ok {
		w.scanner.logger.Log(logging.LevelWarn, fmt.Sprintf("訪問済みのディレクトリのためスキップ: %s", dir), nil)
		return false
	}
	w.visited[resolved] = struct{}{}
	return true
}

func (w *walker) walkDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := w.scanner

	// ReadDir はエラー時も読み込めた分のエントリを返す
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Log(logging.LevelWarn, fmt.Sprintf("パス '%s' の走査中にエラー発生", dir), err)
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			// リンク先がディレクトリならディレクトリとして扱う（辿るかは設定次第）
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				isDir = true
				if !s.followSymlinks {
					s.logger.Log(logging.LevelDebug, fmt.Sprintf("シンボリックリンクのため辿りません: %s", path), nil)
					continue
				}
			}
		}

		if isDir {
			subdirs = append(subdirs, path)
			continue
		}

		if name != s.targetName {
			continue
		}

		if err := w.fn(model.PackageFile{Path: path}); err != nil {
			return err
		}
	}

	for _, path := range subdirs {
		if w.visited != nil && !w.markVisited(path) {
			continue
		}
		if err := w.walkDir(ctx, path); err != nil {
			return err
		}
	}

	return nil
}

// ReadContent はファイル全体を読み込みます。
// 内容が UTF-8 として不正な場合はエラーを返します。
func (s *Scanner) ReadContent(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}

	return content, nil
}
