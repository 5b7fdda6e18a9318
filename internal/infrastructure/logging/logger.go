// Package logging はロギング機能を提供します
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ログレベル
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// LogEntry はログエントリを表す構造体です
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（INFO, WARN, ERROR等）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// JSONLogger はJSONフォーマットでログを出力するロガーです
type JSONLogger struct {
	writer   io.Writer
	minLevel string
	now      func() time.Time
}

// NewJSONLogger は新しいJSONLoggerインスタンスを作成します
func NewJSONLogger(writer io.Writer) *JSONLogger {
	if writer == nil {
		writer = os.Stderr
	}
	return &JSONLogger{writer: writer, minLevel: LevelDebug, now: time.Now}
}

// WithMinLevel は指定レベル未満のログを出力しないロガーを返します。
// 未知のレベルが指定された場合は現在のしきい値を維持します。
func (l *JSONLogger) WithMinLevel(level string) *JSONLogger {
	clone := *l
	if _, ok := levelRank[strings.ToUpper(level)]; ok {
		clone.minLevel = strings.ToUpper(level)
	}
	return &clone
}

// Enabled は指定レベルのログが出力対象かどうかを返します
func (l *JSONLogger) Enabled(level string) bool {
	rank, ok := levelRank[strings.ToUpper(level)]
	if !ok {
		// 未知のレベルは常に出力する
		return true
	}
	return rank >= levelRank[l.minLevel]
}

// Log はメッセージをJSONフォーマットでログ出力します
func (l *JSONLogger) Log(level, message string, err error) {
	if !l.Enabled(level) {
		return
	}

	entry := LogEntry{
		Timestamp: l.now().Format(time.RFC3339),
		Level:     level,
		Message:   message,
	}

	if err != nil {
		entry.Error = err.Error()
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ログのJSONエンコードに失敗: %v\n", err)
		return
	}

	fmt.Fprintln(l.writer, string(jsonData))
}

// Nop は何も出力しないロガーです
type Nop struct{}

// Log は何もしません
func (Nop) Log(string, string, error) {}
