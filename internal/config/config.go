// Package config は実行時設定と既定値を提供します
package config

const (
	// DefaultRoot は走査を開始するディレクトリの既定値です
	DefaultRoot = "."

	// DefaultOutputFile は集約結果を書き出すファイル名の既定値です
	DefaultOutputFile = "all_package_json.txt"

	// TargetFileName は収集対象のファイル名です（大文字小文字を区別した完全一致）
	TargetFileName = "package.json"
)

// Config は収集処理に渡す設定を保持します
type Config struct {
	// Root は走査の起点ディレクトリです
	Root string
	// OutputPath は出力ファイルのパスです
	OutputPath string
	// TargetName は一致させるファイルのベース名です
	TargetName string
	// FollowSymlinks はディレクトリへのシンボリックリンクを辿るかどうかを示します
	FollowSymlinks bool
	// Verbose は INFO レベルのログを出力するかどうかを示します
	Verbose bool
}

// Default は引数なしで起動したときの設定を返します
func Default() Config {
	return Config{
		Root:       DefaultRoot,
		OutputPath: DefaultOutputFile,
		TargetName: TargetFileName,
	}
}

// WithDefaults は未設定の項目を既定値で補った設定を返します
func (c Config) WithDefaults() Config {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputFile
	}
	if c.TargetName == "" {
		c.TargetName = TargetFileName
	}
	return c
}
