// Package cli はコマンドライン引数の解析機能を提供します
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"PackageScope/internal/config"
)

// ErrUnexpectedArgs は位置引数が指定された場合のエラーです
var ErrUnexpectedArgs = errors.New("位置引数は指定できません")

// ParseOptions はコマンドライン引数を解析して設定を返します。
// 引数なしの場合は config.Default() と同じ設定になります。
// --help が指定された場合は pflag.ErrHelp を返します。
func ParseOptions(name string, args []string, output io.Writer) (config.Config, error) {
	cfg := config.Default()

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags]\n\n", name)
		fmt.Fprintf(output, "Collects every %s under the root into one file.\n\n", config.TargetFileName)
		flags.PrintDefaults()
	}

	flags.StringVarP(&cfg.Root, "root", "r", cfg.Root, "directory to scan")
	flags.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "file to write the collected contents to")
	flags.BoolVarP(&cfg.FollowSymlinks, "follow-symlinks", "L", false, "descend into symlinked directories (cycles are skipped)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log progress to stderr")

	if err := flags.Parse(args); err != nil {
		return config.Config{}, err
	}

	if flags.NArg() > 0 {
		return config.Config{}, fmt.Errorf("%w: %v", ErrUnexpectedArgs, flags.Args())
	}

	return cfg.WithDefaults(), nil
}
