package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PackageScope/internal/config"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want config.Config
	}{
		{
			name: "引数なし",
			args: nil,
			want: config.Default(),
		},
		{
			name: "短いフラグ",
			args: []string{"-r", "src", "-o", "out.txt", "-L", "-v"},
			want: config.Config{
				Root:           "src",
				OutputPath:     "out.txt",
				TargetName:     config.TargetFileName,
				FollowSymlinks: true,
				Verbose:        true,
			},
		},
		{
			name: "長いフラグ",
			args: []string{"--root=web", "--output", "deps.txt"},
			want: config.Config{
				Root:       "web",
				OutputPath: "deps.txt",
				TargetName: config.TargetFileName,
			},
		},
		{
			name: "空の値は既定値に戻す",
			args: []string{"--root=", "--output="},
			want: config.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions("packagescope", tt.args, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptions_Errors(t *testing.T) {
	t.Run("位置引数", func(t *testing.T) {
		_, err := ParseOptions("packagescope", []string{"somewhere"}, io.Discard)
		assert.ErrorIs(t, err, ErrUnexpectedArgs)
	})

	t.Run("未知のフラグ", func(t *testing.T) {
		_, err := ParseOptions("packagescope", []string{"--depth=3"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("ヘルプ", func(t *testing.T) {
		var buf strings.Builder
		_, err := ParseOptions("packagescope", []string{"--help"}, &buf)
		assert.ErrorIs(t, err, pflag.ErrHelp)
		assert.Contains(t, buf.String(), "--follow-symlinks")
	})
}
