package collect

import (
	"os"
	"testing"
)

// chdirForTest は Go 1.24 の t.Chdir 相当の処理です（テスト終了時に元のディレクトリへ戻します）
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
