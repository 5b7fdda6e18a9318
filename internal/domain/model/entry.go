// package model はドメインモデルを定義します
package model

// PackageFile は走査中に見つかった対象ファイル（package.json）を表します
type PackageFile struct {
	// Path は出力のヘッダーに表示されるパス（ルートと相対パスを結合したもの）を表します
	Path string
	// Content は読み込んだファイルの内容を表します
	Content []byte
	// ReadErr はファイル読み込み時のエラーを保持します
	ReadErr error
}

// Readable はファイルの内容を出力できるかどうかを返します
func (f PackageFile) Readable() bool {
	return f.ReadErr == nil
}
