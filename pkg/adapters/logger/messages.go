package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Render cycle (info)
		"Composing display for %s": "%s の画面を合成中",
		"Screenshot saved to %s":   "スクリーンショットを %s に保存しました",

		// Config
		"Loading weather data from %s": "気象データを %s から読み込み中",
		"Using built-in demo data":     "内蔵デモデータを使用します",

		// Exporters
		"Emitting terminal output (%d lines)": "ターミナル出力を送信中 (%d 行)",
		"Terminal output skipped (not a TTY)": "ターミナル出力をスキップしました (TTYではありません)",
		"Encoding PNG %dx%d (scale %d)":       "PNG %dx%d をエンコード中 (拡大率 %d)",

		// Warnings
		"Terminal write failed: %s": "ターミナルへの書き込みに失敗しました: %s",

		// Errors
		"Failed to load config: %s":     "設定の読み込みに失敗しました: %s",
		"Failed to save screenshot: %s": "スクリーンショットの保存に失敗しました: %s",
	})
}
