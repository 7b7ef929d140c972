// Package main provides localization for the weatherstar CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Render a retro WeatherStar 4000 style weather display.": "レトロな WeatherStar 4000 風の天気画面を描画します。",

		"Save the rendered display as a PNG file.":            "描画した画面をPNGファイルとして保存",
		"Integer upscale factor for the screenshot.":          "スクリーンショットの整数拡大率",
		"YAML file with weather data and theme overrides.":    "気象データとテーマを上書きするYAMLファイル",
		"Suppress terminal output.":                           "ターミナル出力を抑制",
		"Emit terminal output even when stdout is not a TTY.": "stdoutがTTYでなくてもターミナル出力を行う",
		"Log level (debug, info, warn, error).":               "ログレベル (debug, info, warn, error)",
		"Suppress all log output.":                            "すべてのログ出力を抑制",
	})
}
