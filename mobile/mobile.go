//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前先把配置复制到本目录：
//
//	mkdir -p mobile/data && cp data/escalator.yaml mobile/data/
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.escalator -o build/android/escalator.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Escalator.xcframework -v ./mobile
package mobile

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/escalator/pkg/app"
	"github.com/gonewx/escalator/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Seed:    time.Now().UnixNano(),
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
