// collectiond 集合服务守护进程
//
// 对外提供集合名称校验、候选名称生成和集合创建的 HTTP API，
// 自身不落任何状态，所有事实以账本节点为准。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mintarc/v1/internal/app"
	"github.com/mintarc/v1/internal/app/version"
)

func main() {
	// 添加 panic recovery，确保任何 panic 都能被捕获
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n❌ [PANIC] 程序发生严重错误: %v\n", r)
			fmt.Fprintf(os.Stderr, "请检查配置和依赖是否正确\n")
			os.Exit(1)
		}
	}()

	var (
		configPath  string // 配置文件路径
		disableAPI  bool   // 禁用HTTP API（仅用于调试装配）
		showHelp    bool   // 显示帮助
		showVersion bool   // 显示版本
	)

	flag.StringVar(&configPath, "config", "", "配置文件路径（默认: configs/config.json）")
	flag.BoolVar(&disableAPI, "no-api", false, "禁用HTTP API模块")
	flag.BoolVar(&showHelp, "help", false, "显示帮助信息")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.Parse()

	// 显示版本
	if showVersion {
		fmt.Println(version.GetFullVersion())
		return
	}

	// 显示帮助
	if showHelp {
		showHelpInfo()
		return
	}

	fmt.Println("🚀 collectiond 启动中...")

	// 组装启动选项
	options := []app.Option{}
	if configPath != "" {
		options = append(options, app.WithConfigFile(configPath))
	}
	if disableAPI {
		options = append(options, app.WithoutAPI())
	} else {
		options = append(options, app.WithAPI())
	}

	// 启动应用
	application, err := app.Start(options...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 启动失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ collectiond 启动完成")

	// 阻塞等待退出信号
	application.Wait()
}

// showHelpInfo 显示帮助信息
func showHelpInfo() {
	fmt.Println(`collectiond - 集合服务守护进程

用法:
  collectiond [选项]

选项:
  --config <path>   配置文件路径（默认: configs/config.json，
                    也可通过环境变量 MINTARC_CONFIG_PATH 指定）
  --no-api          禁用HTTP API模块
  --version         显示版本信息
  --help            显示帮助信息

示例:
  collectiond                          # 使用默认配置启动
  collectiond --config ./config.json   # 使用指定配置启动`)
}
