package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mintarc/v1/client/core/transport"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	Endpoint string // 集合服务地址
	Timeout  int    // 请求超时（秒）
	Verbose  bool   // 详细模式
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "mintarc",
	Short: "Mintarc 集合服务命令行客户端",
	Long: `Mintarc CLI - 集合服务的薄客户端

提供集合创建流程的完整命令行交互能力:
- 校验集合名称是否可注册
- 生成一个未被占用的候选名称
- 提交集合创建请求
- 查询集合占用状态

所有命令都通过集合服务的 HTTP API 完成，本地不落任何状态。`,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVar(&globalFlags.Endpoint, "endpoint", "http://127.0.0.1:8640", "集合服务地址")
	rootCmd.PersistentFlags().IntVar(&globalFlags.Timeout, "timeout", 30, "请求超时（秒）")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "详细输出")

	// 添加子命令
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(collectionCmd)
}

// getClient 获取传输客户端
func getClient() *transport.RESTClient {
	return transport.NewRESTClient(globalFlags.Endpoint, time.Duration(globalFlags.Timeout)*time.Second)
}

// apiError 服务端标准错误结构
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// apiEnvelope 服务端标准响应格式
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   *apiError       `json:"error,omitempty"`
}

// decodeData 将响应数据解析到目标结构
func (e *apiEnvelope) decodeData(target interface{}) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("响应中没有数据")
	}
	return json.Unmarshal(e.Data, target)
}

// isCollectionMissing 判断错误是否为"集合不存在"的 404 响应
//
// 占用查询对未注册名称返回 404，对薄客户端来说这是一次
// 成功的查询而不是失败。
func isCollectionMissing(err error) bool {
	var httpErr *transport.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusNotFound {
		return false
	}
	var envelope apiEnvelope
	if json.Unmarshal(httpErr.Body, &envelope) != nil || envelope.Error == nil {
		return false
	}
	return envelope.Error.Code == "COLLECTION_NOT_FOUND"
}

// renderAPIError 将服务端错误以友好方式展示
//
// 非 2xx 响应体仍然是标准响应格式，尽量解析出其中的
// message/details；解析失败则原样展示。
func renderAPIError(err error) error {
	var httpErr *transport.HTTPError
	if errors.As(err, &httpErr) {
		var envelope apiEnvelope
		if jsonErr := json.Unmarshal(httpErr.Body, &envelope); jsonErr == nil && envelope.Error != nil {
			pterm.Error.Println(envelope.Error.Message)
			if envelope.Error.Details != "" && globalFlags.Verbose {
				pterm.Println(pterm.Gray("详情: " + envelope.Error.Details))
			}
			return fmt.Errorf("%s", envelope.Error.Code)
		}
	}
	pterm.Error.Printf("请求失败: %v\n", err)
	return err
}
