package main

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mintarc/v1/client/core/wallet"
	"github.com/mintarc/v1/pkg/types"
)

// resolveActor 解析创建者账户，--actor 优先于环境变量
func resolveActor() string {
	if createActor != "" {
		return createActor
	}
	return os.Getenv("MINTARC_ACTOR")
}

// 集合创建命令的标志
var (
	createActor       string
	createName        string
	createDisplayName string
	createImageCID    string
	createMarketFee   float64
	createDescription string
	createWebsite     string
	createTwitter     string
	createTelegram    string
	createDiscord     string
	createMedium      string
	createGithub      string
)

// collectionCmd 集合命令组
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "集合创建与查询",
}

// collectionCreateCmd 提交集合创建请求
var collectionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建一个新集合",
	Long: `提交集合创建请求。

服务会依次完成名称规则校验、账本占用确认、元数据组装，
最后把完整的集合记录交给签名服务上链。
任何一步失败都会返回一份面向用户的失败说明。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 账户可来自 --actor 或环境变量 MINTARC_ACTOR
		session := wallet.NewStaticSession(resolveActor())
		if !session.Connected() {
			pterm.Error.Println("请先连接钱包（通过 --actor 或环境变量 MINTARC_ACTOR 指定账户）")
			return errors.New("wallet not connected")
		}

		draft := types.CollectionDraft{
			Name:        createName,
			DisplayName: createDisplayName,
			ImageCID:    createImageCID,
			MarketFee:   createMarketFee,
			Description: createDescription,
			Socials: types.SocialLinks{
				Website:  createWebsite,
				Twitter:  createTwitter,
				Telegram: createTelegram,
				Discord:  createDiscord,
				Medium:   createMedium,
				Github:   createGithub,
			},
		}

		request := map[string]interface{}{
			"actor": session.Account(),
			"draft": draft,
		}

		spinner, _ := pterm.DefaultSpinner.Start("正在提交集合创建请求...")

		var envelope apiEnvelope
		if err := getClient().Post(cmd.Context(), "/api/v1/collections", request, &envelope); err != nil {
			spinner.Fail("集合创建失败")
			return renderAPIError(err)
		}

		var receipt types.CreateReceipt
		if err := envelope.decodeData(&receipt); err != nil {
			spinner.Fail("集合创建失败")
			return err
		}

		spinner.Success("集合创建成功")
		pterm.DefaultBox.WithTitle("创建回执").WithTitleTopCenter().Println(
			"集合名称: " + receipt.Name + "\n" +
				"交易哈希: " + receipt.TxHash + "\n" +
				"确认时间: " + receipt.Timestamp.Format("2006-01-02 15:04:05"),
		)
		return nil
	},
}

// collectionShowCmd 查询集合占用状态
var collectionShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "查询集合是否存在",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		var envelope apiEnvelope
		if err := getClient().Get(cmd.Context(), "/api/v1/collections/"+name, nil, &envelope); err != nil {
			// 未注册名称返回 404，对查询方是正常结果
			if isCollectionMissing(err) {
				pterm.Info.Printf("集合 %s 不存在\n", name)
				return nil
			}
			return renderAPIError(err)
		}

		var result struct {
			Name   string `json:"name"`
			Exists bool   `json:"exists"`
		}
		if err := envelope.decodeData(&result); err != nil {
			return err
		}

		pterm.Info.Printf("集合 %s 已存在\n", result.Name)
		return nil
	},
}

func init() {
	flags := collectionCreateCmd.Flags()
	flags.StringVar(&createActor, "actor", "", "创建者账户名")
	flags.StringVar(&createName, "name", "", "集合名称（链上标识符）")
	flags.StringVar(&createDisplayName, "display-name", "", "展示名称")
	flags.StringVar(&createImageCID, "image", "", "封面图 CID（base58 编码的 CIDv0）")
	flags.Float64Var(&createMarketFee, "fee", 0, "二级市场手续费率，范围 [0, 0.15]")
	flags.StringVar(&createDescription, "description", "", "集合描述")
	flags.StringVar(&createWebsite, "website", "", "官网链接")
	flags.StringVar(&createTwitter, "twitter", "", "Twitter 链接")
	flags.StringVar(&createTelegram, "telegram", "", "Telegram 链接")
	flags.StringVar(&createDiscord, "discord", "", "Discord 链接")
	flags.StringVar(&createMedium, "medium", "", "Medium 链接")
	flags.StringVar(&createGithub, "github", "", "Github 链接")

	_ = collectionCreateCmd.MarkFlagRequired("name")
	_ = collectionCreateCmd.MarkFlagRequired("display-name")
	_ = collectionCreateCmd.MarkFlagRequired("image")

	collectionCmd.AddCommand(collectionCreateCmd)
	collectionCmd.AddCommand(collectionShowCmd)
}
