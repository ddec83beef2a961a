package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// 名称相关命令的标志
var nameCheckAccount string

// nameCmd 名称命令组
var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "集合名称校验与生成",
}

// nameCheckCmd 校验名称可用性
var nameCheckCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "校验集合名称是否可注册",
	Long: `校验集合名称是否可注册。

名称规则：最长12个字符，字符集为 a-z、1-5 和句点。
不足12位的名称必须等于账户名、或以 ".账户名" 结尾。
校验通过后还会查询账本确认名称未被占用。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		request := map[string]string{
			"name":    name,
			"account": nameCheckAccount,
		}

		var envelope apiEnvelope
		if err := getClient().Post(cmd.Context(), "/api/v1/names/validate", request, &envelope); err != nil {
			return renderAPIError(err)
		}

		var result struct {
			Name        string `json:"name"`
			Registrable bool   `json:"registrable"`
			Reason      string `json:"reason"`
		}
		if err := envelope.decodeData(&result); err != nil {
			return err
		}

		if result.Registrable {
			pterm.Success.Printf("名称 %s 可以注册\n", result.Name)
		} else {
			pterm.Warning.Printf("名称 %s 不可注册\n", result.Name)
			switch result.Reason {
			case "NAME_TAKEN":
				pterm.Println(pterm.Gray("原因: 名称已被占用"))
			default:
				pterm.Println(pterm.Gray("原因: 名称不符合命名规则或账户无权注册"))
			}
		}
		return nil
	},
}

// nameSuggestCmd 生成候选名称
var nameSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "生成一个未被占用的候选名称",
	Long: `生成一个12位、仅由数字字符 1-5 组成的候选名称。

服务会逐个探测账本占用情况，返回第一个未被占用的名称。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, _ := pterm.DefaultSpinner.Start("正在生成候选名称...")

		var envelope apiEnvelope
		if err := getClient().Post(cmd.Context(), "/api/v1/names/suggest", nil, &envelope); err != nil {
			spinner.Fail("名称生成失败")
			return renderAPIError(err)
		}

		var result struct {
			Name string `json:"name"`
		}
		if err := envelope.decodeData(&result); err != nil {
			spinner.Fail("名称生成失败")
			return err
		}

		spinner.Success("候选名称: " + result.Name)
		return nil
	},
}

func init() {
	nameCheckCmd.Flags().StringVar(&nameCheckAccount, "account", "", "注册账户名（12位账户名可注册任意12位名称，否则只能注册自身或其子名）")
	_ = nameCheckCmd.MarkFlagRequired("account")

	nameCmd.AddCommand(nameCheckCmd)
	nameCmd.AddCommand(nameSuggestCmd)
}
