package collectionsvc

import (
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/mintarc/v1/pkg/types"
)

// 元数据键名
const (
	metadataKeyDescription = "description"
	metadataKeyImage       = "img"
	metadataKeySocials     = "socials"
)

// cidV0Length base58 解码后的 CIDv0 长度（multihash 头2字节 + sha256 32字节）
const cidV0Length = 34

// validateImageCID 校验内容寻址的图片引用
//
// 接受 base58btc 编码的 CIDv0（"Qm..."）：解码后必须是
// 0x12 0x20 开头的 34 字节 multihash。图片本体存储在外部
// 内容寻址网络，这里只保证引用格式合法。
func validateImageCID(cid string) error {
	if cid == "" {
		return fmt.Errorf("image reference cannot be empty")
	}
	decoded, err := base58.Decode(cid)
	if err != nil {
		return fmt.Errorf("image reference is not valid base58: %w", err)
	}
	if len(decoded) != cidV0Length {
		return fmt.Errorf("image reference has unexpected length %d", len(decoded))
	}
	// multihash 前缀：sha2-256 (0x12)，摘要长度 32 (0x20)
	if decoded[0] != 0x12 || decoded[1] != 0x20 {
		return fmt.Errorf("image reference is not a sha256 content hash")
	}
	return nil
}

// buildMetadata 将草稿的描述性字段组装为链上元数据键值对
//
// 社交链接序列化为单个 JSON 字符串存入 "socials" 键，
// 空字段（空描述、全空社交链接）不产生条目。
func buildMetadata(draft *types.CollectionDraft) ([]types.MetadataEntry, error) {
	var metadata []types.MetadataEntry

	if draft.Description != "" {
		metadata = append(metadata, types.MetadataEntry{
			Key:   metadataKeyDescription,
			Value: draft.Description,
		})
	}

	metadata = append(metadata, types.MetadataEntry{
		Key:   metadataKeyImage,
		Value: draft.ImageCID,
	})

	if draft.Socials != (types.SocialLinks{}) {
		serialized, err := json.Marshal(draft.Socials)
		if err != nil {
			return nil, fmt.Errorf("serialize social links: %w", err)
		}
		metadata = append(metadata, types.MetadataEntry{
			Key:   metadataKeySocials,
			Value: string(serialized),
		})
	}

	return metadata, nil
}
