package collectionsvc

import (
	"bytes"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintarc/v1/pkg/types"
)

// testCID 构造一个合法的 base58 编码 CIDv0
func testCID() string {
	digest := bytes.Repeat([]byte{0xab}, 32)
	return base58.Encode(append([]byte{0x12, 0x20}, digest...))
}

func TestValidateImageCID(t *testing.T) {
	t.Run("合法CIDv0", func(t *testing.T) {
		assert.NoError(t, validateImageCID(testCID()))
	})

	t.Run("空引用", func(t *testing.T) {
		assert.Error(t, validateImageCID(""))
	})

	t.Run("非base58字符", func(t *testing.T) {
		// 0、O、I、l 不在 base58btc 字符表中
		assert.Error(t, validateImageCID("0OIl0OIl0OIl"))
	})

	t.Run("长度不符", func(t *testing.T) {
		short := base58.Encode([]byte{0x12, 0x20, 0x01})
		assert.Error(t, validateImageCID(short))
	})

	t.Run("非sha256前缀", func(t *testing.T) {
		digest := bytes.Repeat([]byte{0xab}, 32)
		wrongPrefix := base58.Encode(append([]byte{0x11, 0x20}, digest...))
		assert.Error(t, validateImageCID(wrongPrefix))
	})
}

func TestBuildMetadata(t *testing.T) {
	t.Run("完整草稿", func(t *testing.T) {
		draft := &types.CollectionDraft{
			Name:        "catpictures1",
			ImageCID:    testCID(),
			Description: "猫图集合",
			Socials: types.SocialLinks{
				Website: "https://example.com",
				Twitter: "https://twitter.com/cats",
			},
		}
		metadata, err := buildMetadata(draft)
		require.NoError(t, err)

		byKey := map[string]string{}
		for _, entry := range metadata {
			byKey[entry.Key] = entry.Value
		}
		assert.Equal(t, "猫图集合", byKey[metadataKeyDescription])
		assert.Equal(t, draft.ImageCID, byKey[metadataKeyImage])
		// 社交链接序列化为 JSON 字符串
		assert.Contains(t, byKey[metadataKeySocials], `"website":"https://example.com"`)
		assert.Contains(t, byKey[metadataKeySocials], `"twitter":"https://twitter.com/cats"`)
	})

	t.Run("空字段不产生条目", func(t *testing.T) {
		draft := &types.CollectionDraft{
			Name:     "catpictures1",
			ImageCID: testCID(),
		}
		metadata, err := buildMetadata(draft)
		require.NoError(t, err)

		require.Len(t, metadata, 1)
		assert.Equal(t, metadataKeyImage, metadata[0].Key)
	})
}
