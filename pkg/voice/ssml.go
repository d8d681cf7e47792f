package voice

import (
	"fmt"
	"strings"
)

// VoicePlaceholder SSML 模板中音色名称的占位符
const VoicePlaceholder = "{voice_name}"

// FormatVoicePlaceholder 将 SSML 中的 {voice_name} 替换为音色名称，substituted 表示是否发生了替换
//
// 规则：`{{` 和 `}}` 转义为字面量的花括号，出现其它占位符或者未配对的花括号时返回错误
func FormatVoicePlaceholder(ssml string, voiceName string) (content string, substituted bool, err error) {
	var sb strings.Builder
	sb.Grow(len(ssml))

	for i := 0; i < len(ssml); i++ {
		switch ssml[i] {
		case '{':
			if i+1 < len(ssml) && ssml[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexByte(ssml[i+1:], '}')
			if end < 0 {
				return "", false, fmt.Errorf("ssml template: single '{' encountered at offset %d", i)
			}

			field := ssml[i+1 : i+1+end]
			if "{"+field+"}" != VoicePlaceholder {
				return "", false, fmt.Errorf("ssml template: unknown placeholder {%s}", field)
			}

			sb.WriteString(voiceName)
			substituted = true
			i += end + 1
		case '}':
			if i+1 < len(ssml) && ssml[i+1] == '}' {
				sb.WriteByte('}')
				i++
				continue
			}

			return "", false, fmt.Errorf("ssml template: single '}' encountered at offset %d", i)
		default:
			sb.WriteByte(ssml[i])
		}
	}

	return sb.String(), substituted, nil
}
