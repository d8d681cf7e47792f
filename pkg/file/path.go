package file

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultOutputDir 未指定输出文件时，音频文件的存放目录
const DefaultOutputDir = "data/audios"

var modelNameReplacer = strings.NewReplacer("/", "-", `\`, "-")

// SanitizeModelName 将模型名称中的路径分隔符逐个替换为 `-`，保证其只占用一级文件名
func SanitizeModelName(model string) string {
	return modelNameReplacer.Replace(model)
}

// ResolveOutputPath 确定输出文件路径
//
// explicit 不为空时原样返回，否则生成 data/audios/<输入文件名>_<模型名称>.mp3
func ResolveOutputPath(input string, model string, explicit string) string {
	if explicit != "" {
		return explicit
	}

	return filepath.Join(DefaultOutputDir, fmt.Sprintf("%s_%s.mp3", stem(input), SanitizeModelName(model)))
}

// stem 返回去掉最后一个扩展名的文件名，以 `.` 开头或结尾的文件名视为没有扩展名
func stem(path string) string {
	name := filepath.Base(path)
	if i := strings.LastIndex(name, "."); i > 0 && i < len(name)-1 {
		return name[:i]
	}

	return name
}
