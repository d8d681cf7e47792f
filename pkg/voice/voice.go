package voice

import (
	"sort"

	"github.com/fvbommel/sortorder"
)

// sortInfos 按音色名称自然排序，例如 Wavenet-2 排在 Wavenet-10 之前
func sortInfos(infos []Info) []Info {
	sort.SliceStable(infos, func(i, j int) bool {
		return sortorder.NaturalLess(infos[i].Name, infos[j].Name)
	})

	return infos
}
