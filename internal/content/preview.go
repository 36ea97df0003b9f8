package content

import (
	"strings"

	"github.com/hyperifyio/gopromo/internal/docwriter"
)

// field pairs a human-readable label with its group key. Order here fixes the
// order of both the markdown preview and the exported document.
type field struct {
	label string
	key   string
}

var (
	multiFields = []field{
		{"Promotion Title", KeyPromotionTitle},
		{"Promotion Description", KeyPromotionDescription},
		{"Info Banner (Live tab)", KeyInfoBannerLive},
		{"Info Banner (Completed tab)", KeyInfoBannerCompleted},
		{"Info Pop-up", KeyInfoPopupTerms},
	}
	taskFields = []field{
		{"Task Title", KeyTaskTitle},
		{"Task Description", KeyTaskDescription},
		{"Task Info Message", KeyTaskInfoMessage},
		{"Warning Message", KeyWarningMessage},
		{"Action Button (pre opt-in)", KeyActionButtonPre},
		{"Action Button (post opt-in)", KeyActionButtonPost},
	}
	rewardFields = []field{
		{"Prize Content", KeyPrizeContent},
		{"Reward Credited Content", KeyRewardCreditedContent},
	}
)

// Preview renders all sections as one markdown document under fixed headings
// in fixed order.
func Preview(s Sections) string {
	var b strings.Builder
	writeGroup := func(title string, values map[string]string, fields []field) {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
		for _, f := range fields {
			b.WriteString("## ")
			b.WriteString(f.label)
			b.WriteString("\n\n")
			b.WriteString(values[f.key])
			b.WriteString("\n\n")
		}
	}
	writeGroup("Multi Content", s.Multi, multiFields)
	writeGroup("Task Content", s.Task, taskFields)
	writeGroup("Reward Content", s.Reward, rewardFields)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Blocks flattens the sections into the ordered heading/paragraph sequence
// the document renderer consumes: group title at level 1, field label at
// level 2, one body paragraph per field.
func Blocks(s Sections) []docwriter.Block {
	var blocks []docwriter.Block
	appendGroup := func(title string, values map[string]string, fields []field) {
		blocks = append(blocks, docwriter.Block{Level: 1, Text: title})
		for _, f := range fields {
			blocks = append(blocks, docwriter.Block{Level: 2, Text: f.label})
			blocks = append(blocks, docwriter.Block{Text: values[f.key]})
		}
	}
	appendGroup("Multi Content", s.Multi, multiFields)
	appendGroup("Task Content", s.Task, taskFields)
	appendGroup("Reward Content", s.Reward, rewardFields)
	return blocks
}
