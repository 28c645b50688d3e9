package cms

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

type portableBlock struct {
	Type     string `json:"_type"`
	Children []struct {
		Type string `json:"_type"`
		Text string `json:"text"`
	} `json:"children"`
}

// flattenPortableText reduces a Sanity rich-text value to plain text. The
// value is either already a string or an array of portable-text blocks;
// block-level segments are joined with paragraph breaks. Unknown block
// types contribute nothing rather than failing the whole document.
func flattenPortableText(raw jsoniter.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var asString string
	if err := jsoniter.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var blocks []portableBlock
	if err := jsoniter.Unmarshal(raw, &blocks); err != nil {
		return ""
	}

	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.Type != "block" {
			continue
		}

		var sb strings.Builder
		for _, child := range block.Children {
			sb.WriteString(child.Text)
		}
		paragraphs = append(paragraphs, sb.String())
	}

	return strings.Join(paragraphs, "\n\n")
}

// textToBlocks wraps plain text into a minimal portable-text array so a
// locally authored body can be stored in Sanity.
func textToBlocks(text string) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"_type": "block",
			"style": "normal",
			"children": []map[string]interface{}{
				{
					"_type": "span",
					"text":  text,
					"marks": []string{},
				},
			},
			"markDefs": []string{},
		},
	}
}
