// Package prompt はデザイン指定から画像生成用のプロンプト文字列を組み立てます。
package prompt

import (
	"strings"

	"github.com/samber/lo"

	"github.com/shouni/tattoo-stencil-kit/pkg/domain"
)

// BuildPrompt は英語テンプレートでプロンプトを生成します。
func BuildPrompt(spec domain.DesignSpecification) string {
	return BuildPromptIn(LanguageEnglish, spec)
}

// BuildPromptIn は指定言語のテンプレートでプロンプトを生成します。
// 副作用を持たず、同じ入力には常に同じ文字列を返します。空のフィールドは省略せず既定文言で埋めます。
func BuildPromptIn(lang Language, spec domain.DesignSpecification) string {
	c, ok := catalogs[lang]
	if !ok {
		c = catalogs[LanguageEnglish]
	}

	var b strings.Builder
	b.WriteString(c.opening)
	b.WriteString("\n\n")
	b.WriteString(c.critical)
	b.WriteString("\n\n")

	writeSection(&b, c.concept, spec.MainElement, spec.Adjectives, spec.AdditionalElements)
	b.WriteString("\n\n")
	writeSection(&b, c.style, spec.Style, spec.ColorPalette, spec.LineWork)
	b.WriteString("\n\n")
	writeSection(&b, c.composition, spec.Format, spec.Placement, spec.Focus, spec.DetailLevel)

	// 詳細度の行にだけ強調文を付ける
	b.WriteString(". ")
	b.WriteString(c.detailNote)
	return b.String()
}

// writeSection は末尾に改行を付けないため、最後の値の直後に続けて書き足せます。
func writeSection(b *strings.Builder, s section, values ...string) {
	b.WriteString("**")
	b.WriteString(s.title)
	b.WriteString(":**")
	for i, f := range s.fields {
		b.WriteString("\n- ")
		b.WriteString(f.label)
		b.WriteString(": ")
		b.WriteString(valueOr(values[i], f.fallback))
	}
}

// valueOr は空白のみの値も未指定とみなします。値そのものは加工せずに返します。
func valueOr(v, fallback string) string {
	return lo.Ternary(strings.TrimSpace(v) == "", fallback, v)
}
