package prompt

// Language はプロンプトの文言セットを選択する識別子です。
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguagePortuguese Language = "pt-BR"
)

// field は 1 行分のラベルと未指定時の既定文言です。
type field struct {
	label    string
	fallback string
}

type section struct {
	title  string
	fields []field
}

// catalog はテンプレートの固定文言です。セクションの順序は概念、スタイル、構図の順で固定です。
type catalog struct {
	opening     string
	critical    string
	concept     section
	style       section
	composition section
	detailNote  string
}

var catalogs = map[Language]catalog{
	LanguageEnglish: {
		opening: "Generate a highly detailed, tattoo-artist-ready tattoo design image that follows ALL of the specifications below. The result is for a professional tattoo stencil.",
		critical: "**Critical Instruction:** The image background MUST BE pure white (#FFFFFF), with no shadows or gradients. " +
			"The image must be a clean, clear line drawing, ideal for a tattoo artist to use as a stencil.",
		concept: section{
			title: "Main Concept",
			fields: []field{
				{label: "Theme/Main Element", fallback: "not specified"},
				{label: "Adjectives/Feeling", fallback: "not specified"},
				{label: "Additional Elements/Context", fallback: "none"},
			},
		},
		style: section{
			title: "Tattoo Style",
			fields: []field{
				{label: "Main Style", fallback: "not specified"},
				{label: "Color Palette", fallback: "not specified"},
				{label: "Line Work", fallback: "not specified"},
			},
		},
		composition: section{
			title: "Composition and Placement",
			fields: []field{
				{label: "Overall Format", fallback: "not specified"},
				{label: "Suggested Placement", fallback: "not specified"},
				{label: "Focus/Angle", fallback: "complete view of the piece"},
				{label: "Level of Detail", fallback: "detailed"},
			},
		},
		detailNote: "**This is a crucial specification; the level of detail must match this description exactly.**",
	},
	LanguagePortuguese: {
		opening: "Gere uma imagem de desenho de tatuagem altamente detalhada e pronta para o tatuador, seguindo TODAS as especificações abaixo. O resultado é para um estêncil de tatuagem profissional.",
		critical: "**Instrução Crítica:** O fundo da imagem DEVE SER branco puro (#FFFFFF), sem sombras ou gradientes. " +
			"A imagem deve ser um desenho de linha limpo e claro, ideal para um tatuador usar como estêncil.",
		concept: section{
			title: "Conceito Principal",
			fields: []field{
				{label: "Tema/Elemento Principal", fallback: "não especificado"},
				{label: "Adjetivos/Sensação", fallback: "não especificado"},
				{label: "Elementos Adicionais/Contexto", fallback: "nenhum"},
			},
		},
		style: section{
			title: "Estilo de Tatuagem",
			fields: []field{
				{label: "Estilo Principal", fallback: "não especificado"},
				{label: "Paleta de Cores", fallback: "não especificado"},
				{label: "Traço/Linhas", fallback: "não especificado"},
			},
		},
		composition: section{
			title: "Composição e Colocação",
			fields: []field{
				{label: "Formato Geral", fallback: "não especificado"},
				{label: "Colocação Sugerida", fallback: "não especificado"},
				{label: "Foco/Ângulo", fallback: "vista completa da peça"},
				{label: "Nível de Detalhe", fallback: "detalhado"},
			},
		},
		detailNote: "**Esta é uma especificação crucial, o nível de detalhe deve corresponder exatamente a esta descrição.**",
	},
}

// ParseLanguage は設定値を Language に変換します。未知の値は英語になります。
func ParseLanguage(s string) Language {
	if _, ok := catalogs[Language(s)]; ok {
		return Language(s)
	}
	return LanguageEnglish
}
