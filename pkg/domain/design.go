package domain

// DesignSpecification はタトゥーデザインの要望を表す 10 個の自由記述フィールドです。
// 空文字は「未指定」として扱われ、プロンプト生成時に既定の文言で補われます。
type DesignSpecification struct {
	MainElement        string `json:"mainElement"`
	Adjectives         string `json:"adjectives"`
	AdditionalElements string `json:"additionalElements"`
	Style              string `json:"style"`
	ColorPalette       string `json:"colorPalette"`
	LineWork           string `json:"lineWork"`
	Format             string `json:"format"`
	Placement          string `json:"placement"`
	Focus              string `json:"focus"`
	DetailLevel        string `json:"detailLevel"`
}

// TattooStyles はフォームで選択肢として提示するスタイルの一覧です。
var TattooStyles = []string{
	"Blackwork",
	"Fine Line",
	"Watercolor",
	"Realism",
	"Old School",
	"Neo Traditional",
	"Geometric",
	"Dotwork",
}

// DefaultDesignSpecification はフォーム初期表示用のサンプル値を返します。
func DefaultDesignSpecification() DesignSpecification {
	return DesignSpecification{
		MainElement:        "Phoenix",
		Adjectives:         "Majestic and aggressive",
		AdditionalElements: "Wrapped in blue flames, with a rising sun in the background",
		Style:              "Realism",
		ColorPalette:       "Black and grey with white highlights",
		LineWork:           "Soft, hyper-detailed shading",
		Format:             "Vertical, elongated",
		Placement:          "Outer forearm",
		Focus:              "Full view of the tattoo on a pure white background",
		DetailLevel:        "Hyper-detailed",
	}
}
