package web

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/shouni/tattoo-stencil-kit/pkg/domain"
	"github.com/shouni/tattoo-stencil-kit/pkg/generator"
)

// result は画面に表示する生成結果です。画像とエラーのどちらか一方だけを持ちます。
type result struct {
	// ImageURL は data URI です。html/template が data: スキームを無害化しないよう template.URL にします。
	ImageURL     template.URL
	ErrorMessage string
}

func imageResult(img *domain.GeneratedImage) result {
	return result{ImageURL: template.URL(img.DataURI())}
}

func errorResult(err error) result {
	return result{ErrorMessage: generator.UserMessage(err)}
}

type pageData struct {
	Spec         domain.DesignSpecification
	Styles       []string
	Result       result
	Filename     string
	SaveFilename string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageData{Spec: domain.DefaultDesignSpecification()})
}

func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	spec := specFromForm(r.PostForm)
	data := pageData{Spec: spec}

	img, err := s.generate(r, spec)
	status := http.StatusOK
	if err != nil {
		data.Result = errorResult(err)
		status = statusForError(err)
	} else {
		data.Result = imageResult(img)
	}
	s.render(w, r, status, data)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	data.Styles = domain.TattooStyles
	data.Filename = domain.DownloadFilename
	data.SaveFilename = domain.SaveFilename

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, data); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to render page", "error", err)
	}
}

// specFromForm はフォームの値をデザイン指定に写します。欠けた項目は空文字のままです。
func specFromForm(form url.Values) domain.DesignSpecification {
	return domain.DesignSpecification{
		MainElement:        form.Get("mainElement"),
		Adjectives:         form.Get("adjectives"),
		AdditionalElements: form.Get("additionalElements"),
		Style:              form.Get("style"),
		ColorPalette:       form.Get("colorPalette"),
		LineWork:           form.Get("lineWork"),
		Format:             form.Get("format"),
		Placement:          form.Get("placement"),
		Focus:              form.Get("focus"),
		DetailLevel:        form.Get("detailLevel"),
	}
}
