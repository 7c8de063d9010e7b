package web

import (
	"embed"
	"html/template"
	"io"

	"tanya/tanya/services/llm"
)

//go:embed templates/index.html
var templatesFS embed.FS

type Renderer struct {
	index *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{index: tmpl}, nil
}

type indexData struct {
	History []llm.Message
}

// Index renders the chat page with the session's full transcript.
func (r *Renderer) Index(w io.Writer, history []llm.Message) error {
	return r.index.Execute(w, indexData{History: history})
}
