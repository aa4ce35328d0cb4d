// Package modelcard renders README.md model cards for uploaded models.
//
// A card is YAML front matter (license, library_name, tags) followed by a
// markdown body rendered from an embedded template. When a preview image is
// supplied its bytes are read into the card as an asset, so the image file
// can be removed as soon as the card has been built.
package modelcard

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/MKhiriev/comfy-hf-uploader/models"
	"gopkg.in/yaml.v3"
)

// PreviewPath is the in-repo path of the preview image.
const PreviewPath = "preview.png"

//go:embed templates/modelcard.md
var templates embed.FS

// Builder renders model cards from the embedded template.
type Builder struct {
	tmpl *template.Template
}

// NewBuilder parses the embedded card template.
func NewBuilder() (*Builder, error) {
	tmpl, err := template.New("modelcard.md").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templates, "templates/modelcard.md")
	if err != nil {
		return nil, fmt.Errorf("parse model card template: %w", err)
	}
	return &Builder{tmpl: tmpl}, nil
}

type templateData struct {
	models.CardData
	FrontMatter string
}

// Build renders a card for data. When imagePath is non-empty the file is
// read into a [PreviewPath] asset and referenced from the card body; the
// file itself is not touched afterwards.
func (b *Builder) Build(data models.CardData, imagePath string) (models.ModelCard, error) {
	var assets []models.CardAsset
	if imagePath != "" {
		content, err := os.ReadFile(imagePath)
		if err != nil {
			return models.ModelCard{}, fmt.Errorf("read preview image: %w", err)
		}
		assets = append(assets, models.CardAsset{PathInRepo: PreviewPath, Content: content})
		data.ImageFile = PreviewPath
	}

	frontMatter, err := renderFrontMatter(data)
	if err != nil {
		return models.ModelCard{}, err
	}

	var buf bytes.Buffer
	if err = b.tmpl.Execute(&buf, templateData{CardData: data, FrontMatter: frontMatter}); err != nil {
		return models.ModelCard{}, fmt.Errorf("render model card: %w", err)
	}

	return models.ModelCard{Data: data, Content: buf.String(), Assets: assets}, nil
}

func renderFrontMatter(data models.CardData) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("encode card metadata: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode card metadata: %w", err)
	}

	out := buf.String()
	if strings.TrimSpace(out) == "{}" {
		return "", nil
	}
	return out, nil
}
