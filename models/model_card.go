package models

// Model card defaults applied to every generated card.
const (
	DefaultCardLicense = "mit"
)

// DefaultCardTags are the free-form tags attached to every generated card.
var DefaultCardTags = []string{"stable-diffusion", "comfyui"}

// CardData holds the metadata rendered into the YAML header of a model card.
type CardData struct {
	// ModelID is the repository the card describes.
	ModelID string `yaml:"-"`

	License     string   `yaml:"license,omitempty"`
	LibraryName string   `yaml:"library_name,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`

	// ImageFile is the in-repo path of the preview image, if any.
	ImageFile string `yaml:"-"`
}

// CardAsset is a file published alongside README.md, such as the preview image.
type CardAsset struct {
	PathInRepo string
	Content    []byte
}

// ModelCard is a rendered card ready to be published.
// Content is the complete README.md text including the YAML header.
type ModelCard struct {
	Data    CardData
	Content string
	Assets  []CardAsset
}
