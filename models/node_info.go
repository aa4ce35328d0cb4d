package models

// NodeInput describes one input socket or widget of a graph node.
type NodeInput struct {
	Type      string   `json:"type"`
	Default   any      `json:"default,omitempty"`
	Options   []string `json:"options,omitempty"`
	Multiline bool     `json:"multiline,omitempty"`
}

// NodeInputs splits node inputs into required and optional groups.
// Order is the order in which the host renders them.
type NodeInputs struct {
	Required []NamedNodeInput `json:"required"`
	Optional []NamedNodeInput `json:"optional,omitempty"`
}

// NamedNodeInput binds a [NodeInput] to its parameter name.
type NamedNodeInput struct {
	Name string `json:"name"`
	NodeInput
}

// NodeInfo is the descriptor the host graph uses to register the node.
type NodeInfo struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	Category    string     `json:"category"`
	Function    string     `json:"function"`
	OutputNode  bool       `json:"output_node"`
	ReturnTypes []string   `json:"return_types"`
	Inputs      NodeInputs `json:"input"`
}
