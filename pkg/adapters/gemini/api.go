package gemini

// Wire types for the generateContent REST endpoint. Only the fields the
// gateway reads or writes are modelled.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	Tools            []tool           `json:"tools,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type tool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	FinishReason      string             `json:"finishReason,omitempty"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web *webChunk `json:"web,omitempty"`
}

type webChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// wineSchema constrains the model output to a WineAnalysis.
func wineSchema() *schema {
	str := func(desc string) *schema { return &schema{Type: "STRING", Description: desc} }
	integer := &schema{Type: "INTEGER"}
	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"name":     str(""),
			"winery":   str(""),
			"varietal": str(""),
			"region":   str(""),
			"vintage":  str(""),
			"style":    str("One of: Red, White, Rosé, Sparkling, Sweet, Fortified"),
			"summary":  str("Professional tasting notes and flavor profile summary."),
			"characteristics": {
				Type: "OBJECT",
				Properties: map[string]*schema{
					"body":      integer,
					"tannin":    integer,
					"acidity":   integer,
					"sweetness": integer,
				},
				Required: []string{"body", "tannin", "acidity", "sweetness"},
			},
		},
		Required: []string{"name", "winery", "varietal", "region", "vintage", "summary", "characteristics", "style"},
	}
}
