package ai

import (
	"fmt"
	"os"

	"github.com/guonaihong/gout"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"
)

// Placeholder strings returned on failure. Callers display these
// directly; generation never surfaces an error.
const (
	msgNoKey        = "API Key not configured."
	msgConceptError = "Error generating concept. Please check your connection."
	msgMessageError = "Error generating message."
	msgNoConcept    = "No concept generated."
	msgNoMessage    = "No message generated."
)

// MessageKind selects the client-message template.
type MessageKind string

const (
	KindReminder MessageKind = "reminder"
	KindCare     MessageKind = "care"
	KindPromo    MessageKind = "promo"
)

var validMessageKinds = []MessageKind{KindReminder, KindCare, KindPromo}

// IsValid reports whether the value is a known MessageKind.
func (k MessageKind) IsValid() bool {
	for _, candidate := range validMessageKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseMessageKind converts raw input into a MessageKind.
func ParseMessageKind(value string) (MessageKind, error) {
	for _, candidate := range validMessageKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid message kind %q", value)
}

// Client talks to the Gemini generateContent endpoint.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string

	log zerolog.Logger
}

// NewFromEnv builds a client configured from GEMINI_API_KEY.
func NewFromEnv(log zerolog.Logger) *Client {
	return &Client{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   defaultModel,
		BaseURL: defaultBaseURL,
		log:     log,
	}
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(prompt, system string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req := generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}
	if system != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}

	var resp generateResponse
	var code int
	if err := gout.POST(url).SetJSON(req).Code(&code).BindJSON(&resp).Do(); err != nil {
		return "", err
	}
	if code != 200 {
		return "", fmt.Errorf("gemini returned status %d", code)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateConcept produces a tattoo concept description for a client's
// free-text idea. Fails soft: every failure mode yields a
// human-readable placeholder, never an error.
func (c *Client) GenerateConcept(prompt string) string {
	if c.APIKey == "" {
		return msgNoKey
	}
	fullPrompt := fmt.Sprintf(`You are a creative assistant for a Tattoo Artist named David at Studio Viking.
Generate a creative tattoo concept description based on this request: %q.
Keep the tone artistic, professional, and slightly edgy/Viking style.
Suggest placement on the body and style (e.g., Realism, Old School, Blackwork).`, prompt)

	text, err := c.generate(fullPrompt, "You are a helpful assistant for a Tattoo Studio.")
	if err != nil {
		c.log.Warn().Err(err).Msg("concept generation failed")
		return msgConceptError
	}
	if text == "" {
		return msgNoConcept
	}
	return text
}

// GenerateMessage produces a client-facing WhatsApp message of the
// given kind. Fails soft like GenerateConcept.
func (c *Client) GenerateMessage(kind MessageKind, clientName, details string) string {
	if c.APIKey == "" {
		return msgNoKey
	}

	var promptContext string
	switch kind {
	case KindReminder:
		promptContext = "Write a polite WhatsApp message reminding the client of their appointment tomorrow."
	case KindCare:
		promptContext = "Write a short list of aftercare instructions for a fresh tattoo/piercing."
	case KindPromo:
		promptContext = "Write a catchy promotional message for a flash day."
	}

	fullPrompt := fmt.Sprintf(`%s Client Name: %s. Details: %s.
Tone: Professional but cool, "Studio Viking" style. Use emojis sparingly. Language: Portuguese (Brazil).`,
		promptContext, clientName, details)

	text, err := c.generate(fullPrompt, "")
	if err != nil {
		c.log.Warn().Err(err).Msg("message generation failed")
		return msgMessageError
	}
	if text == "" {
		return msgNoMessage
	}
	return text
}
