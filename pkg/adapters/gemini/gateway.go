// Package gemini implements core.Gateway on top of the Gemini generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/cellar/pkg/core"
)

const (
	DefaultModel   = "gemini-3-flash-preview"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 60 * time.Second

	imagePrompt = "Identify this wine. Return JSON including style (Red/White/etc) and taste summary. Use Search to be accurate."
)

// researchPrompt builds the free-text research instruction.
func researchPrompt(query string) string {
	return fmt.Sprintf("Detailed research for: %s. Include winery, region, vintage, professional tasting notes and style category.", query)
}

// Config holds the configuration for the Gemini gateway.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client // overrides Timeout when set
	Logger     *slog.Logger
}

// Gateway talks to Gemini. It is safe for concurrent use.
type Gateway struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	log     *slog.Logger

	mu        sync.Mutex
	requests  int
	failures  int
	lastError string
}

// New creates a Gateway. A missing API key is not an error here; every call
// then fails with core.ErrConfiguration.
func New(cfg Config) *Gateway {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
		log:     logger.With("adapter", "gemini"),
	}
}

// Configured reports whether an API key is present.
func (g *Gateway) Configured() bool {
	return g.apiKey != ""
}

// AnalyzeImage identifies the wine on a label photo.
func (g *Gateway) AnalyzeImage(ctx context.Context, img core.Image) (core.WineAnalysis, error) {
	mime := img.MIMEType
	if !core.IsImageMIME(mime) {
		g.log.Debug("label photo has no image type, sending as jpeg", "mime", mime)
		mime = "image/jpeg"
	}
	req := g.newRequest(content{
		Role: "user",
		Parts: []part{
			{InlineData: &inlineData{MIMEType: mime, Data: img.Base64()}},
			{Text: imagePrompt},
		},
	})
	resp, err := g.generate(ctx, req)
	if err != nil {
		return core.WineAnalysis{}, err
	}
	return g.parseAnalysis(resp)
}

// Research looks a wine up from free text. Sources without a URI are dropped.
func (g *Gateway) Research(ctx context.Context, query string) (core.WineAnalysis, []core.SearchSource, error) {
	req := g.newRequest(content{
		Role:  "user",
		Parts: []part{{Text: researchPrompt(query)}},
	})
	resp, err := g.generate(ctx, req)
	if err != nil {
		return core.WineAnalysis{}, nil, err
	}
	analysis, err := g.parseAnalysis(resp)
	if err != nil {
		return core.WineAnalysis{}, nil, err
	}
	return analysis, sources(resp), nil
}

func (g *Gateway) newRequest(c content) generateRequest {
	return generateRequest{
		Contents: []content{c},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   wineSchema(),
		},
		Tools: []tool{{GoogleSearch: &struct{}{}}},
	}
}

func (g *Gateway) generate(ctx context.Context, body generateRequest) (*generateResponse, error) {
	if !g.Configured() {
		return nil, fmt.Errorf("gemini: %w: set GEMINI_API_KEY", core.ErrConfiguration)
	}

	resp, err := g.do(ctx, body)
	g.record(err)
	return resp, err
}

func (g *Gateway) do(ctx context.Context, body generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("gemini: encode request: %w: %w", core.ErrGateway, err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w: %w", core.ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	g.log.DebugContext(ctx, "gemini request", slog.String("model", g.model), slog.Int("bytes", len(payload)))
	start := time.Now()

	httpResp, err := g.client.Do(req)
	if err != nil {
		g.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("gemini: request failed: %w: %w", core.ErrGateway, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: read body: %w: %w", core.ErrGateway, err)
	}

	g.log.DebugContext(ctx, "gemini response",
		slog.Int("status", httpResp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		msg := http.StatusText(httpResp.StatusCode)
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return nil, fmt.Errorf("gemini: unexpected status %d (%s): %w", httpResp.StatusCode, msg, core.ErrGateway)
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w: %w", core.ErrGateway, err)
	}
	if len(out.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates in response: %w", core.ErrGateway)
	}
	return &out, nil
}

// parseAnalysis decodes the text of the first candidate. Empty text is "{}".
func (g *Gateway) parseAnalysis(resp *generateResponse) (core.WineAnalysis, error) {
	var text strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	raw := strings.TrimSpace(text.String())
	if raw == "" {
		raw = "{}"
	}

	var analysis core.WineAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		g.markFailure(err)
		return core.WineAnalysis{}, fmt.Errorf("gemini: parse analysis: %w: %w", core.ErrGateway, err)
	}
	return analysis, nil
}

func sources(resp *generateResponse) []core.SearchSource {
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}
	var out []core.SearchSource
	for _, chunk := range meta.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		out = append(out, core.SearchSource{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return out
}

func (g *Gateway) record(err error) {
	g.mu.Lock()
	g.requests++
	g.mu.Unlock()
	if err != nil {
		g.markFailure(err)
	}
}

func (g *Gateway) markFailure(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures++
	g.lastError = err.Error()
}

var _ core.Gateway = (*Gateway)(nil)
