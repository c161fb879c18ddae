package llmprovider

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"friday-assistant/pkg/gemini"
)

const (
	ProviderGemini    = "gemini"
	ProviderGeminiSDK = "gemini-sdk"
)

// GeminiAdapter adapts the pkg/gemini REST client to the Provider interface
type GeminiAdapter struct {
	client *gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client *gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	client := a.client
	if req.APIKey != "" {
		client = client.WithAPIKey(req.APIKey)
	}

	geminiReq := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: req.Prompt}}},
		},
	}
	if req.SystemInstruction != "" {
		geminiReq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.SystemInstruction}}}
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := client.GenerateContent(ctx, geminiReq)
	if err != nil {
		if errors.Is(err, gemini.ErrMissingAPIKey) {
			return nil, ErrMissingCredential
		}
		return nil, err
	}

	text, ok := resp.Text()
	if !ok {
		return nil, ErrEmptyResponse
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Text:         text,
		ProviderName: ProviderGemini,
		ModelName:    client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// GenAIAdapter serves requests through the official Go SDK. A genai client is
// bound to one key, so one is opened per call.
type GenAIAdapter struct {
	apiKey string
	model  string
	opts   []option.ClientOption
}

// NewGenAIAdapter creates an SDK-backed Gemini provider.
func NewGenAIAdapter(apiKey, model string, opts ...option.ClientOption) *GenAIAdapter {
	if model == "" {
		model = gemini.DefaultModel
	}
	return &GenAIAdapter{apiKey: apiKey, model: model, opts: opts}
}

// GenerateContent implements Provider interface
func (a *GenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	key := req.APIKey
	if key == "" {
		key = a.apiKey
	}
	if key == "" {
		return nil, ErrMissingCredential
	}

	opts := append([]option.ClientOption{option.WithAPIKey(key)}, a.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	model := client.GenerativeModel(a.model)
	model.SetTemperature(float32(req.Temperature))
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.SystemInstruction != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(req.SystemInstruction))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, err
	}

	text, ok := genaiText(resp)
	if !ok {
		return nil, ErrEmptyResponse
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &Response{
		Text:         text,
		ProviderName: ProviderGeminiSDK,
		ModelName:    a.model,
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GenAIAdapter) Name() string {
	return ProviderGeminiSDK
}

// Model returns model name
func (a *GenAIAdapter) Model() string {
	return a.model
}

func genaiText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", false
	}
	text, ok := content.Parts[0].(genai.Text)
	if !ok || text == "" {
		return "", false
	}
	return string(text), true
}
