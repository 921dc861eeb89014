package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	defaultTextModel  = "gemini-2.5-flash"
	defaultImageModel = "imagen-3.0-generate-002"
	defaultTimeout    = 60 * time.Second
	responseCacheSize = 128
)

var (
	ErrMissingAPIKey   = errors.New("missing AI API key")
	ErrEmptyCompletion = errors.New("AI boundary returned an empty completion")
)

type Options struct {
	BaseURL    string
	APIKey     string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
	Logger     logrus.FieldLogger
}

// Client wraps the generative-AI REST boundary. Every call can fail
// with a network or validation error; callers surface those as
// transient notices and never leave partial state behind.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	textModel     string
	imageModel    string
	logger        logrus.FieldLogger
	analysisCache *lru.Cache
	hashtagCache  *lru.Cache
}

func NewClient(options Options) (*Client, error) {
	if strings.TrimSpace(options.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if options.BaseURL == "" {
		options.BaseURL = defaultBaseURL
	}
	if options.TextModel == "" {
		options.TextModel = defaultTextModel
	}
	if options.ImageModel == "" {
		options.ImageModel = defaultImageModel
	}
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger()
	}

	analysisCache, err := lru.New(responseCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}
	hashtagCache, err := lru.New(responseCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create hashtag cache: %w", err)
	}

	return &Client{
		httpClient:    &http.Client{Timeout: options.Timeout},
		baseURL:       strings.TrimRight(options.BaseURL, "/"),
		apiKey:        options.APIKey,
		textModel:     options.TextModel,
		imageModel:    options.ImageModel,
		logger:        options.Logger,
		analysisCache: analysisCache,
		hashtagCache:  hashtagCache,
	}, nil
}

type contentPart struct {
	Text string `json:"text"`
}

type requestContent struct {
	Role  string        `json:"role,omitempty"`
	Parts []contentPart `json:"parts"`
}

type generationConfig struct {
	Temperature      float64        `json:"temperature,omitempty"`
	TopP             float64        `json:"topP,omitempty"`
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	SystemInstruction *requestContent   `json:"systemInstruction,omitempty"`
	Contents          []requestContent  `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content requestContent `json:"content"`
	} `json:"candidates"`
}

func (response generateResponse) text() string {
	builder := strings.Builder{}
	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			builder.WriteString(part.Text)
		}
		break
	}
	return builder.String()
}

func (client *Client) post(ctx context.Context, url string, payload any) (*http.Response, error) {
	serialized, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal AI request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(serialized))
	if err != nil {
		return nil, fmt.Errorf("build AI request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-goog-api-key", client.apiKey)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("call AI boundary: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		response.Body.Close()
		return nil, fmt.Errorf("AI boundary responded with status %d", response.StatusCode)
	}
	return response, nil
}

// generateJSON runs a schema-constrained completion and returns the raw
// JSON document produced by the model.
func (client *Client) generateJSON(ctx context.Context, prompt string, schema map[string]any, temperature float64) ([]byte, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", client.baseURL, client.textModel)
	payload := generateRequest{
		Contents: []requestContent{{Role: "user", Parts: []contentPart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature:      temperature,
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	response, err := client.post(ctx, url, payload)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	parsed := generateResponse{}
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode AI response: %w", err)
	}

	text := strings.TrimSpace(parsed.text())
	if text == "" {
		return nil, ErrEmptyCompletion
	}
	return []byte(text), nil
}

// streamGenerate opens a server-sent-event completion and forwards each
// text chunk in arrival order. The stream terminates with a single done
// or error event.
func (client *Client) streamGenerate(ctx context.Context, systemInstruction string, contents []requestContent, temperature float64, topP float64) (*Stream, error) {
	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", client.baseURL, client.textModel)
	payload := generateRequest{
		Contents: contents,
		GenerationConfig: &generationConfig{
			Temperature: temperature,
			TopP:        topP,
		},
	}
	if systemInstruction != "" {
		payload.SystemInstruction = &requestContent{Parts: []contentPart{{Text: systemInstruction}}}
	}

	response, err := client.post(ctx, url, payload)
	if err != nil {
		return nil, err
	}

	stream := newStream()
	go func() {
		defer response.Body.Close()

		scanner := bufio.NewScanner(response.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				continue
			}

			chunk := generateResponse{}
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				stream.close(fmt.Errorf("decode AI stream chunk: %w", err))
				return
			}
			if text := chunk.text(); text != "" {
				stream.emit(text)
			}
		}
		if err := scanner.Err(); err != nil {
			client.logger.WithError(err).Warn("AI stream terminated early")
		}
		stream.close(scanner.Err())
	}()
	return stream, nil
}

type imageRequest struct {
	Instances  []imageInstance `json:"instances"`
	Parameters imageParameters `json:"parameters"`
}

type imageInstance struct {
	Prompt string `json:"prompt"`
}

type imageParameters struct {
	SampleCount    int    `json:"sampleCount"`
	OutputMIMEType string `json:"outputMimeType"`
	AspectRatio    string `json:"aspectRatio"`
}

type imageResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

// generateImage returns a base64-encoded JPEG as a data URL.
func (client *Client) generateImage(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:predict", client.baseURL, client.imageModel)
	payload := imageRequest{
		Instances: []imageInstance{{Prompt: prompt}},
		Parameters: imageParameters{
			SampleCount:    1,
			OutputMIMEType: "image/jpeg",
			AspectRatio:    "16:9",
		},
	}

	response, err := client.post(ctx, url, payload)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	parsed := imageResponse{}
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode image response: %w", err)
	}
	if len(parsed.Predictions) == 0 || parsed.Predictions[0].BytesBase64Encoded == "" {
		return "", ErrEmptyCompletion
	}
	return "data:image/jpeg;base64," + parsed.Predictions[0].BytesBase64Encoded, nil
}
