package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rpsarena/internal/game"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash"

	// Temperatura alta varia as respostas entre jogadores; o limite de
	// tokens força a resposta de uma palavra só.
	generationTemperature = 0.7
	generationMaxTokens   = 10
)

// GeminiProvider implementa Provider contra a API Generative Language do
// Google. A resposta esperada é uma única palavra: rock, paper ou scissors.
type GeminiProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiProvider cria o provedor. A chave de API é obrigatória para o
// provedor existir; sem chave o bootstrap simplesmente não o instancia.
func NewGeminiProvider(apiKey, model string, timeout time.Duration) *GeminiProvider {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Estruturas mínimas do corpo da API generateContent.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Suggest monta o prompt de análise e consulta o modelo. Qualquer problema
// vira um erro para o Service resolver com o fallback local.
func (g *GeminiProvider) Suggest(ctx context.Context, req Request) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildPrompt(req)}}},
		},
	}
	body.GenerationConfig.Temperature = generationTemperature
	body.GenerationConfig.MaxOutputTokens = generationMaxTokens

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call advisory model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisory model returned status %s", resp.Status)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode advisory response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("advisory model returned an empty response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// buildPrompt descreve o histórico na perspectiva do jogador e pede uma
// resposta de uma palavra.
func buildPrompt(req Request) string {
	var sb strings.Builder

	for _, entry := range req.History {
		var outcome string
		switch entry.Result {
		case game.ResultWin:
			outcome = fmt.Sprintf("%s won", req.PlayerName)
		case game.ResultLose:
			outcome = fmt.Sprintf("%s won", req.OpponentName)
		default:
			outcome = "Tie"
		}
		sb.WriteString(fmt.Sprintf("Round %d: %s played %s, %s played %s, Result: %s\n",
			entry.Round, req.PlayerName, entry.PlayerChoice,
			req.OpponentName, entry.OpponentChoice, outcome))
	}

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf(
		"You are an expert Rock Paper Scissors strategist providing personalized advice for %s. ", req.PlayerName))
	prompt.WriteString(fmt.Sprintf(
		"Analyze %s's gameplay pattern and recommend the optimal next move for %s.\n\n", req.OpponentName, req.PlayerName))
	prompt.WriteString(fmt.Sprintf("GAME HISTORY FROM %s'S PERSPECTIVE:\n", req.PlayerName))
	prompt.WriteString(sb.String())
	prompt.WriteString(fmt.Sprintf("\nCurrent Round: %d of 7\n", req.CurrentRound))
	prompt.WriteString(fmt.Sprintf("Focus specifically on %s's patterns and weaknesses.\n\n", req.OpponentName))
	prompt.WriteString(`IMPORTANT: Respond with ONLY ONE WORD: "rock", "paper", or "scissors" (lowercase, no quotes, no explanation).`)

	return prompt.String()
}
