package services

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"strings"
	"time"

	"sweatfix/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultCoachModel = "gemini-2.5-flash"

const coachSystemInstruction = "You are a premium AI fitness coach for 'Sweat Fix Gym'. " +
	"Your tone is motivating, professional, and expert. When asked for workout plans, diets, " +
	"or macro details, ALWAYS format your response strictly as concise bullet points. Avoid " +
	"long paragraphs. Deliver highly actionable, scannable advice.\n\n" +
	"Before producing any plan, gather the member's details: weight and height, primary goal, " +
	"dietary restrictions, and available equipment. Do not generate a plan until you have them.\n\n" +
	"When you do generate a plan, append exactly one fenced code block tagged json at the end " +
	"of your reply, containing exactly two keys, \"workout_plan\" and \"diet_plan\", each a " +
	"one-line summary of the plan above it. Emit the block only when delivering a plan."

// ChatTurn mirrors the client's rolling history shape.
type ChatTurn struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

type ChatPart struct {
	Text string `json:"text"`
}

// replyGenerator is the single seam to the upstream model provider.
type replyGenerator interface {
	Generate(ctx context.Context, systemInstruction string, contents []*genai.Content) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) Generate(ctx context.Context, systemInstruction string, contents []*genai.Content) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("provider returned an empty completion")
	}
	return text, nil
}

// CoachService produces coach replies. With no provider configured, or when
// the provider fails, it answers from the local simulator instead of
// surfacing the error.
type CoachService struct {
	generator replyGenerator
	rng       *rand.Rand
}

func NewCoachService() *CoachService {
	svc := &CoachService{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.L.Warn("GEMINI_API_KEY not set, coach replies will be simulated")
		return svc
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.L.Warn("failed to create genai client, coach replies will be simulated", zap.Error(err))
		return svc
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultCoachModel
	}
	svc.generator = &geminiGenerator{client: client, model: model}
	return svc
}

// GetReply answers a user message given the rolling history. A single
// provider attempt is made, bounded by ctx; any failure falls through to the
// simulator, so callers always receive usable text.
func (s *CoachService) GetReply(ctx context.Context, message string, history []ChatTurn) string {
	if s.generator == nil {
		return s.simulateReply(message)
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		var text strings.Builder
		for _, part := range turn.Parts {
			text.WriteString(part.Text)
		}
		contents = append(contents, genai.NewContentFromText(text.String(), role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	text, err := s.generator.Generate(ctx, coachSystemInstruction, contents)
	if err != nil {
		logger.L.Warn("coach provider call failed, using simulated reply", zap.Error(err))
		return s.simulateReply(message)
	}
	return text
}
