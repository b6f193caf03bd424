package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/entity"
	domainerrors "audiobrew/internal/domain/errors"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/pkg/errors"
)

const (
	scriptTemperature = 0.7
	scriptMaxTokens   = 2000

	// narrationWordsPerMinute is the assumed speaking rate
	narrationWordsPerMinute = 145

	scriptSystemPrompt = "You are an expert podcast script writer. Your output should be ONLY the script text " +
		"with no additional comments or instructions. Make sure to cover all key insights from each newsletter " +
		"in detail. Aim for 3800-4000 characters of content, or less when there is no more content to cover."

	scriptPromptTemplate = `
You are a podcast host. Create a comprehensive, in-depth script based on the following newsletter content:

%TEXT%

Guidelines:
1. Start with a very brief intro mentioning this is the AudioBrew podcast
2. Cover ALL key insights, statistics, and quotes from EACH newsletter in detail
3. Keep the script under 4000 characters total, but use as much of that limit as possible
4. Write in a conversational tone suitable for speaking
5. Do not include any formatting instructions, notes, or meta-commentary
6. For each newsletter, extract and explain the most valuable insights without skipping any important context
7. End with a brief sign-off

Return ONLY the script text that should be read aloud, with no additional formatting or instructions.
`
)

type scriptService struct {
	generator service.TextGenerator
	logger    *slog.Logger
}

// NewScriptService creates a new script synthesis service
func NewScriptService(generator service.TextGenerator, logger *slog.Logger) usecase.ScriptUsecase {
	return &scriptService{
		generator: generator,
		logger:    logger,
	}
}

// Synthesize asks the text generator for a narration script and estimates its spoken length.
func (s *scriptService) Synthesize(ctx context.Context, combinedText string) (*entity.ScriptResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	script, err := s.generator.Generate(ctx, service.TextGenerationRequest{
		SystemPrompt: scriptSystemPrompt,
		UserPrompt:   buildScriptPrompt(combinedText),
		Temperature:  scriptTemperature,
		MaxTokens:    scriptMaxTokens,
	})
	if err != nil {
		logger.Error("Script generation failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrScriptGenerationFailed.WithDetails(err.Error()), err.Error())
	}

	wordCount := len(strings.Fields(script))
	result := &entity.ScriptResult{
		Script:            script,
		ApproxDurationSec: approxDurationSeconds(wordCount),
		WordCount:         wordCount,
	}

	logger.Info("Script generated",
		slog.Int("characters", len([]rune(script))),
		slog.Int("word_count", wordCount),
		slog.Int("approx_duration_sec", result.ApproxDurationSec),
	)

	return result, nil
}

func buildScriptPrompt(combinedText string) string {
	return strings.Replace(scriptPromptTemplate, "%TEXT%", combinedText, 1)
}

// approxDurationSeconds returns round(words / 145 * 60).
func approxDurationSeconds(wordCount int) int {
	return int(math.Round(float64(wordCount) / narrationWordsPerMinute * 60))
}
