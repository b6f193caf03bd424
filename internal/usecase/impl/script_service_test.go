package impl

import (
	"context"
	"math"
	"strings"
	"testing"

	domainerrors "audiobrew/internal/domain/errors"
	"audiobrew/internal/domain/service"
	mockSvc "audiobrew/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScriptService_Synthesize(t *testing.T) {
	generator := mockSvc.NewMockTextGenerator(t)
	svc := NewScriptService(generator, newTestLogger())

	ctx := context.Background()
	script := strings.TrimSpace(strings.Repeat("word ", 290))

	generator.EXPECT().
		Generate(ctx, mock.MatchedBy(func(req service.TextGenerationRequest) bool {
			return req.Temperature == 0.7 &&
				req.MaxTokens == 2000 &&
				strings.Contains(req.SystemPrompt, "expert podcast script writer") &&
				strings.Contains(req.UserPrompt, "Email from A on Mon") &&
				strings.Contains(req.UserPrompt, "AudioBrew podcast")
		})).
		Return(script, nil)

	result, err := svc.Synthesize(ctx, "Email from A on Mon\n")

	require.NoError(t, err)
	assert.Equal(t, script, result.Script)
	assert.Equal(t, 290, result.WordCount)
	assert.Equal(t, 120, result.ApproxDurationSec)
}

func TestScriptService_Synthesize_GeneratorError(t *testing.T) {
	generator := mockSvc.NewMockTextGenerator(t)
	svc := NewScriptService(generator, newTestLogger())

	ctx := context.Background()
	generator.EXPECT().Generate(ctx, mock.Anything).Return("", errors.New("rate limited"))

	result, err := svc.Synthesize(ctx, "text")

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrScriptGenerationFailed))
	assert.Contains(t, err.Error(), "rate limited")
}

func TestApproxDurationSeconds(t *testing.T) {
	for wordCount := 0; wordCount <= 5000; wordCount++ {
		want := int(math.Round(float64(wordCount) / 145 * 60))
		if got := approxDurationSeconds(wordCount); got != want {
			t.Fatalf("approxDurationSeconds(%d) = %d, want %d", wordCount, got, want)
		}
	}

	assert.Equal(t, 0, approxDurationSeconds(0))
	assert.Equal(t, 1, approxDurationSeconds(2))
	assert.Equal(t, 60, approxDurationSeconds(145))
}

func TestBuildScriptPrompt_EmbedsTextVerbatim(t *testing.T) {
	text := "Email from A on Mon\nSubject: 100% off\n\nTop story..."

	prompt := buildScriptPrompt(text)

	assert.Contains(t, prompt, "following newsletter content:\n\n"+text+"\n\nGuidelines:")
	assert.True(t, strings.HasPrefix(prompt, "\nYou are a podcast host."))
}
