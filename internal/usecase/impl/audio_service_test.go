package impl

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	domainerrors "audiobrew/internal/domain/errors"
	mockSvc "audiobrew/internal/mocks/service"
	"audiobrew/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAudioService(t *testing.T) (
	usecase.AudioUsecase,
	*mockSvc.MockSpeechSynthesizer,
	*mockSvc.MockArtifactStore,
) {
	synthesizer := mockSvc.NewMockSpeechSynthesizer(t)
	store := mockSvc.NewMockArtifactStore(t)

	return NewAudioService(synthesizer, store, newTestLogger()), synthesizer, store
}

func TestTruncateForSpeech_ShortTextUnchanged(t *testing.T) {
	text := strings.Repeat("a", speechCharLimit)

	assert.Equal(t, text, TruncateForSpeech(text))
}

func TestTruncateForSpeech_CutsAtLatePeriod(t *testing.T) {
	runes := []rune(strings.Repeat("x", 5000))
	runes[4000] = '.'
	text := string(runes)

	got := TruncateForSpeech(text)

	assert.Equal(t, string(runes[:4001])+TruncationMarker, got)
	assert.Len(t, []rune(got), 4001+len([]rune(TruncationMarker)))
}

func TestTruncateForSpeech_EarlyPeriodCutsAtCeiling(t *testing.T) {
	runes := []rune(strings.Repeat("x", 5000))
	runes[1000] = '.'
	text := string(runes)

	got := TruncateForSpeech(text)

	assert.Equal(t, string(runes[:speechCharLimit])+TruncationMarker, got)
}

func TestTruncateForSpeech_PeriodAtThresholdIsNotUsed(t *testing.T) {
	runes := []rune(strings.Repeat("x", 5000))
	runes[sentenceCutThreshold] = '.'

	got := TruncateForSpeech(string(runes))

	assert.Equal(t, string(runes[:speechCharLimit])+TruncationMarker, got)
}

func TestTruncateForSpeech_CountsRunes(t *testing.T) {
	text := strings.Repeat("é", speechCharLimit)

	assert.Equal(t, text, TruncateForSpeech(text))

	long := strings.Repeat("é", speechCharLimit+10)
	got := TruncateForSpeech(long)
	assert.Equal(t, strings.Repeat("é", speechCharLimit)+TruncationMarker, got)
}

func TestTruncateForSpeech_ShortInvalidUTF8Unchanged(t *testing.T) {
	text := "Hello \xff world."

	assert.Equal(t, text, TruncateForSpeech(text))
}

func TestTruncateForSpeech_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Short script.",
		strings.Repeat("x", 4051),
		strings.Repeat("Sentence one. ", 400),
		strings.Repeat("no periods at all ", 300),
		strings.Repeat("é.", 3000),
		strings.Repeat("x", 4010) + TruncationMarker,
		strings.Repeat("x", 5000) + TruncationMarker,
	}

	for _, in := range inputs {
		once := TruncateForSpeech(in)
		twice := TruncateForSpeech(once)

		assert.Equal(t, once, twice)
		assert.LessOrEqual(t, len([]rune(once)), speechHardLimit)
	}
}

func TestAudioService_Synthesize(t *testing.T) {
	svc, synthesizer, store := createTestAudioService(t)

	ctx := context.Background()
	userID := uuid.New()
	audio := bytes.Repeat([]byte{0xff}, 2048)
	pathPattern := regexp.MustCompile(`^podcasts/` + userID.String() + `/[0-9a-f-]{36}\.mp3$`)

	synthesizer.EXPECT().Synthesize(ctx, "Hello listeners.").Return(audio, nil)
	store.EXPECT().
		Upload(ctx, mock.MatchedBy(pathPattern.MatchString), audio, "audio/mpeg").
		Return(nil)
	store.EXPECT().
		PublicURL(mock.MatchedBy(pathPattern.MatchString)).
		RunAndReturn(func(path string) string { return "https://cdn.example.com/" + path })

	url, err := svc.Synthesize(ctx, "Hello listeners.", userID)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/podcasts/"+userID.String()+"/"))
}

func TestAudioService_Synthesize_TooSmall(t *testing.T) {
	svc, synthesizer, _ := createTestAudioService(t)

	ctx := context.Background()
	synthesizer.EXPECT().Synthesize(ctx, mock.Anything).Return(make([]byte, 999), nil)

	url, err := svc.Synthesize(ctx, "Hello.", uuid.New())

	assert.Empty(t, url)
	assert.True(t, errors.Is(err, domainerrors.ErrAudioTooSmall))
}

func TestAudioService_Synthesize_UploadFailureReturnsError(t *testing.T) {
	svc, synthesizer, store := createTestAudioService(t)

	ctx := context.Background()
	synthesizer.EXPECT().Synthesize(ctx, mock.Anything).Return(make([]byte, 4096), nil)
	store.EXPECT().Upload(ctx, mock.Anything, mock.Anything, "audio/mpeg").Return(errors.New("dial tcp: connection refused"))

	url, err := svc.Synthesize(ctx, "Hello.", uuid.New())

	assert.Empty(t, url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAudioService_Synthesize_TruncatesBeforeSynthesis(t *testing.T) {
	svc, synthesizer, store := createTestAudioService(t)

	ctx := context.Background()
	script := strings.Repeat("y", 6000)

	synthesizer.EXPECT().
		Synthesize(ctx, mock.MatchedBy(func(text string) bool {
			return strings.HasSuffix(text, TruncationMarker) && len([]rune(text)) <= speechHardLimit
		})).
		Return(make([]byte, 4096), nil)
	store.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.EXPECT().PublicURL(mock.Anything).Return("https://cdn.example.com/x.mp3")

	_, err := svc.Synthesize(ctx, script, uuid.New())

	require.NoError(t, err)
}

func TestPlaceholderAudioURL(t *testing.T) {
	pattern := regexp.MustCompile(`^https://example\.com/audio/[0-9a-f-]{36}\.mp3$`)

	assert.Regexp(t, pattern, PlaceholderAudioURL())
	assert.NotEqual(t, PlaceholderAudioURL(), PlaceholderAudioURL())
}
