package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "audiobrew/internal/delivery/context"
	domainerrors "audiobrew/internal/domain/errors"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// speechCharLimit is the input ceiling applied before calling the speech model
	speechCharLimit = 4050
	// speechHardLimit is the provider's own limit
	speechHardLimit = 4096
	// speechFallbackLength is used when the first pass still exceeds speechHardLimit
	speechFallbackLength = 4000
	// sentenceCutThreshold is the earliest period position accepted as a cut point
	sentenceCutThreshold = speechCharLimit * 8 / 10

	// TruncationMarker is appended to scripts cut to fit the speech model
	TruncationMarker = "... [Text truncated due to length limits]"

	minAudioBytes    = 1000
	audioContentType = "audio/mpeg"
)

type audioService struct {
	synthesizer service.SpeechSynthesizer
	store       service.ArtifactStore
	logger      *slog.Logger
}

// NewAudioService creates a new audio synthesis service
func NewAudioService(synthesizer service.SpeechSynthesizer, store service.ArtifactStore, logger *slog.Logger) usecase.AudioUsecase {
	return &audioService{
		synthesizer: synthesizer,
		store:       store,
		logger:      logger,
	}
}

// Synthesize converts the script to MP3, uploads it under the user's prefix and returns its public URL.
func (s *audioService) Synthesize(ctx context.Context, script string, userID uuid.UUID) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	text := TruncateForSpeech(script)
	if text != script {
		logger.Info("Script truncated for speech synthesis",
			slog.Int("original_chars", len([]rune(script))),
			slog.Int("truncated_chars", len([]rune(text))),
		)
	}

	audio, err := s.synthesizer.Synthesize(ctx, text)
	if err != nil {
		return "", errors.Wrap(err, "failed to synthesize speech")
	}
	if len(audio) < minAudioBytes {
		return "", domainerrors.ErrAudioTooSmall.WithDetails(fmt.Sprintf("received %d bytes", len(audio)))
	}

	path := AudioObjectPath(userID, uuid.New())
	logger.Info("Uploading podcast audio",
		slog.String("path", path),
		slog.Int("bytes", len(audio)),
	)

	if err := s.store.Upload(ctx, path, audio, audioContentType); err != nil {
		return "", errors.Wrap(err, "failed to upload audio")
	}

	return s.store.PublicURL(path), nil
}

// AudioObjectPath returns the storage path of a generated audio file.
func AudioObjectPath(userID, fileID uuid.UUID) string {
	return fmt.Sprintf("podcasts/%s/%s.mp3", userID, fileID)
}

// PlaceholderAudioURL returns a well-formed URL that points at nothing. It is
// stored when audio generation fails so the podcast record is still written.
func PlaceholderAudioURL() string {
	return fmt.Sprintf("https://example.com/audio/%s.mp3", uuid.New())
}

// TruncateForSpeech fits text under the speech model's input ceiling.
// Lengths count characters, not bytes. Applying it to its own output is a no-op.
func TruncateForSpeech(text string) string {
	length := utf8.RuneCountInString(text)
	if length <= speechCharLimit {
		return text
	}
	if strings.HasSuffix(text, TruncationMarker) && length-utf8.RuneCountInString(TruncationMarker) <= speechCharLimit {
		return text
	}

	runes := []rune(text)

	if len(runes) > speechCharLimit {
		cut := runes[:speechCharLimit]
		if idx := lastIndexRune(cut, '.'); idx > sentenceCutThreshold {
			cut = cut[:idx+1]
		}
		runes = append(cut[:len(cut):len(cut)], []rune(TruncationMarker)...)
	}

	if len(runes) > speechHardLimit {
		runes = append(runes[:speechFallbackLength:speechFallbackLength], []rune(TruncationMarker)...)
	}

	return string(runes)
}

func lastIndexRune(runes []rune, target rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == target {
			return i
		}
	}

	return -1
}
