package usecase

import (
	"context"
	"sync"

	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/services/navigation"
)

// SettingsReader exposes the current settings
type SettingsReader interface {
	Current() models.NavigationSettings
}

// VoiceGuidance speaks instructions, keeping at most one utterance active
type VoiceGuidance struct {
	settings SettingsReader
	platform navigation.PlatformInfo
	speech   navigation.SpeechGW

	mu sync.Mutex
}

// NewVoiceGuidance creates a voice guidance controller
func NewVoiceGuidance(settings SettingsReader, platform navigation.PlatformInfo, speech navigation.SpeechGW) *VoiceGuidance {
	return &VoiceGuidance{settings: settings, platform: platform, speech: speech}
}

// Speak cancels whatever is being said and queues text. It does nothing when
// voice guidance is off or the device cannot speak.
func (v *VoiceGuidance) Speak(ctx context.Context, text string) {
	if text == "" || !v.settings.Current().VoiceGuidance || !v.platform.SpeechSupported() {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.speech.Cancel(ctx); err != nil {
		logger.DebugCtx(ctx, "Failed to cancel speech", logger.Err(err))
	}

	utterance := models.Utterance{
		Text:   text,
		Rate:   constants.SpeechRate,
		Pitch:  constants.SpeechPitch,
		Volume: constants.SpeechVolume,
	}
	if err := v.speech.Speak(ctx, utterance); err != nil {
		logger.WarnCtx(ctx, "Failed to speak instruction", logger.Err(err))
	}
}
