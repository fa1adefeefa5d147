package usecase

import (
	"context"
	"fmt"

	"multi-tenant-bot-relay/internal/chat"
	"multi-tenant-bot-relay/internal/model"
)

// attachmentFilename is the name given to downloaded voice clips when they
// are re-uploaded for transcription.
const attachmentFilename = "voice.m4a"

// HandleAudioMessage implements chat.UseCase: download, transcribe, run the
// transcript through a normal conversation turn, echo transcript + feedback.
//
// By the time a failure surfaces the reply token may already be consumed or
// expired, so the retry-later notice always goes through the push path.
func (uc *implUseCase) HandleAudioMessage(ctx context.Context, cfg model.BotConfig, userID, replyToken, messageID string) error {
	audioBytes, err := uc.messenger.GetContent(ctx, cfg.AccessToken, messageID)
	if err != nil {
		uc.notifyVoiceFailure(ctx, cfg, userID, fmt.Errorf("%w: content download: %v", chat.ErrUpstream, err))
		return fmt.Errorf("%w: content download: %v", chat.ErrUpstream, err)
	}

	transcript, err := uc.llm.Transcribe(ctx, audioBytes, attachmentFilename, uc.cfg.TranscribeLanguage)
	if err != nil {
		uc.notifyVoiceFailure(ctx, cfg, userID, fmt.Errorf("%w: transcription: %v", chat.ErrUpstream, err))
		return fmt.Errorf("%w: transcription: %v", chat.ErrUpstream, err)
	}

	feedback, err := uc.respond(ctx, cfg, userID, transcript)
	if err != nil {
		uc.notifyVoiceFailure(ctx, cfg, userID, err)
		return err
	}

	reply := fmt.Sprintf("I heard you say: \"%s\"\n\n%s", transcript, feedback)
	if err := uc.reply(ctx, cfg, replyToken, reply); err != nil {
		uc.notifyVoiceFailure(ctx, cfg, userID, err)
		return err
	}

	return nil
}

// notifyVoiceFailure logs the upstream detail and best-effort pushes the
// generic retry-later message.
func (uc *implUseCase) notifyVoiceFailure(ctx context.Context, cfg model.BotConfig, userID string, cause error) {
	uc.l.Errorf(ctx, "chat: voice turn for %s/%s: %v", cfg.ID, userID, cause)
	if err := uc.messenger.Push(ctx, cfg.AccessToken, userID, textMessages(msgRetryLater, 0)); err != nil {
		uc.l.Errorf(ctx, "chat: voice failure push to %s/%s: %v", cfg.ID, userID, err)
	}
}
