package usecase

import (
	"context"
	"fmt"
	"time"

	"multi-tenant-bot-relay/internal/chat"
	"multi-tenant-bot-relay/internal/model"
	"multi-tenant-bot-relay/pkg/llm"
	"multi-tenant-bot-relay/pkg/messaging"
)

// Fixed user-facing replies.
const (
	msgResetDone     = "Conversation history cleared. Let's start fresh!"
	msgNothingToPlay = "There is no previous reply to play yet. Chat with me first, then send /listen."
	msgRetryLater    = "Sorry, something went wrong on my side. Please try again in a moment."

	helpTemplate = "Hi, I'm %s, your %s bot.\n\n" +
		"Just send me a message and I'll answer.\n" +
		"Commands:\n" +
		"/reset - clear our conversation history\n" +
		"/help - show this message\n" +
		"/listen - hear my last reply as audio\n\n" +
		"You can also send me a voice message."

	followTemplate = "Thanks for adding %s! Send me a message to get started, or /help to see what I can do."
)

// speechTimeout bounds the detached auto-speech task.
const speechTimeout = 30 * time.Second

// HandleTextMessage implements chat.UseCase.
func (uc *implUseCase) HandleTextMessage(ctx context.Context, cfg model.BotConfig, userID, replyToken, text string) error {
	switch parseCommand(text) {
	case cmdReset:
		uc.sessions.Reset(cfg.ID, userID)
		return uc.reply(ctx, cfg, replyToken, msgResetDone)

	case cmdHelp:
		return uc.reply(ctx, cfg, replyToken, fmt.Sprintf(helpTemplate, cfg.Name, cfg.SkillType))

	case cmdListen:
		return uc.handleListen(ctx, cfg, userID, replyToken)
	}

	reply, err := uc.respond(ctx, cfg, userID, text)
	if err != nil {
		uc.l.Errorf(ctx, "chat: respond for %s/%s: %v", cfg.ID, userID, err)
		if sendErr := uc.reply(ctx, cfg, replyToken, msgRetryLater); sendErr != nil {
			uc.l.Errorf(ctx, "chat: failed to deliver retry message to %s/%s: %v", cfg.ID, userID, sendErr)
		}
		return err
	}

	if err := uc.reply(ctx, cfg, replyToken, reply); err != nil {
		uc.l.Errorf(ctx, "chat: reply to %s/%s: %v", cfg.ID, userID, err)
		return err
	}

	// Best effort and fully detached: a synthesis or push failure is only
	// ever visible in the logs, never on the text reply path.
	if uc.synthesizer != nil && wantsAudio(text) {
		uc.speakAsync(cfg, userID, reply)
	}

	return nil
}

// HandleFollow implements chat.UseCase.
func (uc *implUseCase) HandleFollow(ctx context.Context, cfg model.BotConfig, userID, replyToken string) error {
	uc.l.Infof(ctx, "chat: new follower %s for tenant %s", userID, cfg.ID)
	return uc.reply(ctx, cfg, replyToken, fmt.Sprintf(followTemplate, cfg.Name))
}

// respond runs one conversation turn: session read, completion call, session
// update. The per-key lock serializes concurrent turns for the same pair. A
// failed turn leaves the session exactly as it found it.
func (uc *implUseCase) respond(ctx context.Context, cfg model.BotConfig, userID, text string) (string, error) {
	unlock := uc.sessions.Lock(cfg.ID, userID)
	defer unlock()

	userTurn := model.Turn{Role: model.RoleUser, Content: text}

	// The prompt sees the history as it will be after the user turn lands,
	// already truncated to the cap.
	history := append(uc.sessions.History(cfg.ID, userID), userTurn)
	if over := len(history) - model.MaxSessionTurns; over > 0 {
		history = history[over:]
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: cfg.SystemPrompt})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: string(turn.Role), Content: turn.Content})
	}

	reply, err := uc.llm.ChatCompletion(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: completion: %v", chat.ErrUpstream, err)
	}

	uc.sessions.Append(cfg.ID, userID,
		userTurn,
		model.Turn{Role: model.RoleAssistant, Content: reply},
	)
	uc.sessions.SetLastReply(cfg.ID, userID, reply)

	return reply, nil
}

// handleListen serves /listen: synthesize the last assistant reply, or say
// there is nothing to play.
func (uc *implUseCase) handleListen(ctx context.Context, cfg model.BotConfig, userID, replyToken string) error {
	last, ok := uc.sessions.LastReply(cfg.ID, userID)
	if !ok {
		return uc.reply(ctx, cfg, replyToken, msgNothingToPlay)
	}

	if uc.synthesizer == nil {
		return uc.reply(ctx, cfg, replyToken, msgNothingToPlay)
	}

	audioBytes, err := uc.synthesizer.Synthesize(ctx, last, uc.cfg.SpeechLanguage)
	if err != nil {
		uc.l.Errorf(ctx, "chat: listen synthesis for %s/%s: %v", cfg.ID, userID, err)
		if sendErr := uc.reply(ctx, cfg, replyToken, msgRetryLater); sendErr != nil {
			uc.l.Errorf(ctx, "chat: failed to deliver retry message to %s/%s: %v", cfg.ID, userID, sendErr)
		}
		return fmt.Errorf("%w: synthesis: %v", chat.ErrUpstream, err)
	}

	blobID := uc.blobs.Put(audioBytes)
	msg := messaging.NewAudioMessage(uc.blobURL(blobID), estimateDurationMillis(last))
	return uc.messenger.Reply(ctx, cfg.AccessToken, replyToken, []messaging.Message{msg})
}

// speakAsync synthesizes text and pushes it as an audio message in a
// detached background task. Errors are swallowed after logging.
func (uc *implUseCase) speakAsync(cfg model.BotConfig, userID, text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), speechTimeout)
		defer cancel()

		audioBytes, err := uc.synthesizer.Synthesize(ctx, text, uc.cfg.SpeechLanguage)
		if err != nil {
			uc.l.Warnf(ctx, "chat: auto-speech synthesis for %s/%s: %v", cfg.ID, userID, err)
			return
		}

		blobID := uc.blobs.Put(audioBytes)
		msg := messaging.NewAudioMessage(uc.blobURL(blobID), estimateDurationMillis(text))
		if err := uc.messenger.Push(ctx, cfg.AccessToken, userID, []messaging.Message{msg}); err != nil {
			uc.l.Warnf(ctx, "chat: auto-speech push for %s/%s: %v", cfg.ID, userID, err)
		}
	}()
}

// reply sends text through the one-shot reply token, split into ordered
// chunks when it exceeds the transport limit.
func (uc *implUseCase) reply(ctx context.Context, cfg model.BotConfig, replyToken, text string) error {
	return uc.messenger.Reply(ctx, cfg.AccessToken, replyToken, textMessages(text, messaging.MaxMessageLength))
}
