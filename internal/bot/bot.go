// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bot runs triboferrin's Discord gateway session on top of a
// resolved configuration.
package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/MKhiriev/triboferrin/internal/config"
	"github.com/MKhiriev/triboferrin/internal/logger"
)

// Bot owns a single Discord gateway session.
type Bot struct {
	session *discordgo.Session
	log     *logger.Logger
}

// New builds a Bot from the resolved configuration. The configuration must
// carry a non-empty token; when it also names a Discord API URL, the
// session's REST traffic is rerouted there.
func New(cfg config.Config, log *logger.Logger) (*Bot, error) {
	if cfg.DiscordToken == "" {
		return nil, ErrTokenRequired
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentGuildVoiceStates |
		discordgo.IntentMessageContent

	if cfg.DiscordAPIURL != nil {
		log.Info().Str("url", *cfg.DiscordAPIURL).Msg("using custom discord api url")
		if err := routeThrough(session, *cfg.DiscordAPIURL); err != nil {
			return nil, err
		}
	}

	b := &Bot{session: session, log: log}
	session.AddHandler(b.onReady)

	return b, nil
}

// Run opens the gateway session and blocks until ctx is cancelled, then
// closes the session.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	b.log.Info().Msg("gateway session open")

	<-ctx.Done()

	b.log.Info().Msg("shutting down")
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("close discord gateway: %w", err)
	}
	return nil
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().Str("user", r.User.Username).Msg("connected to discord gateway")
}
