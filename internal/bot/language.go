package bot

import (
	"what2cook/internal/domain"
	"what2cook/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const langContextKey = "lang"

// languageMiddleware resolves the chat's saved language before every
// handler. Lookup failures fall back to the default without blocking
// the update.
func (b *Bot) languageMiddleware() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			lang := domain.LangKO
			if chat := c.Chat(); chat != nil {
				saved, err := b.prefs.GetLanguage(chat.ID)
				if err != nil {
					b.logger.Warn("failed to load chat language",
						zap.Int64("chat_id", chat.ID),
						zap.Error(err),
					)
				} else if saved != "" {
					lang = saved
				}
			}
			c.Set(langContextKey, string(lang))
			return next(c)
		}
	}
}

// chatLanguage reads the language the middleware resolved.
func chatLanguage(c tele.Context) domain.Language {
	if v, ok := c.Get(langContextKey).(string); ok {
		return domain.ParseLanguage(v)
	}
	return domain.LangKO
}

// handleChooseLanguage shows the language switcher.
func (b *Bot) handleChooseLanguage(c tele.Context) error {
	lang := chatLanguage(c)
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnLangKorean, btnLangEnglish, btnLangDutch),
	)
	return c.Send(i18n.T(lang, "bot.chooseLanguage", nil), markup)
}

// setLanguageHandler persists the chosen language for this chat.
func (b *Bot) setLanguageHandler(code string) tele.HandlerFunc {
	return func(c tele.Context) error {
		lang := domain.ParseLanguage(code)
		chat := c.Chat()
		if chat == nil {
			return nil
		}

		if err := b.prefs.SetLanguage(chat.ID, lang); err != nil {
			b.logger.Error("failed to save chat language",
				zap.Int64("chat_id", chat.ID),
				zap.String("language", code),
				zap.Error(err),
			)
			return c.Respond()
		}

		b.logger.Info("chat language changed",
			zap.Int64("chat_id", chat.ID),
			zap.String("language", code),
		)
		c.Set(langContextKey, string(lang))
		if err := c.Respond(); err != nil {
			b.logger.Warn("failed to acknowledge callback", zap.Error(err))
		}
		return c.Send(i18n.T(lang, "bot.languageSaved", nil), mainMenuMarkup(lang))
	}
}
