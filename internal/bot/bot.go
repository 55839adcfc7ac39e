// Package bot is the Telegram surface: the same recipe and deal cards
// as the web views, rendered as text, with a per-chat language
// preference persisted in Postgres.
package bot

import (
	"time"

	"what2cook/internal/dataload"
	"what2cook/internal/repository"
	"what2cook/internal/translate"
	"what2cook/internal/weekplan"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Bot manages all Telegram interactions
type Bot struct {
	bot        *tele.Bot
	loader     *dataload.Loader
	resolver   *weekplan.Resolver
	translator *translate.Service
	prefs      repository.ChatPrefs
	logger     *zap.Logger

	now func() time.Time
}

// Buttons shared across handlers.
var (
	menu           = &tele.ReplyMarkup{}
	btnThisWeek    = menu.Data("", "this_week")
	btnNextWeek    = menu.Data("", "next_week")
	btnDeals       = menu.Data("", "deals")
	btnLanguage    = menu.Data("", "language")
	btnLangKorean  = menu.Data("한국어", "lang_ko")
	btnLangEnglish = menu.Data("English", "lang_en")
	btnLangDutch   = menu.Data("Nederlands", "lang_nl")
)

// New creates a bot instance connected to the Telegram API.
func New(
	token string,
	loader *dataload.Loader,
	resolver *weekplan.Resolver,
	translator *translate.Service,
	prefs repository.ChatPrefs,
	logger *zap.Logger,
) (*Bot, error) {
	tb, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	b := &Bot{
		bot:        tb,
		loader:     loader,
		resolver:   resolver,
		translator: translator,
		prefs:      prefs,
		logger:     logger,
		now:        time.Now,
	}
	b.registerHandlers()
	return b, nil
}

func (b *Bot) registerHandlers() {
	b.bot.Use(b.languageMiddleware())

	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle("/language", b.handleChooseLanguage)

	b.bot.Handle(&btnThisWeek, b.handleThisWeek)
	b.bot.Handle(&btnNextWeek, b.handleNextWeek)
	b.bot.Handle(&btnDeals, b.handleDeals)
	b.bot.Handle(&btnLanguage, b.handleChooseLanguage)
	b.bot.Handle(&btnLangKorean, b.setLanguageHandler("ko"))
	b.bot.Handle(&btnLangEnglish, b.setLanguageHandler("en"))
	b.bot.Handle(&btnLangDutch, b.setLanguageHandler("nl"))
}

// Start begins polling. Blocks until Stop is called.
func (b *Bot) Start() {
	b.logger.Info("bot started")
	b.bot.Start()
}

// Stop ends polling.
func (b *Bot) Stop() {
	b.bot.Stop()
	b.logger.Info("bot stopped")
}
