// Package bot implements the Telegram transport: update dispatch, selection flow, and document delivery.
package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coursex-bot/coursex/course"
	"github.com/coursex-bot/coursex/icon"
	"github.com/coursex-bot/coursex/key"
	"github.com/coursex-bot/coursex/log"
	"github.com/coursex-bot/coursex/preference"
	"github.com/coursex-bot/coursex/report"
	"github.com/coursex-bot/coursex/session"
	"github.com/coursex-bot/coursex/util"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/viper"
)

const qualityCallbackPrefix = "quality:"

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil:
		b.handleSelection(update.Message)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		b.handleStart(msg)
	case "batches":
		b.handleBatches(msg)
	case "quality":
		b.handleQuality(msg)
	case "cancel":
		b.handleCancel(msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Use /batches to list available batches or /quality to set your video quality.")
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID, strings.Join([]string{
		icon.Get(icon.Catalog) + " Course Extractor Bot",
		"",
		"I extract course content and generate text files with video and PDF links.",
		"",
		"/batches - list available batches, then reply with a number (or a name) to extract one",
		"/quality - set your preferred video quality",
		"/cancel - forget the current selection",
	}, "\n"))
}

func (b *Bot) handleBatches(msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID, icon.Get(icon.Progress)+" Fetching available batches...")

	summaries, err := b.client.Courses()
	if err != nil {
		log.Errorf("fetch catalog: %v", err)
		b.reply(msg.Chat.ID, icon.Get(icon.Fail)+" No batches available or API error.")
		return
	}
	if len(summaries) == 0 {
		b.reply(msg.Chat.ID, icon.Get(icon.Fail)+" No batches available right now.")
		return
	}

	b.sessions.Get(msg.From.ID).LoadCatalog(summaries)

	width := uint(viper.GetInt(key.BotListTruncateAt))
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Found %s:\n\n", icon.Get(icon.Catalog), util.Quantify(len(summaries), "batch", "batches"))
	for i, summary := range summaries {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, truncate.StringWithTail(summary.Title, width, "…"))
	}
	sb.WriteString("\nReply with the number of the batch you want to extract.")

	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) handleQuality(msg *tgbotapi.Message) {
	current := preference.Get(msg.From.ID)

	var buttons []tgbotapi.InlineKeyboardButton
	for _, label := range preference.Canonical() {
		text := label
		if label == current {
			text = "• " + label
		}
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(text, qualityCallbackPrefix+label))
	}

	// Two rows: concrete qualities, then the "all" sentinel.
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(buttons[:len(buttons)-1]...),
		tgbotapi.NewInlineKeyboardRow(buttons[len(buttons)-1]),
	)

	prompt := tgbotapi.NewMessage(msg.Chat.ID,
		fmt.Sprintf("%s Current quality preference: %s\nPick a new one:", icon.Get(icon.Quality), current))
	prompt.ReplyMarkup = markup

	if _, err := b.api.Send(prompt); err != nil {
		log.Errorf("send quality keyboard: %v", err)
	}
}

func (b *Bot) handleCancel(msg *tgbotapi.Message) {
	b.sessions.Reset(msg.From.ID)
	b.reply(msg.Chat.ID, icon.Get(icon.Success)+" Selection cleared. Your quality preference is untouched.")
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	data := cq.Data
	if !strings.HasPrefix(data, qualityCallbackPrefix) {
		return
	}
	label := strings.TrimPrefix(data, qualityCallbackPrefix)

	if err := b.answerCallback(cq, label); err != nil {
		log.Errorf("quality callback: %v", err)
	}
}

func (b *Bot) answerCallback(cq *tgbotapi.CallbackQuery, label string) error {
	if err := preference.Set(cq.From.ID, label); err != nil {
		if _, reqErr := b.api.Request(tgbotapi.NewCallback(cq.ID, "Invalid quality")); reqErr != nil {
			return reqErr
		}
		return err
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "Quality set to "+label)); err != nil {
		return err
	}

	if cq.Message != nil {
		b.reply(cq.Message.Chat.ID,
			fmt.Sprintf("%s Quality preference saved: %s", icon.Get(icon.Success), label))
	}
	return nil
}

// handleSelection resolves a free-text reply against the user's held catalog.
// Digits select by position; anything else is tried as a title fragment.
func (b *Bot) handleSelection(msg *tgbotapi.Message) {
	input := strings.TrimSpace(msg.Text)
	if input == "" {
		return
	}
	sess := b.sessions.Get(msg.From.ID)

	var (
		chosen *course.CourseSummary
		err    error
	)
	if n, convErr := strconv.Atoi(input); convErr == nil {
		chosen, err = sess.SelectByPosition(n)
	} else {
		chosen, err = sess.SelectByTitle(input)
	}

	switch {
	case errors.Is(err, session.ErrNoCatalogLoaded):
		b.reply(msg.Chat.ID, "Use /batches to see available batches first.")
	case errors.Is(err, session.ErrOutOfRange):
		b.reply(msg.Chat.ID, icon.Get(icon.Fail)+" Invalid batch number. Please select from the list.")
	case errors.Is(err, session.ErrNoMatch):
		b.reply(msg.Chat.ID, icon.Get(icon.Fail)+" No batch matches that name. Reply with a number from the list.")
	case err != nil:
		log.Errorf("select course: %v", err)
		b.reply(msg.Chat.ID, icon.Get(icon.Fail)+" An error occurred. Please try again.")
	default:
		b.extract(msg.Chat.ID, msg.From.ID, sess, chosen)
	}
}

// extract fetches the chosen course, renders the report, and delivers it as a document.
// The session resets only after a successful delivery.
func (b *Bot) extract(chatID, userID int64, sess *session.Session, chosen *course.CourseSummary) {
	b.reply(chatID, fmt.Sprintf("%s Extracting data for: %s", icon.Get(icon.Progress), chosen.Title))

	detail, err := b.client.Detail(chosen.ID)
	if err != nil {
		log.Errorf("fetch course detail: %v", err)
		b.reply(chatID, icon.Get(icon.Fail)+" Failed to fetch course data.")
		return
	}

	pref := preference.Get(userID)
	doc := report.NewDocument(chosen.Title, detail.Topics, pref, time.Now())
	if doc.Empty() {
		b.reply(chatID, icon.Get(icon.Fail)+" No data found for this batch.")
		return
	}

	upload := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  doc.Filename,
		Bytes: doc.Content,
	})
	upload.Caption = icon.Get(icon.Document) + " " + doc.Caption

	if _, err := b.api.Send(upload); err != nil {
		log.Errorf("deliver report: %v", err)
		b.reply(chatID, icon.Get(icon.Fail)+" Error delivering the report. Please try again.")
		return
	}

	if err := sess.CompleteExtraction(); err != nil {
		log.Errorf("complete extraction: %v", err)
	}
}
