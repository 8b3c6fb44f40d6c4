package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/recipefinder/pkg/catalog"
	"github.com/korjavin/recipefinder/pkg/config"
	"github.com/korjavin/recipefinder/pkg/logger"
	"github.com/korjavin/recipefinder/pkg/match"
	"github.com/korjavin/recipefinder/pkg/messages"
	"github.com/korjavin/recipefinder/pkg/openai"
	"github.com/korjavin/recipefinder/pkg/pantry"
	"github.com/korjavin/recipefinder/pkg/state"
	"github.com/korjavin/recipefinder/pkg/storage"
	"github.com/korjavin/recipefinder/pkg/telegram"
)

// maxResults caps how many result cards a single search renders into chat.
const maxResults = 10

func main() {
	// Initialize logger
	log := logger.Global
	log.Info("Starting Recipe Finder bot...")

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Load the recipe catalog (read-only for the whole session)
	cat, err := catalog.Load(cfg.RecipesFile)
	if err != nil {
		log.Error("Failed to load recipe catalog: %v", err)
		os.Exit(1)
	}
	if cat.Len() == 0 {
		log.Error("Recipe catalog %s contains no usable recipes", cfg.RecipesFile)
		os.Exit(1)
	}

	// Initialize storage for pantry state
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Error("Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// Start BadgerDB garbage collection
	store.StartGCRoutine(10 * time.Minute)

	// Initialize services
	openaiClient := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)
	if openaiClient == nil {
		log.Info("No OPENAI_API_KEY set, ingredient parsing uses plain splitting")
	}
	pantryService := pantry.New(store)
	matcher := match.New(cfg.MatchThreshold)
	stateManager := state.New()

	// Initialize Telegram bot
	bot, err := telegram.New(cfg.BotToken)
	if err != nil {
		log.Error("Failed to initialize Telegram bot: %v", err)
		os.Exit(1)
	}

	// runSearch renders the current search results for a chat.
	runSearch := func(chatID int64) {
		terms, err := pantryService.ListTerms(chatID)
		if err != nil {
			log.Error("Failed to list pantry terms: %v", err)
			bot.SendMessage(chatID, messages.Error("read your pantry"))
			return
		}

		if len(terms) == 0 {
			bot.SendMessage(chatID, messages.EmptyPantry())
			return
		}

		results := matcher.Search(cat.Recipes(), terms)
		if len(results) == 0 {
			bot.SendMessage(chatID, messages.NoResults(terms))
			return
		}

		shown := results
		if len(shown) > maxResults {
			shown = shown[:maxResults]
		}

		bot.SendMessage(chatID, messages.ResultsHeader(len(results), terms))
		for _, result := range shown {
			keyboard := tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("📖 View Recipe", fmt.Sprintf("view:%d", result.Index)),
				),
			)
			bot.SendMessageWithKeyboard(chatID, messages.ResultCard(result), keyboard)
		}
	}

	// addIngredients parses a free-text message and adds the result to the
	// chat's pantry.
	addIngredients := func(chatID int64, text string) {
		parsed, err := openaiClient.ParseIngredients(text)
		if err != nil {
			log.Error("Failed to parse ingredients: %v", err)
			bot.SendMessage(chatID, messages.Error("understand those ingredients"))
			return
		}

		if len(parsed) == 0 {
			bot.SendMessage(chatID, "I couldn't find any ingredients in your message. Try a list like \"chicken, rice, garlic\".")
			return
		}

		added, err := pantryService.AddTerms(chatID, parsed)
		if err != nil {
			log.Error("Failed to add ingredients: %v", err)
			bot.SendMessage(chatID, messages.Error("update your pantry"))
			return
		}

		bot.SendMessage(chatID, messages.Added(added))
		runSearch(chatID)
	}

	// Setup command handlers
	commandHandlers := map[string]telegram.CommandHandler{
		"start": func(message *tgbotapi.Message) {
			bot.SendMessage(message.Chat.ID, messages.Welcome())
		},
		"add": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			args := strings.TrimSpace(message.CommandArguments())
			if args == "" {
				bot.SendMessage(chatID, "Usage: /add <ingredient>, e.g. /add chicken")
				return
			}
			addIngredients(chatID, args)
		},
		"remove": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			args := strings.TrimSpace(message.CommandArguments())
			if args == "" {
				bot.SendMessage(chatID, "Usage: /remove <ingredient>, e.g. /remove chicken")
				return
			}

			removed, err := pantryService.RemoveTerm(chatID, args)
			if err != nil {
				log.Error("Failed to remove ingredient: %v", err)
				bot.SendMessage(chatID, messages.Error("update your pantry"))
				return
			}
			if !removed {
				bot.SendMessage(chatID, fmt.Sprintf("%q wasn't in your pantry.", args))
				return
			}
			bot.SendMessage(chatID, fmt.Sprintf("🗑 Removed %s.", args))
			runSearch(chatID)
		},
		"pantry": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			terms, err := pantryService.ListTerms(chatID)
			if err != nil {
				log.Error("Failed to list pantry terms: %v", err)
				bot.SendMessage(chatID, messages.Error("read your pantry"))
				return
			}
			bot.SendMessage(chatID, messages.PantryContents(terms))
		},
		"clear": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			if err := pantryService.Clear(chatID); err != nil {
				log.Error("Failed to clear pantry: %v", err)
				bot.SendMessage(chatID, messages.Error("clear your pantry"))
				return
			}
			stateManager.SetSearching(chatID)
			bot.SendMessage(chatID, "🧹 Pantry cleared! Send me some ingredients to start a new search.")
		},
		"find": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			stateManager.SetSearching(chatID)
			runSearch(chatID)
		},
		"stats": func(message *tgbotapi.Message) {
			bot.SendMessage(message.Chat.ID, messages.Stats(cat.Stats(5)))
		},
	}

	// Setup callback handlers
	callbackHandlers := map[string]telegram.CallbackHandler{
		"view:": func(callback *tgbotapi.CallbackQuery) {
			chatID := callback.Message.Chat.ID

			index, err := strconv.Atoi(strings.TrimPrefix(callback.Data, "view:"))
			if err != nil || index < 0 || index >= cat.Len() {
				bot.AnswerCallbackQuery(callback.ID, "That recipe is no longer available.")
				return
			}

			recipe := cat.Recipes()[index]
			stateManager.SetViewing(chatID, index)
			bot.AnswerCallbackQuery(callback.ID, "Opening "+recipe.Name)

			backKeyboard := tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("← Back to Results", "back"),
				),
			)

			// The catalog only carries the document reference; resolve it
			// against the configured recipes directory here.
			docPath := filepath.Join(cfg.RecipesDir, filepath.Clean(recipe.Filename))
			if _, err := os.Stat(docPath); err != nil {
				log.Error("Recipe document missing: %s: %v", docPath, err)
				bot.SendMessageWithKeyboard(chatID, fmt.Sprintf("😢 The document for %q is missing.", recipe.Name), backKeyboard)
				return
			}

			if _, err := bot.SendDocumentWithKeyboard(chatID, docPath, "📖 "+recipe.Name, backKeyboard); err != nil {
				log.Error("Failed to send document %s: %v", docPath, err)
				bot.SendMessageWithKeyboard(chatID, messages.Error("send the recipe document"), backKeyboard)
			}
		},
		"back": func(callback *tgbotapi.CallbackQuery) {
			chatID := callback.Message.Chat.ID
			stateManager.SetSearching(chatID)
			bot.AnswerCallbackQuery(callback.ID, "Back to results")
			runSearch(chatID)
		},
	}

	// Setup default handler: any plain text message is treated as an
	// ingredient list, mirroring the search box of the original UI.
	defaultHandler := func(update tgbotapi.Update) {
		if update.Message == nil || update.Message.Text == "" || update.Message.IsCommand() {
			return
		}

		chatID := update.Message.Chat.ID
		if stateManager.GetView(chatID).Mode == state.ModeViewing {
			stateManager.SetSearching(chatID)
		}
		addIngredients(chatID, update.Message.Text)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutting down...")
		store.Close()
		os.Exit(0)
	}()

	// Start the bot
	log.Info("Bot is now running with %d recipes. Press CTRL-C to exit.", cat.Len())
	if err := bot.Start(commandHandlers, callbackHandlers, defaultHandler); err != nil {
		log.Error("Error running bot: %v", err)
		os.Exit(1)
	}
}
