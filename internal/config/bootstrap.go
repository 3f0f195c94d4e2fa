package config

import (
	"context"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/handler"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/middleware"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/repository"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/route"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/usecase"
	"github.com/evandrarf/wordbook-be/internal/pkg/llm"
	"github.com/evandrarf/wordbook-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Ctx       context.Context
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB // nil selects in-memory storage
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {
	ctx := config.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	var storage repository.KeyValueRepository
	if config.DB != nil {
		storage = repository.NewKeyValueRepository(config.DB)
	} else {
		storage = repository.NewMemoryKeyValueRepository()
	}

	favorites := usecase.NewFavoritesManager(ctx, storage, config.Log)

	vocabularyUsecase := usecase.NewVocabularyUsecase(usecase.VocabularyConfig{
		Sets:      VocabularySets(config.Config, config.Log),
		Columns:   VocabularyColumns(config.Config),
		Favorites: favorites,
		Log:       config.Log,
	})

	// sets load in the background; until then they list as not loaded
	go func() {
		if err := vocabularyUsecase.LoadAll(ctx); err != nil {
			config.Log.WithError(err).Warn("vocabulary loading interrupted")
		}
	}()

	quizConfig := usecase.QuizConfig{
		Vocabulary:     vocabularyUsecase,
		PromptTemplate: config.Config.GetString("llm.prompt_template"),
		SessionTTL:     config.Config.GetDuration("quiz.session_ttl"),
		AcknowledgeKey: config.Config.GetString("quiz.acknowledge_key"),
		Log:            config.Log,
	}
	apiKey := config.Config.GetString("llm.api_key")
	if apiKey != "" && !config.Config.GetBool("llm.disable_ai_hint") {
		quizConfig.Hints = llm.NewClient(apiKey, config.Config.GetString("llm.model"), config.Config.GetString("llm.base_url"))
	} else {
		config.Log.Info("AI hints disabled, using fallback hints")
	}
	quizUsecase := usecase.NewQuizUsecase(quizConfig)

	vocabularyHandler := handler.NewVocabularyHandler(config.Validator, config.Log, vocabularyUsecase)
	quizHandler := handler.NewQuizHandler(config.Validator, config.Log, quizUsecase)

	route.Setup(&route.RouteConfig{
		Api:               config.Api,
		Middleware:        mid,
		VocabularyHandler: vocabularyHandler,
		QuizHandler:       quizHandler,
	})
}

func VocabularyColumns(config *viper.Viper) entity.WordColumns {
	return entity.WordColumns{
		ID:         config.GetString("vocabulary.columns.id"),
		Term:       config.GetString("vocabulary.columns.term"),
		Definition: config.GetString("vocabulary.columns.definition"),
	}
}

// VocabularySets reads vocabulary.sets, dropping entries without a name or
// path and repeated names.
func VocabularySets(config *viper.Viper, log *logrus.Logger) []usecase.SetSource {
	var raw []usecase.SetSource
	if err := config.UnmarshalKey("vocabulary.sets", &raw); err != nil {
		log.WithError(err).Error("invalid vocabulary.sets")
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	sets := make([]usecase.SetSource, 0, len(raw))
	for _, s := range raw {
		if s.Name == "" || s.Path == "" {
			log.WithField("set", s.Name).Warn("vocabulary set without name or path ignored")
			continue
		}
		if _, dup := seen[s.Name]; dup {
			log.WithField("set", s.Name).Warn("duplicate vocabulary set ignored")
			continue
		}
		seen[s.Name] = struct{}{}
		sets = append(sets, s)
	}
	return sets
}
