package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	setDefaults(config)

	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "wordbook-be")

	config.SetDefault("api.listen", ":8080")
	config.SetDefault("api.prefork", false)
	config.SetDefault("api.cors.origins", "*")

	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")

	config.SetDefault("storage.driver", "memory")

	config.SetDefault("database.port", 5432)
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")
	config.SetDefault("database.max_open_conns", 5)
	config.SetDefault("database.max_idle_conns", 2)

	config.SetDefault("vocabulary.columns.id", "no")
	config.SetDefault("vocabulary.columns.term", "단어")
	config.SetDefault("vocabulary.columns.definition", "뜻")
	config.SetDefault("vocabulary.sets", []map[string]string{
		{"name": "1", "title": "1 세트", "path": "data/vocabulary.csv"},
		{"name": "2", "title": "2 세트", "path": "data/vocabulary2.csv"},
	})

	config.SetDefault("quiz.session_ttl", 30*time.Minute)
	config.SetDefault("quiz.acknowledge_key", "Enter")

	config.SetDefault("llm.model", "gpt-4o-mini")
	config.SetDefault("llm.disable_ai_hint", false)
}
