package cmd

import (
	"os"

	"github.com/AzielCF/az-medqa/core/config"
	domainAsk "github.com/AzielCF/az-medqa/domains/ask"
	domainHealth "github.com/AzielCF/az-medqa/domains/health"
	"github.com/AzielCF/az-medqa/pkg/answercache"
	"github.com/AzielCF/az-medqa/providers"
	"github.com/AzielCF/az-medqa/usecase"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagPort  string
	flagDebug bool

	// Usecase
	askUsecase    domainAsk.IAskUsecase
	healthUsecase domainHealth.IHealthUsecase
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "az-medqa",
	Short: "Medical exam-prep Q&A gateway over http",
	Long: `HTTP gateway that answers general medical exam-prep questions through
a generative-text fallback chain (Gemini primary, Hugging Face fallback)
with a shared in-memory answer cache.`,
}

func init() {
	// Load .env first so LoadConfig sees it
	_ = godotenv.Load()

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(
		&flagPort,
		"port", "p",
		"",
		"change port number with --port <number> | example: --port=8080",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&flagDebug,
		"debug", "d",
		false,
		"displaying debug log with --debug <true/false> | example: --debug=true",
	)

	cobra.OnInitialize(initEnvConfig, initApp)
}

// initEnvConfig loads configuration from environment variables, with flag
// overrides on top.
func initEnvConfig() {
	viper.AutomaticEnv()

	if _, err := config.LoadConfig(); err != nil {
		logrus.Fatalln("Failed to load configuration: ", err.Error())
	}

	if envPort := viper.GetString("app_port"); envPort != "" {
		config.Global.App.Port = envPort
	}
	if viper.GetBool("app_debug") {
		config.Global.App.Debug = true
	}

	if flagPort != "" {
		config.Global.App.Port = flagPort
	}
	if flagDebug {
		config.Global.App.Debug = true
	}
}

func initApp() {
	if config.Global.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cache := answercache.New(config.Global.Cache.Capacity)

	gemini := providers.NewGeminiProvider(config.Global.AI.GeminiAPIKey, config.Global.AI.GeminiModel)
	huggingface := providers.NewHuggingFaceProvider(config.Global.AI.HFToken, config.Global.AI.HFModel)

	if config.Global.AI.GeminiAPIKey == "" {
		// Deliberately not fatal: requests answer with 500 until the key
		// is provided.
		logrus.Warn("[APP] GEMINI_API_KEY is not set; /ai will reply 500 until it is configured")
	}
	if config.Global.AI.HFToken == "" {
		logrus.Warn("[APP] HF_TOKEN is not set; fallback provider disabled")
	}

	askUsecase = usecase.NewAskService(cache, gemini, huggingface)
	healthUsecase = usecase.NewHealthService(cache)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}
}
