package ai_fx

import (
	"os"

	"festiva/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideContentGenerator,
	provideEmbeddingClient,
)

func provideContentGenerator() (utils.ContentGeneratorInterface, error) {
	return utils.NewGeminiContentGenerator(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient(os.Getenv("OPENAI_API_KEY"))
}
