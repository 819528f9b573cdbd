package main

import (
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/regimeproprio/app-chatbot-rpps/docs"
	"github.com/regimeproprio/app-chatbot-rpps/internal/api/routes"
	"github.com/regimeproprio/app-chatbot-rpps/internal/app"
	"github.com/regimeproprio/app-chatbot-rpps/internal/config"
	"github.com/regimeproprio/app-chatbot-rpps/internal/observability"
)

// @title           Chatbot RPPS API
// @version         1.0
// @description     API do assistente de dúvidas sobre Regimes Próprios de Previdência Social, com classificação de intents por padrões, sinônimos e similaridade

// @contact.name   Departamento dos Regimes de Previdência no Serviço Público

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	engine, err := app.NewEngine(cfg.Chatbot)
	if err != nil {
		log.Fatalf("Erro ao montar motor de intents: %v", err)
	}

	r, err := routes.SetupRouter(cfg, engine)
	if err != nil {
		log.Fatalf("Erro ao montar rotas: %v", err)
	}

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
