package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	// Nossos pacotes de infraestrutura e utilitários
	"estocando/config"
	"estocando/internal/pkg/cache"
	"estocando/internal/pkg/database"
	"estocando/internal/pkg/logger"
	"estocando/internal/pkg/pdf"
	"estocando/internal/pkg/requestlog"
	"estocando/internal/pkg/token"
	"estocando/internal/pkg/validation"

	// Camadas para Injeção de Dependências
	"estocando/internal/api/item" // Handlers
	"estocando/internal/api/report"
	"estocando/internal/api/router" // Roteador central
	"estocando/internal/api/user"
	"estocando/internal/repository/itemrepo" // Acesso a Dados
	"estocando/internal/repository/logrepo"
	"estocando/internal/repository/stockrepo"
	"estocando/internal/repository/userrepo"
	"estocando/internal/service/itemservice" // Lógica de Negócio
	"estocando/internal/service/reportservice"
	"estocando/internal/service/stockservice"
	"estocando/internal/service/userservice"
)

// requestLogWriteTimeout limita cada gravação do log de requisições.
const requestLogWriteTimeout = 3 * time.Second

// @title Estocando API
// @version 1.0
// @description API de controle de estoque: itens, movimentações IN/OUT, usuários e relatórios.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Informe "Bearer " seguido do token JWT.
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env, as variáveis podem vir do ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Inicialização
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Falha ao carregar configurações: %v", err)
	}
	appLog := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat == "pretty")
	appLog.Info("Inicializando serviço Estocando...", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). A API segue funcionando sem ele: o cache volta ao DB
	// e o rate limiter deixa as requisições passarem.
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		appLog.Warn("Redis indisponível na inicialização.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		appLog.Info("Conexão Redis estabelecida.", nil)
	}
	defer cacheClient.Close()

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	validator := validation.New()
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry, cfg.TokenIssuer)

	// A. Repositórios
	itemRepo := itemrepo.NewItemRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, appLog)
	stockRepo := stockrepo.NewStockRepository(db, cfg.DBTimeout, itemRepo, appLog)
	logRepo := logrepo.NewLogRepository(db, cfg.DBTimeout, appLog)
	appLog.Debug("Repositórios inicializados.", nil)

	// B. Serviços
	stockSvc := stockservice.NewService(stockRepo, validator, appLog)
	itemSvc := itemservice.NewService(itemRepo, stockSvc, validator, appLog)
	userSvc := userservice.NewService(userRepo, tokenSvc, validator, appLog)
	reportSvc := reportservice.NewService(itemRepo, stockRepo, logRepo, pdf.NewStockLevelsGenerator(), validator, appLog)
	appLog.Debug("Serviços inicializados.", nil)

	// C. Log de requisições (assíncrono)
	logWriter := requestlog.NewWriter(logRepo, cfg.RequestLogBuffer, requestLogWriteTimeout, appLog)

	// 4. Configuração do Roteador/Servidor
	r := router.NewRouter(router.Dependencies{
		Config:        cfg,
		Logger:        appLog,
		Cache:         cacheClient,
		TokenSvc:      tokenSvc,
		Recorder:      logWriter,
		ItemHandler:   item.NewHandler(itemSvc, stockSvc, appLog),
		UserHandler:   user.NewHandler(userSvc, appLog),
		ReportHandler: report.NewHandler(reportSvc, appLog),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 40 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// O writer só para depois do Shutdown, para gravar as últimas requisições.
	writerCtx, stopWriter := context.WithCancel(context.Background())
	defer stopWriter()

	g.Go(func() error {
		appLog.Info("Servidor Estocando ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return logWriter.Run(writerCtx)
	})

	g.Go(func() error {
		<-gctx.Done()
		appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		defer stopWriter()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLog.Error("Servidor encerrado com erro.", err)
		os.Exit(1)
	}
	appLog.Info("Servidor encerrado com sucesso.", nil)
}
