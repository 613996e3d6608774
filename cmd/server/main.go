// Command server runs the SED journal-routing service: a Kafka consumer for
// the document-exchange topics, a statistics outbox drainer and an
// operational HTTP endpoint, sharing one process lifecycle.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"journalforing/internal/eux"
	"journalforing/internal/gjenny"
	"journalforing/internal/journalforing"
	jfmetrics "journalforing/internal/journalforing/metrics"
	"journalforing/internal/journalpost"
	"journalforing/internal/krav"
	"journalforing/internal/oppgave"
	"journalforing/internal/pending"
	pendingmetrics "journalforing/internal/pending/metrics"
	"journalforing/internal/person"
	"journalforing/internal/platform/blob"
	"journalforing/internal/platform/config"
	"journalforing/internal/platform/httpclient"
	"journalforing/internal/platform/httpserver"
	"journalforing/internal/platform/kafka/consumer"
	"journalforing/internal/platform/kafka/producer"
	"journalforing/internal/platform/logger"
	platformredis "journalforing/internal/platform/redis"
	"journalforing/internal/platform/token"
	"journalforing/internal/routing"
	"journalforing/internal/sak"
	"journalforing/internal/statistikk"
	"journalforing/internal/tema"
	transporthttp "journalforing/internal/transport/http"
	transportkafka "journalforing/internal/transport/kafka"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens := token.NewCachedProvider(&token.ClientCredentialsSource{
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
		TokenURL:     cfg.OAuth.TokenURL,
		ClientID:     cfg.OAuth.ClientID,
		ClientSecret: cfg.OAuth.ClientSecret,
		Scope:        cfg.OAuth.Scope,
	}, 30*time.Second)
	httpClient := &http.Client{Timeout: 30 * time.Second}

	// Person cache and registry.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis setup failed", "error", err)
		os.Exit(1)
	}
	var personCache person.Cache
	if redisClient != nil {
		defer redisClient.Close()
		personCache = person.NewRedisCache(redisClient.Client, cfg.Redis.PersonTTL)
	}
	personer := person.NewService(
		person.NewHTTPRegistryClient(httpclient.New("person", cfg.Endpoints.Person, httpClient, tokens)),
		personCache, log)

	// Statistics outbox database.
	db, err := sql.Open("pgx", cfg.Postgres.URL)
	if err != nil {
		log.Error("postgres setup failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Blob container for deferred journalposts and the Gjenny mirror.
	blobStore, err := blob.New(cfg.Blob.ConnectionString, cfg.Blob.Container, log)
	if err != nil {
		log.Error("blob setup failed", "error", err)
		os.Exit(1)
	}
	if err := blob.EnsureContainer(ctx, blobStore); err != nil {
		log.Error("blob container setup failed", "error", err)
		os.Exit(1)
	}

	// Kafka producers and topics.
	if err := producer.EnsureTopics(ctx, cfg.Kafka.Brokers,
		cfg.Kafka.OppgaveTopic, cfg.Kafka.KravTopic, cfg.Kafka.StatistikkTopic); err != nil {
		log.Error("kafka topic setup failed", "error", err)
		os.Exit(1)
	}
	prod, err := producer.New(cfg.Kafka.Brokers)
	if err != nil {
		log.Error("kafka producer setup failed", "error", err)
		os.Exit(1)
	}
	defer prod.Close()

	// Collaborator clients.
	arkivKlient := journalpost.NewHTTPKlient(cfg.Endpoints.Journalpost, httpClient, tokens)
	arkiv := journalpost.NewService(arkivKlient, log)
	saker := sak.NewHTTPRegistryClient(httpclient.New("sak", cfg.Endpoints.Sak, httpClient, tokens))
	dokumenter := eux.NewClient(httpclient.New("eux", cfg.Endpoints.Eux, httpClient, tokens))
	gjennyOppslag := gjenny.NewOppslag(
		gjenny.NewHTTPClient(httpclient.New("gjenny", cfg.Endpoints.Gjenny, httpClient, tokens)),
		gjenny.NewCache(blobStore))

	ruter := routing.NewRouter(
		routing.NewHTTPArbeidsfordelingClient(httpclient.New("arbeidsfordeling", cfg.Endpoints.Arbeidsfordeling, httpClient, tokens)),
		tema.NewRegelBasertBehandlingstema(), log)

	oppgaver := oppgave.NewPublisher(prod.ForTopic(cfg.Kafka.OppgaveTopic), log)
	kravService := krav.NewService(prod.ForTopic(cfg.Kafka.KravTopic), cfg.AlderKravAktivert, log)

	statistikkStore := statistikk.NewPostgresStore(db)
	if err := statistikkStore.EnsureSchema(ctx); err != nil {
		log.Error("statistikk schema setup failed", "error", err)
		os.Exit(1)
	}
	statistikkWorker := statistikk.NewWorker(statistikkStore, prod.ForTopic(cfg.Kafka.StatistikkTopic), log, 10*time.Second)

	pendingService := pending.NewService(
		pending.NewBlobStore(blobStore), arkiv, oppgaver, log, pendingmetrics.New())

	orchestrator := journalforing.NewService(
		arkiv, ruter, gjennyOppslag, oppgaver, kravService, pendingService,
		statistikkStore, log, jfmetrics.New())

	// Inbound consumer.
	handler := transportkafka.NewSedHendelseHandler(
		cfg.Kafka.SedMottattTopic, cfg.Kafka.SedSendtTopic,
		dokumenter, personer, saker, orchestrator, log)
	cons, err := consumer.New(consumer.Config{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.GroupID,
		Topics:  []string{cfg.Kafka.SedMottattTopic, cfg.Kafka.SedSendtTopic},
	}, handler, log)
	if err != nil {
		log.Error("kafka consumer setup failed", "error", err)
		os.Exit(1)
	}

	// Ops endpoint.
	checks := map[string]transporthttp.HealthCheck{
		"postgres": db.PingContext,
	}
	if redisClient != nil {
		checks["redis"] = redisClient.Health
	}
	srv := httpserver.New(cfg.OpsAddr, transporthttp.NewRouter(log, checks))

	log.Info("starting journalforing",
		"opsAddr", cfg.OpsAddr,
		"topics", []string{cfg.Kafka.SedMottattTopic, cfg.Kafka.SedSendtTopic},
		"environment", cfg.Environment)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cons.Close()
		return cons.Run(gctx)
	})
	g.Go(func() error {
		if err := statistikkWorker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("service stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("service stopped")
}
