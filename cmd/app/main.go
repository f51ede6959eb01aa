package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"socialnet/configs"
	"socialnet/internal/auth"
	"socialnet/internal/follow"
	"socialnet/internal/interaction"
	"socialnet/internal/message"
	"socialnet/internal/migrate"
	"socialnet/internal/notification"
	"socialnet/internal/post"
	"socialnet/internal/privacy"
	"socialnet/internal/shared/db"
	"socialnet/internal/shared/httpx"
	"socialnet/internal/user"
	"socialnet/pkg/kafka"
	"socialnet/pkg/middleware"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	svcName := os.Getenv("OTEL_SERVICE_NAME")
	if svcName == "" {
		svcName = "socialnet"
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(svcName),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	cfg := configs.LoadConfig()

	store := db.Open(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping: %v", err)
	}

	if cfg.AutoMigrate {
		if err := migrate.AutoMigrateAll(store); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	var notifProducer, postProducer *kafka.Producer
	if cfg.KafkaBrokers != "" {
		notifProducer = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer notifProducer.Close()
		postProducer = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaPostTopic)
		defer postProducer.Close()
	}

	userRepo := user.NewCachedRepository(user.NewRepository(store), rdb)

	followRepo := follow.NewRepository(store)
	policy := privacy.NewPolicy(followRepo)

	notifRepo := notification.NewRepository(store)
	notifSvc := notification.NewService(notifRepo, notifProducer)

	userSvc := user.NewService(userRepo, policy)
	authSvc := auth.NewService(userRepo)
	followSvc := follow.NewService(followRepo, userRepo, notifSvc)

	postRepo := post.NewRepository(store)
	postSvc := post.NewService(postRepo, userRepo, policy, postProducer)

	interactionRepo := interaction.NewRepository(store)
	interactionSvc := interaction.NewService(interactionRepo, postRepo, userRepo, policy, notifSvc)

	messageRepo := message.NewRepository(store)
	messageSvc := message.NewService(messageRepo, userRepo)

	ah := auth.NewHandler(authSvc)
	uh := user.NewHandler(userSvc)
	fh := follow.NewHandler(followSvc)
	ph := post.NewHandler(postSvc)
	ih := interaction.NewHandler(interactionSvc)
	nh := notification.NewHandler(notifSvc)
	mh := message.NewHandler(messageSvc)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("POST /auth/register", httpx.Wrap(ah.Register))
	mux.Handle("POST /auth/login", httpx.Wrap(ah.Login))

	// Read paths accept anonymous viewers; the privacy policy decides what
	// they see.
	view := func(pattern string, fn httpx.HandlerFunc) {
		mux.Handle(pattern, httpx.OptionalAuth(httpx.Wrap(fn)))
	}
	view("GET /users/{id}", uh.GetProfile)
	view("GET /users/{id}/posts", ph.ByAuthor)
	view("GET /posts/public", ph.ListPublic)
	view("GET /posts/hashtag/{tag}", ph.ByHashtag)
	view("GET /posts/{id}", ph.Get)
	view("GET /posts/likes/{id}", ih.Likes)

	protect := func(pattern string, fn httpx.HandlerFunc) {
		mux.Handle(pattern, httpx.AuthMiddleware(httpx.Wrap(fn)))
	}
	protect("PUT /users/update", uh.Update)
	protect("GET /users/search", uh.Search)
	protect("PUT /users/follow/{id}", fh.Toggle)
	protect("GET /users/follow-data", fh.FollowData)

	protect("POST /posts", ph.Create)
	protect("PUT /posts/like/{id}", ih.ToggleLike)
	protect("PUT /posts/bookmark/{id}", ih.ToggleBookmark)
	protect("POST /posts/comment/{id}", ih.AddComment)
	protect("GET /posts/bookmarks", ih.Bookmarks)

	protect("GET /notifications", nh.List)
	protect("PUT /notifications/read", nh.MarkAllRead)

	protect("POST /messages", mh.Send)
	protect("GET /messages/{id}", mh.Conversation)
	protect("PUT /messages/read/{id}", mh.MarkRead)

	stack := middleware.Chain(
		middleware.CORS,
		middleware.Logging,
		middleware.Metrics,
	)

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(stack(mux), "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		log.Printf("socialnet listening on %s", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Print("shutting down...")

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
