package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/jobforge/jobforge/internal/ai"
	"github.com/jobforge/jobforge/internal/chunker"
	"github.com/jobforge/jobforge/internal/config"
	"github.com/jobforge/jobforge/internal/embedcache"
	"github.com/jobforge/jobforge/internal/handler"
	"github.com/jobforge/jobforge/internal/index"
	"github.com/jobforge/jobforge/internal/job"
	"github.com/jobforge/jobforge/internal/middleware"
	"github.com/jobforge/jobforge/internal/model"
	"github.com/jobforge/jobforge/internal/schedule"
	"github.com/jobforge/jobforge/internal/service"
	"github.com/jobforge/jobforge/internal/source"
	"github.com/jobforge/jobforge/internal/store"
)

type app struct {
	cfg        *config.Config
	store      store.Store
	index      *index.VectorIndex
	ingest     *service.IngestService
	retriever  *service.Retriever
	generation *service.GenerationService
}

func (a *app) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	st, err := store.New(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	provider, err := ai.NewProvider(cfg.AI.Provider, cfg.AI.Data)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("init ai provider: %w", err)
	}
	embedder := ai.NewEmbedder(provider, cfg.AI.EmbedModel)
	embedder = embedcache.WrapLruCacheToEmbedder(embedder,
		cfg.EmbedCache.Size, time.Duration(cfg.EmbedCache.TTLMinutes)*time.Minute)

	idx := index.New(embedder, st, cfg.Store.Collection)
	if err := idx.Initialize(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("init index: %w", err)
	}

	src, err := source.New(ctx, cfg.Source)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("init source: %w", err)
	}
	builder := chunker.NewBuilder(cfg.Chunk.TargetSize, cfg.Chunk.Overlap)
	retriever := service.NewRetriever(idx)
	return &app{
		cfg:        cfg,
		store:      st,
		index:      idx,
		ingest:     service.NewIngestService(src, builder, idx),
		retriever:  retriever,
		generation: service.NewGenerationService(ai.NewGenerator(provider, cfg.AI.Model), retriever),
	}, nil
}

func loadApp(ctx context.Context, configPath string) (*app, error) {
	if configPath == "" {
		return nil, fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Init(
		cfg.LogConfig.File,
		cfg.LogConfig.Level,
		int(cfg.LogConfig.FileCount),
		int(cfg.LogConfig.FileSize),
		int(cfg.LogConfig.KeepDays),
		cfg.LogConfig.Console,
	)
	logutil.GetLogger(ctx).Info("config loaded", zap.String("config", configPath))
	return buildApp(ctx, cfg)
}

func main() {
	var configPath string
	var genReq model.GenerationRequest
	var resumeFile string
	var artifact string
	var searchLimit int

	rootCmd := &cobra.Command{
		Use:   "jobforge",
		Short: "job application assistant backend",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.json")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return runServer(ctx, a)
		},
	}

	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "index documents from the configured source",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			summary, err := a.ingest.Ingest(ctx)
			if err != nil {
				return err
			}
			printSummary(summary)
			return nil
		},
	}

	reindexCmd := &cobra.Command{
		Use:   "reindex",
		Short: "drop the collection and rebuild it from the source",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			summary, err := a.ingest.Reindex(ctx)
			if err != nil {
				return err
			}
			printSummary(summary)
			return nil
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "query the vector index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			results, err := a.index.Search(ctx, args[0], searchLimit)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("no results")
				return nil
			}
			for _, res := range results {
				if res.Distance != nil {
					fmt.Printf("[%s] distance=%.4f\n%s\n\n", res.ID, *res.Distance, res.Text)
					continue
				}
				fmt.Printf("[%s]\n%s\n\n", res.ID, res.Text)
			}
			return nil
		},
	}
	searchCmd.Flags().IntVar(&searchLimit, "limit", 5, "max results")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate application artifacts for a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if genReq.JobDescription == "" {
				return fmt.Errorf("--job-description is required")
			}
			if resumeFile != "" {
				data, err := os.ReadFile(resumeFile)
				if err != nil {
					return fmt.Errorf("read resume: %w", err)
				}
				genReq.ResumeContent = string(data)
			}
			a, err := loadApp(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			if artifact != "" {
				text, err := a.generation.Generate(ctx, model.ArtifactType(artifact), genReq)
				if err != nil {
					return err
				}
				fmt.Println(text)
				return nil
			}
			result, err := a.generation.GenerateAll(ctx, genReq)
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}
	generateCmd.Flags().StringVar(&genReq.JobDescription, "job-description", "", "job description text")
	generateCmd.Flags().StringVar(&genReq.CompanyName, "company", "", "company name")
	generateCmd.Flags().StringVar(&genReq.RoleTitle, "role", "", "role title")
	generateCmd.Flags().StringVar(&genReq.CandidateName, "name", "", "candidate name")
	generateCmd.Flags().StringVar(&resumeFile, "resume-file", "", "path to resume text for ats analysis")
	generateCmd.Flags().StringVar(&artifact, "artifact", "", "generate a single artifact (resume_bullets, cover_letter, ats_analysis, linkedin_message)")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "show index status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			count, err := a.index.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("collection: %s\nchunks: %d\n", a.index.Collection(), count)
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "drop and recreate the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.index.Reset(ctx); err != nil {
				return err
			}
			fmt.Printf("collection %s reset\n", a.index.Collection())
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, ingestCmd, reindexCmd, searchCmd, generateCmd, statusCmd, resetCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logutil.GetLogger(context.Background()).Fatal("command failed", zap.Error(err))
	}
}

func runServer(ctx context.Context, a *app) error {
	cfg := a.cfg
	logutil.GetLogger(ctx).Info("starting server",
		zap.Int("port", cfg.Port),
		zap.String("store", cfg.Store.Type),
		zap.String("collection", cfg.Store.Collection),
		zap.String("source", cfg.Source.Type),
	)

	deps := handler.RouterDeps{
		Ingest:   handler.NewIngestHandler(a.ingest),
		Index:    handler.NewIndexHandler(a.index),
		Generate: handler.NewGenerateHandler(a.generation),
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.CORS(cfg.CORSOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	scheduler := schedule.NewCronScheduler()
	if cfg.ReindexSpec != "" {
		if err := scheduler.AddJob(job.NewReindexJob(a.ingest), cfg.ReindexSpec); err != nil {
			return fmt.Errorf("schedule reindex: %w", err)
		}
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()
	logutil.GetLogger(ctx).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}

func printSummary(summary *model.IngestSummary) {
	fmt.Printf("files seen: %d\ndocs indexed: %d\nchunks stored: %d\n",
		summary.FilesSeen, summary.DocsIndexed, summary.ChunksStored)
	for _, name := range summary.Skipped {
		fmt.Printf("skipped: %s\n", name)
	}
}

func printResult(result *model.GenerationResult) {
	sections := []struct {
		title string
		text  string
	}{
		{"RESUME BULLETS", result.ResumeBullets},
		{"COVER LETTER", result.CoverLetter},
		{"ATS ANALYSIS", result.ATSAnalysis},
		{"LINKEDIN MESSAGE", result.LinkedInMessage},
	}
	for _, section := range sections {
		fmt.Printf("===== %s =====\n%s\n\n", section.title, section.text)
	}
}
