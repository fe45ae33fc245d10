package app

import (
	"context"
	"log"
	"os"
	"time"

	"vacancy-match/internal/config"
	"vacancy-match/internal/database"
	"vacancy-match/internal/database/migration"
	dbpostgres "vacancy-match/internal/database/postgres"
	"vacancy-match/internal/database/seeder"
	"vacancy-match/internal/domain/scoring"
	"vacancy-match/internal/infrastructure/cache"
	"vacancy-match/internal/repository"
	"vacancy-match/internal/usecase"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis

	Candidates    repository.CandidateRepository
	Postings      repository.PostingRepository
	PostingSkills repository.PostingSkillRepository

	Recommender *usecase.Recommender
	Stats       *usecase.StatsAggregator
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := seeder.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	candidates := repository.NewPostgresCandidateRepository(db)
	postings := repository.NewPostgresPostingRepository(db)
	postingSkills := repository.NewPostgresPostingSkillRepository(db, logger)

	opts := usecase.RecommenderOptions{
		Weights: scoring.Weights{
			Skill:      cfg.Scoring.WeightSkill,
			Salary:     cfg.Scoring.WeightSalary,
			Experience: cfg.Scoring.WeightExperience,
			Role:       cfg.Scoring.WeightRole,
			Text:       cfg.Scoring.WeightText,
		},
		RoleGraph:        scoring.DefaultRoleGraph(),
		ExperiencePolicy: scoring.DefaultExperiencePolicy(),
		PoolWindowDays:   cfg.Scoring.PoolWindowDays,
		PoolCap:          cfg.Scoring.PoolCap,
		DefaultLimit:     cfg.Scoring.DefaultLimit,
		MinScore:         cfg.Scoring.MinScore,
	}

	recommender := usecase.NewRecommender(candidates, postings, postingSkills, redisCache, opts, logger)

	return &Container{
		Config:        cfg,
		Logger:        logger,
		DB:            db,
		Cache:         redisCache,
		Candidates:    candidates,
		Postings:      postings,
		PostingSkills: postingSkills,
		Recommender:   recommender,
		Stats:         usecase.NewStatsAggregator(recommender),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
