package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"chaseplus/internal/entity"
	"chaseplus/internal/repo/persistent"
	"chaseplus/internal/usecase"
	"chaseplus/pkg/config"
	"chaseplus/pkg/database"
	"chaseplus/pkg/jwt"
	"chaseplus/pkg/logger"
)

var defaultCategories = []usecase.CategoryInput{
	{Name: "Programming", Description: "Software development courses"},
	{Name: "Data Science", Description: "Analytics, statistics and machine learning"},
	{Name: "Design", Description: "UI, UX and graphic design"},
	{Name: "Marketing", Description: "Digital marketing and growth"},
}

func main() {
	var categories string
	flag.StringVar(&categories, "categories", "", "Comma-separated category names to seed instead of the defaults")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	authUseCase := usecase.NewAuthUseCase(persistent.NewAdminRepository(db), jwt.NewService(cfg.JWTSecret), log)
	categoryUseCase := usecase.NewCategoryUseCase(persistent.NewCategoryRepository(db), log)

	ctx := context.Background()
	admin, created, err := authUseCase.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
	if err != nil {
		log.Error("Failed to seed admin %s: %v", cfg.AdminEmail, err)
		panic(err)
	}
	if created {
		log.Info("Created admin: %s", admin.Email)
	} else {
		log.Info("Admin %s already exists, skipping", admin.Email)
	}

	ctx = entity.WithPrincipal(ctx, entity.Principal{AdminID: admin.ID, Email: admin.Email})
	for _, input := range categoryInputs(categories) {
		category, err := categoryUseCase.Create(ctx, input)
		if errors.Is(err, entity.ErrConflict) {
			log.Info("Category %s already exists, skipping", input.Name)
			continue
		}
		if err != nil {
			log.Error("Failed to create category %s: %v", input.Name, err)
			continue
		}
		log.Info("Created category: %s", category.Name)
	}

	log.Info("Database seeded successfully!")
}

func categoryInputs(names string) []usecase.CategoryInput {
	if strings.TrimSpace(names) == "" {
		return defaultCategories
	}
	var inputs []usecase.CategoryInput
	for _, name := range strings.Split(names, ",") {
		if name = strings.TrimSpace(name); name != "" {
			inputs = append(inputs, usecase.CategoryInput{Name: name})
		}
	}
	return inputs
}
