package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/homeland-scout/pg-finder/internal/config"
	"github.com/homeland-scout/pg-finder/internal/database"
	"github.com/homeland-scout/pg-finder/internal/handler"
	"github.com/homeland-scout/pg-finder/internal/model"
	"github.com/homeland-scout/pg-finder/internal/queue"
	"github.com/homeland-scout/pg-finder/internal/repository"
	"github.com/homeland-scout/pg-finder/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	archive := archiveFor(cfg)
	listings := buildListingStore(archive)
	owners := repository.NewOwnerDirectory(model.SeedOwners(), listings)
	interactions := repository.NewInteractionLog(model.SeedInteractions())

	accounts, err := repository.NewAccountStore(seedAccounts(), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("seed accounts: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; search cache disabled, refresh tokens in memory")
	}
	tokens := repository.NewTokenStore(rdb)
	cache := repository.NewSearchCache(rdb, cfg.SearchCacheTTL)

	go func() {
		if err := queue.StartInterestConsumer(interactions); err != nil {
			log.Printf("interest consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, accounts, tokens))
	router.RegisterPublic(e,
		handler.NewPublicHandler(listings, cache),
		handler.NewInterestHandler(listings, interactions))
	router.RegisterAdmin(e, handler.NewAdminHandler(listings, cache, archive), cfg.JWTSecret)
	router.RegisterOwner(e, handler.NewOwnerHandler(owners, interactions), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// buildListingStore seeds the in-memory store, preferring archived
// listings when a database is configured and has rows.
func buildListingStore(arc *repository.Archive) *repository.ListingStore {
	seed := model.SeedListings()
	if arc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := arc.EnsureSchema(ctx); err != nil {
			log.Printf("archive: ensure schema failed: %v", err)
		} else if archived, err := arc.Load(ctx); err != nil {
			log.Printf("archive: load failed, using seed data: %v", err)
		} else if len(archived) > 0 {
			seed = archived
		} else {
			// First boot against an empty table: archive the seed.
			for i, l := range seed {
				if err := arc.Save(ctx, l, i); err != nil {
					log.Printf("archive: seed save failed: %v", err)
					break
				}
			}
		}
	}
	return repository.NewListingStore(seed)
}

// archiveFor opens the MySQL archive, or returns nil when no database
// is configured or it cannot be reached. The service runs fine
// without one; mutations then only live as long as the process.
func archiveFor(cfg config.Config) *repository.Archive {
	if !cfg.ArchiveEnabled() {
		return nil
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Printf("archive: database unavailable, running in-memory only: %v", err)
		return nil
	}
	return repository.NewArchive(db)
}

// seedAccounts is the fixed demo credential set: one admin console
// account and one portal account per seeded owner.
func seedAccounts() []repository.SeededAccount {
	accounts := []repository.SeededAccount{
		{Username: "admin", Password: "admin123", Role: repository.RoleAdmin},
	}
	for _, o := range model.SeedOwners() {
		accounts = append(accounts, repository.SeededAccount{
			Username: o.Username,
			Password: "demo123",
			Role:     repository.RoleOwner,
			OwnerID:  o.ID,
		})
	}
	return accounts
}
