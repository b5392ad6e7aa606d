package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/balaios/fast-zero-madr/internal/config"
	"github.com/balaios/fast-zero-madr/internal/db"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/repository"
)

// SeedNovelist is one catalog entry in the seed source.
type SeedNovelist struct {
	Name  string `json:"name"`
	Books []struct {
		Title string `json:"title"`
		Year  int    `json:"year"`
	} `json:"books"`
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	if cfg.SeedSource == "" {
		log.Fatal("SEED_SOURCE must point to a JSON file or URL")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Novelist{}, &model.Book{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	log.Printf("Loading catalog from: %s", cfg.SeedSource)
	entries, err := loadCatalog(cfg.SeedSource)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded %d novelists from source", len(entries))

	novelistRepo := repository.NewNovelistRepository(gormDB)
	bookRepo := repository.NewBookRepository(gormDB)

	ctx := context.Background()
	created, skipped := 0, 0

	for _, entry := range entries {
		novelist, err := novelistRepo.FindByName(ctx, entry.Name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			novelist = &model.Novelist{Name: entry.Name}
			if err := novelistRepo.Create(ctx, novelist); err != nil {
				log.Fatalf("Failed to create novelist %q: %v", entry.Name, err)
			}
			created++
		} else if err != nil {
			log.Fatalf("Failed to look up novelist %q: %v", entry.Name, err)
		} else {
			skipped++
		}

		for _, b := range entry.Books {
			if _, err := bookRepo.FindByTitle(ctx, b.Title); err == nil {
				skipped++
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Fatalf("Failed to look up book %q: %v", b.Title, err)
			}

			book := &model.Book{Title: b.Title, Year: b.Year, NovelistID: novelist.ID}
			if err := bookRepo.Create(ctx, book); err != nil {
				log.Fatalf("Failed to create book %q: %v", b.Title, err)
			}
			created++
		}
	}

	log.Printf("Seed complete: %d records created, %d already present", created, skipped)
}

// loadCatalog reads the seed JSON from a URL or a local file.
func loadCatalog(source string) ([]SeedNovelist, error) {
	var raw []byte

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
		}
		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read catalog body: %w", err)
		}
	} else {
		var err error
		raw, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
	}

	var entries []SeedNovelist
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return entries, nil
}
