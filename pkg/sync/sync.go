package sync

import (
	"context"
	"fmt"

	"github.com/evepupil/notion-friends-sync/pkg/config"
	"github.com/evepupil/notion-friends-sync/pkg/links"
	"github.com/evepupil/notion-friends-sync/pkg/logger"
	"github.com/evepupil/notion-friends-sync/pkg/notion"
	"github.com/evepupil/notion-friends-sync/pkg/store"
)

// Query shape on the submissions database: only approved submissions,
// newest first.
const (
	statusProperty    = "status"
	approvedValue     = "approved"
	submittedProperty = "submission time"
)

// Syncer runs the full sync: query the database, map the results and
// overwrite the output file
type Syncer struct {
	// DryRun makes Start log the document instead of writing it
	DryRun bool

	cfg    config.Config
	client *notion.Client
	store  *store.FileStore
	log    *logger.Logger
}

// New creates a new Syncer
func New(cfg config.Config, client *notion.Client, st *store.FileStore, log *logger.Logger) *Syncer {
	return &Syncer{
		cfg:    cfg,
		client: client,
		store:  st,
		log:    log,
	}
}

// Start runs the sync once. Errors from the query or the write come
// back unretried; classification lives with the caller.
func (s *Syncer) Start(ctx context.Context) error {
	s.log.Infof("Fetching approved links from Notion database %s", s.cfg.DatabaseID)

	result, err := s.client.QueryDatabase(ctx, s.cfg.DatabaseID, notion.Query{
		Filter: &notion.Filter{
			Property: statusProperty,
			Select:   &notion.SelectFilter{Equals: approvedValue},
		},
		Sorts: []notion.Sort{
			{Property: submittedProperty, Direction: notion.SortDescending},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch links: %w", err)
	}

	if result.HasMore {
		// Single-page assumption: the database is expected to stay
		// well under Notion's page size. Warn instead of fetching more.
		s.log.Warn("Query response is paginated; only the first page will be synced")
	}

	mapper := links.NewMapper(s.log)
	entries := mapper.MapPages(result.Results)
	doc := links.NewDocument(entries)

	if s.DryRun {
		data, err := store.Encode(doc)
		if err != nil {
			return err
		}
		s.log.Infof("Dry run, skipping write to %s. Document:\n%s", s.store.Path(), data)
	} else {
		if err := s.store.Write(doc); err != nil {
			return fmt.Errorf("failed to write links file: %w", err)
		}
	}

	s.log.Infof("Synced %d approved links to %s", len(entries), s.store.Path())
	for _, entry := range entries {
		s.log.Infof("  - %s: %s", entry.Name, entry.URL)
	}

	return nil
}
