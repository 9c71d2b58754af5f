// Package search orchestrates queries over the local candidate datasets: it
// selects a source, parses it fresh per request, runs the filter engine over
// every record, and paginates the matches while keeping the full-scan total.
package search

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/A-r-j-u001/OSINT-Hive/internal/dataset"
	"github.com/A-r-j-u001/OSINT-Hive/internal/filter"
	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
	"github.com/A-r-j-u001/OSINT-Hive/internal/store"
)

// DefaultPageSize is the number of matches returned per query. The total
// match count is computed over the full scan regardless of this value.
const DefaultPageSize = 50

// osintSourceLabel names the merged fan-out mode in responses.
const osintSourceLabel = "multi-vector-osint"

// Engine answers search queries. Datasets are re-parsed from disk on every
// call; with datasets on the order of 10^4 records the repeated linear scan
// is an intentional simplification, and it keeps concurrent requests free of
// shared mutable state.
type Engine struct {
	githubPath   string
	linkedinPath string
	store        store.Store
	filter       filter.Engine
	pageSize     int
}

// Config holds engine construction parameters.
type Config struct {
	GitHubPath   string
	LinkedInPath string
	Store        store.Store
	Filter       filter.Engine
	// PageSize defaults to DefaultPageSize when zero.
	PageSize int
}

// NewEngine constructs a search engine.
func NewEngine(cfg Config) *Engine {
	size := cfg.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Engine{
		githubPath:   cfg.GitHubPath,
		linkedinPath: cfg.LinkedInPath,
		store:        cfg.Store,
		filter:       cfg.Filter,
		pageSize:     size,
	}
}

// Result is one query's outcome. Total counts every matching record in the
// scanned source, not just the returned page, so Total >= len(Profiles)
// always holds. Degraded is set when a backing source was missing or
// unreadable and the query fell back to empty results.
type Result struct {
	Profiles []profile.CanonicalProfile
	Total    int
	Source   string
	Degraded bool
}

// Search runs spec against the requested source. Matches preserve file order;
// no ranking is applied. A missing or unreadable dataset degrades to an empty
// result rather than failing the query; a structurally invalid dataset (bad
// header) is a real error.
func (e *Engine) Search(ctx context.Context, source profile.SourceKind, spec filter.Spec) (Result, error) {
	switch source {
	case profile.SourceGitHub:
		return e.searchGitHub(spec)
	case profile.SourceLinkedIn:
		return e.searchLinkedIn(ctx, spec)
	case profile.SourceInternal:
		return e.searchInternal(ctx, spec)
	case profile.SourceOSINT:
		return e.searchOSINT(ctx, spec)
	default:
		return Result{}, fmt.Errorf("unknown search source %q", source)
	}
}

func (e *Engine) searchGitHub(spec filter.Spec) (Result, error) {
	res := Result{Source: string(profile.SourceGitHub)}

	profiles, err := dataset.ReadGitHub(e.githubPath)
	if err != nil {
		if sourceUnavailable(err) {
			log.Printf("[search] github dataset unavailable: %v", err)
			res.Degraded = true
			return res, nil
		}
		return Result{}, err
	}

	for _, p := range profiles {
		if !e.filter.Matches(p, spec) {
			continue
		}
		res.Total++
		if len(res.Profiles) < e.pageSize {
			res.Profiles = append(res.Profiles, p)
		}
	}
	return res, nil
}

func (e *Engine) searchLinkedIn(ctx context.Context, spec filter.Spec) (Result, error) {
	res := Result{Source: string(profile.SourceLinkedIn)}

	err := dataset.ScanLinkedIn(e.linkedinPath, func(p profile.CanonicalProfile) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !e.filter.Matches(p, spec) {
			return nil
		}
		res.Total++
		if len(res.Profiles) < e.pageSize {
			res.Profiles = append(res.Profiles, p)
		}
		return nil
	})
	if err != nil {
		if sourceUnavailable(err) {
			log.Printf("[search] linkedin dataset unavailable: %v", err)
			return Result{Source: res.Source, Degraded: true}, nil
		}
		return Result{}, err
	}
	return res, nil
}

func (e *Engine) searchInternal(ctx context.Context, spec filter.Spec) (Result, error) {
	res := Result{Source: string(profile.SourceInternal)}

	profiles, err := e.store.List(ctx)
	if err != nil {
		log.Printf("[search] internal profile store unavailable: %v", err)
		res.Degraded = true
		return res, nil
	}

	for _, p := range profiles {
		if !e.filter.Matches(p, spec) {
			continue
		}
		res.Total++
		if len(res.Profiles) < e.pageSize {
			res.Profiles = append(res.Profiles, p)
		}
	}
	return res, nil
}

// searchOSINT fans the query out over every local source concurrently, then
// merges the pages in a stable github, linkedin, internal order and
// deduplicates by profile link.
func (e *Engine) searchOSINT(ctx context.Context, spec filter.Spec) (Result, error) {
	sources := []profile.SourceKind{
		profile.SourceGitHub,
		profile.SourceLinkedIn,
		profile.SourceInternal,
	}
	partial := make([]Result, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			sub, err := e.Search(gctx, src, spec)
			if err != nil {
				return err
			}
			partial[i] = sub
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	merged := Result{Source: osintSourceLabel}
	seen := make(map[string]struct{})
	for _, sub := range partial {
		merged.Total += sub.Total
		merged.Degraded = merged.Degraded || sub.Degraded
		for _, p := range sub.Profiles {
			key := Link(p)
			if _, dup := seen[key]; dup {
				merged.Total--
				continue
			}
			seen[key] = struct{}{}
			if len(merged.Profiles) < e.pageSize {
				merged.Profiles = append(merged.Profiles, p)
			}
		}
	}
	return merged, nil
}

// Lookup finds a single profile by identifier within a source. It returns
// nil (and no error) when the profile does not exist or the backing source
// is unavailable. The osint source tries every local source in order.
func (e *Engine) Lookup(ctx context.Context, source profile.SourceKind, id string) (*profile.CanonicalProfile, error) {
	switch source {
	case profile.SourceGitHub:
		profiles, err := dataset.ReadGitHub(e.githubPath)
		if err != nil {
			if sourceUnavailable(err) {
				return nil, nil
			}
			return nil, err
		}
		for _, p := range profiles {
			if strings.EqualFold(p.Identifier, id) {
				return &p, nil
			}
		}
		return nil, nil

	case profile.SourceLinkedIn:
		var found *profile.CanonicalProfile
		err := dataset.ScanLinkedIn(e.linkedinPath, func(p profile.CanonicalProfile) error {
			if strings.EqualFold(p.Identifier, id) {
				found = &p
				return dataset.ErrStop
			}
			return ctx.Err()
		})
		if err != nil && !sourceUnavailable(err) {
			return nil, err
		}
		return found, nil

	case profile.SourceInternal:
		p, err := e.store.GetByID(ctx, id)
		if err != nil {
			log.Printf("[search] internal profile store unavailable: %v", err)
			return nil, nil
		}
		return p, nil

	case profile.SourceOSINT:
		for _, src := range []profile.SourceKind{profile.SourceGitHub, profile.SourceLinkedIn, profile.SourceInternal} {
			p, err := e.Lookup(ctx, src, id)
			if err != nil || p != nil {
				return p, err
			}
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown search source %q", source)
	}
}

// sourceUnavailable distinguishes a missing or unreadable dataset, which
// degrades gracefully, from a structural parse problem, which should fail
// loudly.
func sourceUnavailable(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}
