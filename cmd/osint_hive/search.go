package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/A-r-j-u001/OSINT-Hive/internal/config"
	"github.com/A-r-j-u001/OSINT-Hive/internal/filter"
	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
	"github.com/A-r-j-u001/OSINT-Hive/internal/search"
	"github.com/A-r-j-u001/OSINT-Hive/internal/store"
)

var searchFlags struct {
	mode      string
	keyword   string
	lang      string
	status    string
	company   string
	exp       string
	followers int
	contrib   int
	repos     int
	stars     int
	limit     int
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one query against the local datasets",
	Long:  "Run a single multi-criteria profile query against the configured datasets and print the JSON response to stdout.",
	RunE:  runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchFlags.mode, "mode", "osint", "Dataset to search: github|linkedin|internal|osint")
	f.StringVarP(&searchFlags.keyword, "query", "q", "", "Keyword to match")
	f.StringVar(&searchFlags.lang, "lang", "", "Skill or language substring")
	f.StringVar(&searchFlags.status, "status", "", "Status class: student|corporate|freelancer")
	f.StringVar(&searchFlags.company, "company", "", "Company substring")
	f.StringVar(&searchFlags.exp, "exp", "", "Experience band: 0-2|3-5|5-10|10+")
	f.IntVar(&searchFlags.followers, "followers", 0, "Minimum followers")
	f.IntVar(&searchFlags.contrib, "contrib", 0, "Minimum contributions")
	f.IntVar(&searchFlags.repos, "repos", 0, "Minimum repositories")
	f.IntVar(&searchFlags.stars, "stars", 0, "Minimum stars")
	f.IntVar(&searchFlags.limit, "limit", search.DefaultPageSize, "Result page size")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	source, ok := profile.ParseSourceKind(searchFlags.mode)
	if !ok {
		return fmt.Errorf("unknown dataset mode %q", searchFlags.mode)
	}

	rules := filter.DefaultRuleset()
	if cfg.RulesPath != "" {
		if rules, err = filter.LoadRuleset(cfg.RulesPath); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var profileStore store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		profileStore = pg
	} else {
		profileStore = store.NewMockStore()
	}
	defer profileStore.Close()

	engine := search.NewEngine(search.Config{
		GitHubPath:   cfg.GitHubDataset,
		LinkedInPath: cfg.LinkedInDataset,
		Store:        profileStore,
		Filter:       filter.NewEngine(rules, nil),
		PageSize:     searchFlags.limit,
	})

	spec := filter.Spec{
		Keyword:          searchFlags.keyword,
		Skill:            searchFlags.lang,
		Company:          searchFlags.company,
		ExperienceBand:   searchFlags.exp,
		MinFollowers:     searchFlags.followers,
		MinContributions: searchFlags.contrib,
		MinRepositories:  searchFlags.repos,
		MinStars:         searchFlags.stars,
	}
	if status, ok := filter.ParseStatusClass(searchFlags.status); ok {
		spec.Status = status
	}

	result, err := engine.Search(ctx, source, spec)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Results []search.ProjectedResult `json:"results"`
		Total   int                      `json:"total"`
		Source  string                   `json:"source"`
	}{search.ProjectAll(result.Profiles), result.Total, result.Source})
}
