// Package cli implements the one-shot commands: the same backend calls the
// TUI makes, printed to stdout for scripting.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/shapecli/internal/config"
	"github.com/studiowebux/shapecli/internal/history"
	"github.com/studiowebux/shapecli/internal/session"
	"github.com/studiowebux/shapecli/internal/tui"
	"github.com/studiowebux/shapecli/internal/types"
)

// RunOptions contains the flags shared by the one-shot commands.
type RunOptions struct {
	Tenant       string // tenant to establish a session for; empty = sole configured tenant
	OutputFormat string // json, yaml, text
}

// connect establishes a session for the requested tenant and returns the
// bound service along with the resolved tenant name.
func connect(ctx context.Context, opts RunOptions) (tui.Service, string, error) {
	backend, err := config.LoadBackend()
	if err != nil {
		return nil, "", err
	}

	tenant := opts.Tenant
	if tenant == "" {
		tenants, err := config.LoadTenants()
		if err != nil {
			return nil, "", err
		}
		switch len(tenants) {
		case 0:
			return nil, "", fmt.Errorf("no tenants configured, add one to %s or pass --tenant", config.TenantsFile)
		case 1:
			tenant = tenants[0].Name
		default:
			return nil, "", fmt.Errorf("several tenants configured, pass --tenant")
		}
	}

	sessions := session.NewManager(backend)
	if err := sessions.Load(); err != nil {
		return nil, "", fmt.Errorf("failed to load session: %w", err)
	}

	svc := tui.NewService(backend, sessions)
	if err := svc.EstablishSession(ctx, tenant); err != nil {
		return nil, "", err
	}
	return svc, tenant, nil
}

// Folders lists the tenant's folders.
func Folders(ctx context.Context, opts RunOptions) error {
	svc, _, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	folders, err := svc.ListFolders(ctx)
	if err != nil {
		return err
	}
	return printOutput(folders, opts.OutputFormat, func() string {
		var b strings.Builder
		for _, f := range folders {
			fmt.Fprintf(&b, "%d\t%s\n", f.ID, f.Name)
		}
		return b.String()
	})
}

// Models lists the models of the given folders.
func Models(ctx context.Context, opts RunOptions, folderIDs []int) error {
	if len(folderIDs) == 0 {
		return fmt.Errorf("no folder ids given, pass --folder")
	}

	svc, _, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	models, err := svc.ListModels(ctx, folderIDs)
	if err != nil {
		return err
	}
	return printOutput(models, opts.OutputFormat, func() string {
		return formatModels(models)
	})
}

// Search submits a query and prints the matching models. The query is
// recorded in the search history like a TUI search.
func Search(ctx context.Context, opts RunOptions, query string) error {
	svc, tenant, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	models, searchErr := svc.Search(ctx, query)

	if histMgr, err := history.NewManager(config.DatabasePath); err == nil {
		defer histMgr.Close()
		if err := histMgr.Record(tenant, query, len(models), searchErr); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record search history: %v\n", err)
		}
	}

	if searchErr != nil {
		return searchErr
	}
	return printOutput(models, opts.OutputFormat, func() string {
		return formatModels(models)
	})
}

// History prints past searches, fuzzy-filtered when term is non-empty.
func History(term string, limit int, format string) error {
	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		return err
	}
	defer mgr.Close()

	var records []types.SearchRecord
	if term == "" {
		records, err = mgr.Recent(limit)
	} else {
		records, err = mgr.Find(term, limit)
	}
	if err != nil {
		return err
	}

	return printOutput(records, format, func() string {
		var b strings.Builder
		for _, r := range records {
			line := fmt.Sprintf("%s\t%s\t%q\t%d results", r.Timestamp, r.Tenant, r.Query, r.Results)
			if r.Error != "" {
				line += "\terror: " + r.Error
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		return b.String()
	})
}

func formatModels(models []types.Model) string {
	var b strings.Builder
	for _, m := range models {
		fmt.Fprintf(&b, "%s\t%-10s\t%s\n", m.UUID, m.State.Display(), m.Name)
	}
	return b.String()
}

// printOutput renders v in the requested format. The text fallback comes
// from the caller since every command has its own column layout.
func printOutput(v any, format string, text func() string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Print(string(data))
	default:
		fmt.Print(text())
	}
	return nil
}
