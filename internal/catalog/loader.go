// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

// =============================================================================
// CATALOG
// =============================================================================

// Source identifies where a loaded catalog came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Catalog is a loaded game list with its console summary.
type Catalog struct {
	Games    []Game
	Consoles []ConsoleInfo
	Source   Source

	// Err records why the source could not be used when Source is
	// SourceFallback. It is informational; the Games list is always
	// usable.
	Err error
}

// GamesForConsole returns the games for one console tab, or all games
// for the empty selector.
func (c Catalog) GamesForConsole(console string) []Game {
	if console == "" {
		return c.Games
	}
	var out []Game
	for _, g := range c.Games {
		if g.Console == console {
			out = append(out, g)
		}
	}
	return out
}

// =============================================================================
// LOADER
// =============================================================================

// Loader reads the catalog from a local path or a remote URL. Path wins
// when both are set. A zero Loader always yields the fallback list.
type Loader struct {
	// Path is a local games.json file.
	Path string

	// URL is a remote games.json endpoint. Used only when Path is empty.
	URL string

	// Client is the HTTP client for URL loads (default: 10s timeout).
	Client *http.Client
}

// Load reads and parses the catalog, falling back to the built-in list
// on any failure. It never returns an unusable catalog.
func (l *Loader) Load(ctx context.Context) Catalog {
	raw, source, err := l.read(ctx)
	if err != nil {
		return fallbackCatalog(err)
	}

	games, consoles, err := Parse(raw)
	if err != nil {
		return fallbackCatalog(err)
	}

	return Catalog{Games: games, Consoles: consoles, Source: source}
}

func (l *Loader) read(ctx context.Context) ([]byte, Source, error) {
	if l.Path != "" {
		data, err := os.ReadFile(l.Path)
		if err != nil {
			return nil, SourceFile, fmt.Errorf("read catalog file: %w", err)
		}
		return data, SourceFile, nil
	}

	if l.URL == "" {
		return nil, SourceFallback, errors.New("no catalog source configured")
	}

	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, SourceRemote, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, SourceRemote, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, SourceRemote, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil, SourceRemote, fmt.Errorf("catalog response is not JSON (Content-Type: %s)", contentType)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, SourceRemote, fmt.Errorf("read catalog response: %w", err)
	}
	return data, SourceRemote, nil
}

// Parse decodes a catalog document: a JSON object mapping console name
// to an array of games. Entries without a name are skipped; missing
// genre, rating and image get defaults. Consoles are sorted by name so
// output is deterministic.
func Parse(data []byte) ([]Game, []ConsoleInfo, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil, errors.New("empty catalog document")
	}
	if strings.HasPrefix(trimmed, "<") {
		return nil, nil, errors.New("catalog document appears to be HTML, not JSON")
	}

	var byConsole map[string][]Game
	if err := json.Unmarshal(data, &byConsole); err != nil {
		return nil, nil, fmt.Errorf("parse catalog JSON: %w", err)
	}
	if len(byConsole) == 0 {
		return nil, nil, errors.New("catalog document has no consoles")
	}

	consoleNames := make([]string, 0, len(byConsole))
	for name := range byConsole {
		consoleNames = append(consoleNames, name)
	}
	sort.Strings(consoleNames)

	var games []Game
	var consoles []ConsoleInfo
	id := 1

	for _, consoleName := range consoleNames {
		count := 0
		for _, g := range byConsole[consoleName] {
			if g.Name == "" {
				continue
			}
			g.ID = id
			g.Title = g.Name
			g.Console = consoleName
			g.FileType = FileType(consoleName)
			if g.Genre == "" {
				g.Genre = "Ação"
			}
			if g.Rating == 0 {
				g.Rating = 4.5
			}
			if g.Image == "" {
				g.Image = placeholderImage(g.Name)
			}
			games = append(games, g)
			count++
			id++
		}
		consoles = append(consoles, ConsoleInfo{
			Name:  consoleName,
			Count: count,
			Icon:  Icon(consoleName),
		})
	}

	return games, consoles, nil
}

func fallbackCatalog(reason error) Catalog {
	games, consoles := Fallback()
	return Catalog{Games: games, Consoles: consoles, Source: SourceFallback, Err: reason}
}
