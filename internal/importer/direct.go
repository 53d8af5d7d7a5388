// Package importer contains the two import executors behind the flow
// dispatcher: DirectAPI uploads one item definition straight to the item
// store, CICD drives multiple imports from a deployment descriptor.
package importer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"fabcli/internal/config"
	"fabcli/internal/hierarchy"
	"fabcli/internal/pathutil"
)

// Part files that are never part of an item definition.
var defaultExcludes = []string{
	"**/.DS_Store",
	"**/.git/**",
}

// definitionPart is one file of an item definition, payload inlined as
// base64 the way the item store's updateDefinition endpoint expects.
type definitionPart struct {
	Path        string `json:"path"`
	Payload     string `json:"payload"`
	PayloadType string `json:"payloadType"`
}

type definition struct {
	Format string           `json:"format,omitempty"`
	Parts  []definitionPart `json:"parts"`
}

type updateDefinitionRequest struct {
	Definition definition `json:"definition"`
}

// DirectAPI imports a single item's definition from a local input
// directory via the remote item store API.
type DirectAPI struct {
	cfg    config.Config
	client *http.Client
	log    *slog.Logger

	// maxRetries bounds the backoff loop for transient store responses.
	maxRetries uint64
}

func NewDirectAPI(cfg config.Config, log *slog.Logger) *DirectAPI {
	return &DirectAPI{
		cfg:        cfg,
		client:     &http.Client{Timeout: 2 * time.Minute},
		log:        log,
		maxRetries: 4,
	}
}

// ImportSingleItem collects the definition part files under the single
// input directory and uploads them to the target item. Transient store
// responses (429, 5xx) are retried with exponential backoff; any other
// failure is permanent.
func (d *DirectAPI) ImportSingleItem(ctx context.Context, target hierarchy.SingleItem, input []string, format string) error {
	if len(input) != 1 {
		return fmt.Errorf("direct import expects exactly one input path, got %d", len(input))
	}
	inputDir, err := filepath.Abs(input[0])
	if err != nil {
		return fmt.Errorf("resolve input %q: %w", input[0], err)
	}

	files, err := pathutil.CollectParts(inputDir, defaultExcludes)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("input %q contains no definition part files", inputDir)
	}

	req := updateDefinitionRequest{Definition: definition{Format: format}}
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(inputDir, filepath.FromSlash(rel)))
		if err != nil {
			return fmt.Errorf("read part %q: %w", rel, err)
		}
		req.Definition.Parts = append(req.Definition.Parts, definitionPart{
			Path:        rel,
			Payload:     base64.StdEncoding.EncodeToString(data),
			PayloadType: "InlineBase64",
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode definition: %w", err)
	}

	d.log.Info("importing item definition",
		"target", target.Path(), "parts", len(files), "input", inputDir)

	if err := d.post(ctx, d.updateDefinitionURL(target), body); err != nil {
		return fmt.Errorf("import %q: %w", target.Path(), err)
	}

	d.log.Info("import complete", "target", target.Path())
	return nil
}

func (d *DirectAPI) updateDefinitionURL(target hierarchy.SingleItem) string {
	return fmt.Sprintf("%s/workspaces/%s/items/%s/updateDefinition",
		d.cfg.APIEndpoint,
		url.PathEscape(target.WorkspaceName()),
		url.PathEscape(target.Name()+"."+target.ItemType()))
}

func (d *DirectAPI) post(ctx context.Context, endpoint string, body []byte) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+d.cfg.Token)

		resp, err := d.client.Do(req)
		if err != nil {
			return fmt.Errorf("item store unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}

		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		storeErr := fmt.Errorf("item store returned %d %s: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(string(detail)))

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			d.log.Warn("transient store response, retrying", "status", resp.StatusCode)
			return storeErr
		}
		return backoff.Permanent(storeErr)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), d.maxRetries), ctx)
	return backoff.Retry(operation, policy)
}
