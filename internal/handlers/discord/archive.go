package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/KirkDiggler/jetlag/internal/models"
	"github.com/bwmarrin/discordgo"
)

// maxArchivedFileBytes matches the largest upload Discord accepts without boosts
const maxArchivedFileBytes = 25 << 20

var errFileTooLarge = errors.New("attachment is too large to archive")

// downloadAttachment fetches the content behind a CDN link before it expires
func downloadAttachment(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download attachment: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArchivedFileBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	if len(data) > maxArchivedFileBytes {
		return nil, errFileTooLarge
	}

	return data, nil
}

// archiveAttachments describes the attachments and downloads what it can.
// Files that fail to download keep their metadata and URL only.
func archiveAttachments(ctx context.Context, client *http.Client, attachments []*discordgo.MessageAttachment) ([]*models.ChatAttachment, map[string][]byte) {
	if len(attachments) == 0 {
		return nil, nil
	}
	if client == nil {
		client = http.DefaultClient
	}

	archived := make([]*models.ChatAttachment, 0, len(attachments))
	files := make(map[string][]byte, len(attachments))
	for _, a := range attachments {
		if a == nil {
			continue
		}

		archived = append(archived, &models.ChatAttachment{
			ID:          a.ID,
			Filename:    a.Filename,
			ContentType: a.ContentType,
			URL:         a.URL,
		})

		data, err := downloadAttachment(ctx, client, a.URL)
		if err != nil {
			log.Printf("Failed to archive attachment %s: %v", a.ID, err)
			continue
		}
		files[a.ID] = data
	}

	return archived, files
}
