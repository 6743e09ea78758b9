package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveAttachments(t *testing.T) {
	photo := []byte("\x89PNG\r\n\x1a\nproof")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/proof.png":
			_, _ = w.Write(photo)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	archived, files := archiveAttachments(context.Background(), server.Client(), []*discordgo.MessageAttachment{
		{ID: "a1", Filename: "proof.png", ContentType: "image/png", URL: server.URL + "/proof.png"},
		{ID: "a2", Filename: "gone.png", URL: server.URL + "/expired.png"},
	})

	require.Len(t, archived, 2)
	assert.Equal(t, "a1", archived[0].ID)
	assert.Equal(t, "proof.png", archived[0].Filename)
	assert.Equal(t, server.URL+"/proof.png", archived[0].URL)
	assert.Equal(t, "a2", archived[1].ID)

	assert.Equal(t, photo, files["a1"])
	_, ok := files["a2"]
	assert.False(t, ok)
}

func TestArchiveAttachmentsNone(t *testing.T) {
	archived, files := archiveAttachments(context.Background(), nil, nil)
	assert.Nil(t, archived)
	assert.Nil(t, files)
}

func TestDownloadAttachmentTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", maxArchivedFileBytes+1)))
	}))
	defer server.Close()

	_, err := downloadAttachment(context.Background(), server.Client(), server.URL)
	assert.ErrorIs(t, err, errFileTooLarge)
}
