package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoapunto/yoapunto-api/storage"
)

type fakeUploader struct {
	uploadedKeys []string
}

func (u *fakeUploader) Upload(_ context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return nil, err
	}
	u.uploadedKeys = append(u.uploadedKeys, key)
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(context.Context, string) error { return nil }

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func TestThumbnailService_UploadClubThumbnail(t *testing.T) {
	clubRepo := newFakeClubRepo()
	gameRepo := newFakeGameRepo()
	clubSvc := NewClubService(clubRepo, nil)
	gameSvc := NewGameService(gameRepo, nil)
	uploader := &fakeUploader{}
	svc := NewThumbnailService(uploader, clubSvc, gameSvc)

	ctx := context.Background()
	club, err := clubSvc.Create(ctx, CreateClubInput{Nickname: "Acme", Creator: "alice"})
	require.NoError(t, err)

	updated, err := svc.UploadClubThumbnail(ctx, club.ID, strings.NewReader("fake-png-bytes"), "image/png")
	require.NoError(t, err)

	require.Len(t, uploader.uploadedKeys, 1)
	require.NotNil(t, updated.ThumbnailURL)
	assert.Contains(t, *updated.ThumbnailURL, "https://cdn.example.com/clubs/")
	require.NotNil(t, updated.UpdatedAt)
}

func TestThumbnailService_UploadMissingClub(t *testing.T) {
	clubSvc := NewClubService(newFakeClubRepo(), nil)
	gameSvc := NewGameService(newFakeGameRepo(), nil)
	uploader := &fakeUploader{}
	svc := NewThumbnailService(uploader, clubSvc, gameSvc)

	_, err := svc.UploadClubThumbnail(context.Background(), 999, strings.NewReader("x"), "image/png")
	assert.ErrorIs(t, err, ErrClubNotFound)
	assert.Empty(t, uploader.uploadedKeys, "nothing is uploaded for a missing club")
}
