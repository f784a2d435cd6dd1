package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"time"

	"github.com/yoapunto/yoapunto-api/models"
	"github.com/yoapunto/yoapunto-api/storage"
)

// ThumbnailService stores club and game thumbnails through the configured
// uploader and persists the resulting public URL on the entity.
type ThumbnailService interface {
	UploadClubThumbnail(ctx context.Context, clubID int, file io.Reader, contentType string) (*models.Club, error)
	UploadGameThumbnail(ctx context.Context, gameID int, file io.Reader, contentType string) (*models.Game, error)
}

type thumbnailService struct {
	uploader    storage.FileUploader
	clubService ClubService
	gameService GameService
}

func NewThumbnailService(uploader storage.FileUploader, clubService ClubService, gameService GameService) ThumbnailService {
	return &thumbnailService{
		uploader:    uploader,
		clubService: clubService,
		gameService: gameService,
	}
}

func (s *thumbnailService) UploadClubThumbnail(ctx context.Context, clubID int, file io.Reader, contentType string) (*models.Club, error) {
	// Existence check first so a missing club does not leave an orphan
	// object behind.
	if _, err := s.clubService.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	key := objectKey("clubs", clubID, contentType)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload club thumbnail: %w", err)
	}

	return s.clubService.SetThumbnailURL(ctx, clubID, result.Location)
}

func (s *thumbnailService) UploadGameThumbnail(ctx context.Context, gameID int, file io.Reader, contentType string) (*models.Game, error) {
	if _, err := s.gameService.GetByID(ctx, gameID); err != nil {
		return nil, err
	}

	key := objectKey("games", gameID, contentType)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload game thumbnail: %w", err)
	}

	return s.gameService.SetThumbnail(ctx, gameID, result.Location)
}

func objectKey(prefix string, id int, contentType string) string {
	ext := ".bin"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return fmt.Sprintf("%s/%d/thumbnail-%d%s", prefix, id, time.Now().Unix(), ext)
}
