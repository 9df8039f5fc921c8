package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/recipe-genie/backend/config"
)

const (
	imageModel = "dall-e-3"
	imageSize  = "1024x1024"
)

// ImageGenerationRequest represents a request to the images API
type ImageGenerationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

// ImageGenerationResponse represents the response from the images API
type ImageGenerationResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		URL           string `json:"url,omitempty"`
		RevisedPrompt string `json:"revised_prompt,omitempty"`
	} `json:"data"`
}

// objectPutter is the slice of the S3 client the publisher needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService generates an image for a prompt and publishes the bytes to
// durable storage. Generation asks for exactly one square image; the URL
// the remote API returns is ephemeral, so the bytes are re-hosted under a
// fresh object name before being handed to the caller.
type ImageService struct {
	apiKey string
	apiURL string
	s3     objectPutter
	bucket string
	client *http.Client
}

// NewImageService creates a new ImageService instance
func NewImageService(cfg *config.Config, s3Config *config.S3Config) (*ImageService, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	}

	return &ImageService{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIImagesURL,
		s3:     s3Config.Client,
		bucket: s3Config.BucketName,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// GenerateImage requests one image for the prompt and returns its
// ephemeral URL. No retry; a failed call is terminal for the pipeline.
func (s *ImageService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	reqBody := ImageGenerationRequest{
		Model:  imageModel,
		Prompt: prompt,
		N:      1,
		Size:   imageSize,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageGeneration, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ImageService] API request failed with status %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("%w: API request failed with status %d", ErrImageGeneration, resp.StatusCode)
	}

	var result ImageGenerationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", ErrImageGeneration
	}

	return result.Data[0].URL, nil
}

// PublishImage downloads the image bytes from the ephemeral URL and
// uploads them to S3 under a fresh random object name, returning the
// public URL. The upload only happens after a successful download, so a
// failed request never leaves an orphaned object behind.
func (s *ImageService) PublishImage(ctx context.Context, imageURL string) (string, error) {
	imageData, err := s.downloadImage(ctx, imageURL)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("images/%s.png", uuid.New().String())
	return s.uploadToS3(ctx, imageData, fileName)
}

// downloadImage fetches the generated image bytes.
func (s *ImageService) downloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDownload, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrImageDownload, resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDownload, err)
	}

	return imageData, nil
}

// uploadToS3 persists the image bytes and returns the public URL. Public
// readability comes from the bucket policy applied at startup.
func (s *ImageService) uploadToS3(ctx context.Context, imageData []byte, fileName string) (string, error) {
	_, err := s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageUpload, err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, fileName)
	log.Printf("[ImageService] Successfully uploaded image to S3: %s", publicURL)

	return publicURL, nil
}
