package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const (
	VariantPublic    = "public"
	VariantThumbnail = "thumbnail"
)

// CloudflareImages uploads posters to Cloudflare Images, which derives the
// thumbnail variant served on listing pages.
type CloudflareImages struct {
	accountID   string
	apiToken    string
	baseURL     string
	client      *http.Client
	accountHash string
}

type cloudflareImageResponse struct {
	Success bool `json:"success"`
	Result  struct {
		ID       string   `json:"id"`
		Variants []string `json:"variants"`
	} `json:"result"`
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func NewCloudflareImages(accountID, token, accountHash string) *CloudflareImages {
	return &CloudflareImages{
		accountID:   accountID,
		apiToken:    token,
		baseURL:     "https://api.cloudflare.com/client/v4",
		client:      &http.Client{Timeout: 2 * time.Minute},
		accountHash: accountHash,
	}
}

func (c *CloudflareImages) Upload(reader io.Reader, filename string) (string, error) {
	formBuf := &bytes.Buffer{}
	writer := multipart.NewWriter(formBuf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, reader); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close form writer: %w", err)
	}

	url := fmt.Sprintf("%s/accounts/%s/images/v1", c.baseURL, c.accountID)
	req, err := http.NewRequest(http.MethodPost, url, formBuf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudflare images upload failed: %w", err)
	}
	defer resp.Body.Close()

	var result cloudflareImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode cloudflare response: %w", err)
	}
	if !result.Success {
		if len(result.Errors) > 0 {
			return "", fmt.Errorf("cloudflare images error %d: %s", result.Errors[0].Code, result.Errors[0].Message)
		}
		return "", fmt.Errorf("cloudflare images upload failed")
	}

	return result.Result.ID, nil
}

func (c *CloudflareImages) Delete(imageID string) error {
	url := fmt.Sprintf("%s/accounts/%s/images/v1/%s", c.baseURL, c.accountID, imageID)
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cloudflare images delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cloudflare images delete returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *CloudflareImages) PublicURL(imageID string) string {
	return fmt.Sprintf("https://imagedelivery.net/%s/%s/%s", c.accountHash, imageID, VariantPublic)
}

func (c *CloudflareImages) ThumbnailURL(imageID string) string {
	return fmt.Sprintf("https://imagedelivery.net/%s/%s/%s", c.accountHash, imageID, VariantThumbnail)
}
