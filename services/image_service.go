package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

const imgbbUploadURL = "https://api.imgbb.com/1/upload"

// ImageService pushes profile pictures to the imgbb hosting API and hands
// back the hosted URL.
type ImageService struct {
	apiKey string
	client *http.Client
}

func NewImageService(apiKey string) *ImageService {
	return &ImageService{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Upload sends the picture as a multipart POST and returns the hosted URL.
func (s *ImageService) Upload(filename string, picture io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, picture); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost,
		imgbbUploadURL+"?key="+url.QueryEscape(s.apiKey), &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Data.URL == "" {
		return "", fmt.Errorf("unexpected imgbb response: %s", body)
	}
	return parsed.Data.URL, nil
}
