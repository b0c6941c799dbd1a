package usecase_test

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

// MockHubClient is a mock implementation of HubClient
type MockHubClient struct {
	fetchFunc  func(ctx context.Context, competition string) (string, error)
	fetchCalls []string
}

func (m *MockHubClient) Fetch(ctx context.Context, competition string) (string, error) {
	m.fetchCalls = append(m.fetchCalls, competition)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, competition)
	}
	return "", errors.New("mock not configured")
}

// MockLegacyClient is a mock implementation of LegacyClient
type MockLegacyClient struct {
	authenticateFunc  func(ctx context.Context) error
	fetchIntoFunc     func(ctx context.Context, competition, destDir string) ([]string, error)
	authenticateCalls int
	fetchIntoCalls    []LegacyCall
}

type LegacyCall struct {
	Competition string
	DestDir     string
}

func (m *MockLegacyClient) Authenticate(ctx context.Context) error {
	m.authenticateCalls++
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx)
	}
	return nil
}

func (m *MockLegacyClient) FetchInto(ctx context.Context, competition, destDir string) ([]string, error) {
	m.fetchIntoCalls = append(m.fetchIntoCalls, LegacyCall{Competition: competition, DestDir: destDir})
	if m.fetchIntoFunc != nil {
		return m.fetchIntoFunc(ctx, competition, destDir)
	}
	return nil, errors.New("mock not configured")
}

func failingHub() *MockHubClient {
	return &MockHubClient{
		fetchFunc: func(ctx context.Context, competition string) (string, error) {
			return "", errors.New("401 unauthorized")
		},
	}
}

func hubReturning(path string) *MockHubClient {
	return &MockHubClient{
		fetchFunc: func(ctx context.Context, competition string) (string, error) {
			return path, nil
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	gt.NoError(t, err)
	return string(content)
}

func createTestZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	gt.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, body := range entries {
		fw, err := w.Create(name)
		gt.NoError(t, err)
		_, err = fw.Write([]byte(body))
		gt.NoError(t, err)
	}
	gt.NoError(t, w.Close())
}
